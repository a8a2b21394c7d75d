package draw

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var whitePixelImage *ebiten.Image

// whitePixel returns a shared 1x1 white image used as the source for
// untextured meshes. Vertex colors tint it.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// vertexColor converts clr to premultiplied float components for ebiten.Vertex.
// A nil color is opaque white.
func vertexColor(clr color.Color) (r, g, b, a float32) {
	if clr == nil {
		return 1, 1, 1, 1
	}
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

// tint sets the color of every vertex in verts.
func tint(verts []ebiten.Vertex, clr color.Color) {
	r, g, b, a := vertexColor(clr)
	for i := range verts {
		verts[i].ColorR = r
		verts[i].ColorG = g
		verts[i].ColorB = b
		verts[i].ColorA = a
	}
}
