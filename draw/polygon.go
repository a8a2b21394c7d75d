package draw

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/shapes"
)

// defaultCircleSegments is the number of edges used to approximate a circle
// when the caller does not choose one.
const defaultCircleSegments = 36

// buildPolygonFan generates vertices and indices for a fan-triangulated
// convex polygon. N vertices, 3*(N-2) indices. Fewer than three points
// produce nothing.
func buildPolygonFan(points []shapes.Vec2, clr color.Color) ([]ebiten.Vertex, []uint32) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint32, (n-2)*3)

	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		// Untextured: map to center of the white pixel.
		v.SrcX = 0.5
		v.SrcY = 0.5
	}
	tint(verts, clr)

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint32(i + 1)
		inds[i*3+2] = uint32(i + 2)
	}
	return verts, inds
}

// FillPolygon fills a convex polygon. Concave polygons are drawn with fan
// artifacts; split them into convex parts first.
func FillPolygon(dst *ebiten.Image, points []shapes.Vec2, clr color.Color) {
	verts, inds := buildPolygonFan(points, clr)
	if len(inds) == 0 {
		Logger().Debug("draw: polygon skipped", "points", len(points))
		return
	}
	dst.DrawTriangles32(verts, inds, whitePixel(), &ebiten.DrawTrianglesOptions{})
}

// FillTriangle fills the triangle a, b, c.
func FillTriangle(dst *ebiten.Image, t shapes.Triangle, clr color.Color) {
	FillPolygon(dst, []shapes.Vec2{t.A, t.B, t.C}, clr)
}

// FillRect fills an axis-aligned rectangle.
func FillRect(dst *ebiten.Image, r shapes.Rect, clr color.Color) {
	FillPolygon(dst, rectCorners(r.Canon()), clr)
}

// FillCircle fills a circle approximated by defaultCircleSegments edges.
func FillCircle(dst *ebiten.Image, c shapes.Circle, clr color.Color) {
	FillPolygon(dst, circlePoints(c, defaultCircleSegments, false), clr)
}

// rectCorners returns the corners of r clockwise in screen space starting at
// the top-left.
func rectCorners(r shapes.Rect) []shapes.Vec2 {
	return []shapes.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// circlePoints returns segments points on the circumference. With closed set,
// the first point is repeated at the end.
func circlePoints(c shapes.Circle, segments int, closed bool) []shapes.Vec2 {
	if segments < 3 {
		segments = 3
	}
	n := segments
	if closed {
		n++
	}
	pts := make([]shapes.Vec2, n)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i%segments) / float64(segments))
		pts[i] = shapes.Vec2{X: c.Center.X + cos*c.Radius, Y: c.Center.Y + sin*c.Radius}
	}
	return pts
}
