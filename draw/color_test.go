package draw

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestVertexColor(t *testing.T) {
	tests := []struct {
		name       string
		clr        color.Color
		r, g, b, a float32
	}{
		{"nil is white", nil, 1, 1, 1, 1},
		{"opaque red", color.RGBA{R: 255, A: 255}, 1, 0, 0, 1},
		{"transparent", color.RGBA{}, 0, 0, 0, 0},
		{"gray16", color.Gray16{Y: 0xffff}, 1, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := vertexColor(tt.clr)
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("vertexColor = (%f, %f, %f, %f), want (%f, %f, %f, %f)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestTint(t *testing.T) {
	verts := make([]ebiten.Vertex, 3)
	tint(verts, color.RGBA{G: 255, A: 255})
	for i, v := range verts {
		if v.ColorG != 1 || v.ColorR != 0 || v.ColorA != 1 {
			t.Errorf("vertex %d color = (%f, %f, %f, %f)", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestWhitePixelShared(t *testing.T) {
	a, b := whitePixel(), whitePixel()
	if a != b {
		t.Error("whitePixel should return the same image")
	}
	if w, h := a.Bounds().Dx(), a.Bounds().Dy(); w != 1 || h != 1 {
		t.Errorf("whitePixel size = %dx%d, want 1x1", w, h)
	}
}
