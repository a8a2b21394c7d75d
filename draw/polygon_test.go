package draw

import (
	"image/color"
	"testing"

	"github.com/phanxgames/shapes"
)

func TestPolygonFanTriangulation(t *testing.T) {
	points := []shapes.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	verts, inds := buildPolygonFan(points, nil)
	if len(verts) != 4 {
		t.Fatalf("vertices = %d, want 4", len(verts))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	if len(inds) != len(want) {
		t.Fatalf("indices = %d, want %d", len(inds), len(want))
	}
	for i := range want {
		if inds[i] != want[i] {
			t.Errorf("inds[%d] = %d, want %d", i, inds[i], want[i])
		}
	}
}

func TestPolygonPentagon(t *testing.T) {
	points := circlePoints(shapes.Circle{Radius: 10}, 5, false)
	verts, inds := buildPolygonFan(points, nil)
	if len(verts) != 5 {
		t.Errorf("vertices = %d, want 5", len(verts))
	}
	if len(inds) != 9 {
		t.Errorf("indices = %d, want 9", len(inds))
	}
}

func TestPolygonUntexturedUV(t *testing.T) {
	verts, _ := buildPolygonFan([]shapes.Vec2{{0, 0}, {10, 0}, {5, 10}}, nil)
	for i, v := range verts {
		if v.SrcX != 0.5 || v.SrcY != 0.5 {
			t.Errorf("vertex %d src = (%f, %f), want (0.5, 0.5)", i, v.SrcX, v.SrcY)
		}
	}
}

func TestPolygonVertexColor(t *testing.T) {
	verts, _ := buildPolygonFan([]shapes.Vec2{{0, 0}, {10, 0}, {5, 10}}, color.RGBA{R: 255, A: 255})
	for i, v := range verts {
		if v.ColorR != 1 || v.ColorG != 0 || v.ColorB != 0 || v.ColorA != 1 {
			t.Errorf("vertex %d color = (%f, %f, %f, %f), want (1, 0, 0, 1)",
				i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestPolygonTooFewPoints(t *testing.T) {
	verts, inds := buildPolygonFan([]shapes.Vec2{{0, 0}, {10, 0}}, nil)
	if verts != nil || inds != nil {
		t.Errorf("2 points: got %d vertices, %d indices, want none", len(verts), len(inds))
	}
}

func TestRectCorners(t *testing.T) {
	got := rectCorners(shapes.Rect{X: 1, Y: 2, Width: 3, Height: 4})
	want := []shapes.Vec2{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCirclePoints(t *testing.T) {
	c := shapes.Circle{Center: shapes.Vec2{X: 5, Y: 5}, Radius: 2}
	pts := circlePoints(c, 8, true)
	if len(pts) != 9 {
		t.Fatalf("points = %d, want 9", len(pts))
	}
	if pts[0] != pts[8] {
		t.Errorf("closed ring: first %v != last %v", pts[0], pts[8])
	}
	for i, p := range pts {
		if !approxEqual(p.Distance(c.Center), 2, 1e-9) {
			t.Errorf("point %d distance = %f, want 2", i, p.Distance(c.Center))
		}
	}
	if got := circlePoints(c, 1, false); len(got) != 3 {
		t.Errorf("segments clamp: got %d points, want 3", len(got))
	}
}
