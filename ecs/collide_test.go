package ecs

import (
	"errors"
	"testing"

	"github.com/phanxgames/shapes"
)

func TestCollide(t *testing.T) {
	rect := shapes.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	circle := shapes.Circle{Center: shapes.Vec2{X: 15, Y: 5}, Radius: 5}
	tri := shapes.Triangle{A: shapes.Vec2{X: 0, Y: 0}, B: shapes.Vec2{X: 10, Y: 0}, C: shapes.Vec2{X: 0, Y: 10}}
	diag := Line{Segment: shapes.Segment{A: shapes.Vec2{X: -5, Y: -5}, B: shapes.Vec2{X: 5, Y: 5}}}
	cross := Line{Segment: shapes.Segment{A: shapes.Vec2{X: -5, Y: 5}, B: shapes.Vec2{X: 5, Y: -5}}}
	square := Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"point in rect", shapes.Vec2{X: 5, Y: 5}, rect, true},
		{"point on rect edge", shapes.Vec2{X: 10, Y: 0}, rect, true},
		{"point outside rect", shapes.Vec2{X: 11, Y: 5}, rect, false},
		{"point equal", shapes.Vec2{X: 1, Y: 1}, shapes.Vec2{X: 1, Y: 1}, true},
		{"point different", shapes.Vec2{X: 1, Y: 1}, shapes.Vec2{X: 1, Y: 2}, false},
		{"point in circle", shapes.Vec2{X: 20, Y: 5}, circle, true},
		{"point in triangle", shapes.Vec2{X: 2, Y: 2}, tri, true},
		{"point outside triangle", shapes.Vec2{X: 8, Y: 8}, tri, false},
		{"point on line", shapes.Vec2{X: 1, Y: 1}, diag, true},
		{"point in polygon", shapes.Vec2{X: 2, Y: 2}, square, true},
		{"rect touches circle", rect, circle, true},
		{"rects overlap", rect, shapes.Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"rects apart", rect, shapes.Rect{X: 20, Y: 20, Width: 1, Height: 1}, false},
		{"rect crossed by line", rect, diag, true},
		{"circles touch", circle, shapes.Circle{Center: shapes.Vec2{X: 25, Y: 5}, Radius: 5}, true},
		{"circle misses line", circle, diag, false},
		{"lines cross", diag, cross, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := Collide(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Collide: %v", err)
			}
			if got != tt.want {
				t.Errorf("Collide(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Argument order never changes the answer.
			rev, _, err := Collide(tt.b, tt.a)
			if err != nil || rev != got {
				t.Errorf("Collide(%v, %v) = %v, %v; not symmetric", tt.b, tt.a, rev, err)
			}
		})
	}
}

func TestCollideContact(t *testing.T) {
	_, c, _ := Collide(
		shapes.Rect{X: 0, Y: 0, Width: 10, Height: 10},
		shapes.Rect{X: 6, Y: 4, Width: 10, Height: 10},
	)
	if want := (shapes.Rect{X: 6, Y: 4, Width: 4, Height: 6}); c.Overlap != want {
		t.Errorf("Overlap = %v, want %v", c.Overlap, want)
	}

	_, c, _ = Collide(
		Line{Segment: shapes.Segment{A: shapes.Vec2{X: 0, Y: 0}, B: shapes.Vec2{X: 2, Y: 2}}},
		Line{Segment: shapes.Segment{A: shapes.Vec2{X: 0, Y: 2}, B: shapes.Vec2{X: 2, Y: 0}}},
	)
	if want := (shapes.Vec2{X: 1, Y: 1}); c.Point != want {
		t.Errorf("Point = %v, want %v", c.Point, want)
	}
}

func TestCollideUnsupported(t *testing.T) {
	tri := shapes.Triangle{C: shapes.Vec2{X: 1, Y: 1}}
	_, _, err := Collide(tri, tri)
	if !errors.Is(err, ErrUnsupportedPair) {
		t.Errorf("err = %v, want ErrUnsupportedPair", err)
	}
}

func TestCollideDegeneratePolygon(t *testing.T) {
	_, _, err := Collide(shapes.Vec2{}, Polygon{{0, 0}, {1, 1}})
	if !errors.Is(err, shapes.ErrTooFewPoints) {
		t.Errorf("err = %v, want ErrTooFewPoints", err)
	}
}

func TestTranslate(t *testing.T) {
	d := shapes.Vec2{X: 10, Y: 20}
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"point", shapes.Vec2{X: 1, Y: 2}, shapes.Vec2{X: 11, Y: 22}},
		{"rect", shapes.Rect{X: 1, Y: 2, Width: 3, Height: 4}, shapes.Rect{X: 11, Y: 22, Width: 3, Height: 4}},
		{"circle", shapes.Circle{Center: shapes.Vec2{X: 1}, Radius: 3}, shapes.Circle{Center: shapes.Vec2{X: 11, Y: 20}, Radius: 3}},
		{"line", Line{Segment: shapes.Segment{B: shapes.Vec2{X: 1}}, Threshold: 2},
			Line{Segment: shapes.Segment{A: d, B: shapes.Vec2{X: 11, Y: 20}}, Threshold: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.in, d); got != tt.want {
				t.Errorf("translate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	poly := translate(Polygon{{0, 0}, {1, 0}}, d).(Polygon)
	if poly[0] != d || poly[1] != (shapes.Vec2{X: 11, Y: 20}) {
		t.Errorf("translate(polygon) = %v", poly)
	}
}
