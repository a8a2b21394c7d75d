package ecs

import (
	"errors"
	"fmt"

	"github.com/phanxgames/shapes"
)

// ErrUnsupportedPair is returned by Collide when no predicate exists for the
// two shape types.
var ErrUnsupportedPair = errors.New("unsupported shape pair")

// Polygon is a closed polygon collider. It only collides with points.
type Polygon []shapes.Vec2

// Line is a segment collider. Points within Threshold of the segment collide
// with it.
type Line struct {
	shapes.Segment
	Threshold float64
}

// Contact describes a collision between two shapes.
type Contact struct {
	// Overlap is the intersection rectangle when both shapes are rectangles.
	Overlap shapes.Rect
	// Point is the crossing point when both shapes are lines.
	Point shapes.Vec2
}

// Collide reports whether a and b overlap. Each shape is one of shapes.Vec2,
// shapes.Rect, shapes.Circle, shapes.Triangle, Line, or Polygon. Pairs with
// no predicate, such as two triangles, return ErrUnsupportedPair.
func Collide(a, b any) (bool, Contact, error) {
	if hit, c, ok, err := collideOrdered(a, b); ok {
		return hit, c, err
	}
	if hit, c, ok, err := collideOrdered(b, a); ok {
		return hit, c, err
	}
	return false, Contact{}, fmt.Errorf("ecs: %T vs %T: %w", a, b, ErrUnsupportedPair)
}

// collideOrdered handles the pairs whose first shape is a. ok reports whether
// the pair was recognised.
func collideOrdered(a, b any) (hit bool, c Contact, ok bool, err error) {
	switch a := a.(type) {
	case shapes.Vec2:
		switch b := b.(type) {
		case shapes.Vec2:
			return a == b, c, true, nil
		case shapes.Rect:
			return shapes.CheckCollisionPointRec(a, b), c, true, nil
		case shapes.Circle:
			return shapes.CheckCollisionPointCircle(a, b.Center, b.Radius), c, true, nil
		case shapes.Triangle:
			return shapes.CheckCollisionPointTriangle(a, b.A, b.B, b.C), c, true, nil
		case Line:
			return shapes.CheckCollisionPointLine(a, b.A, b.B, b.Threshold), c, true, nil
		case Polygon:
			in, perr := shapes.CheckCollisionPointPoly(a, b)
			return in, c, true, perr
		}
	case shapes.Rect:
		switch b := b.(type) {
		case shapes.Rect:
			if !shapes.CheckCollisionRecs(a, b) {
				return false, c, true, nil
			}
			c.Overlap = shapes.GetCollisionRec(a, b)
			return true, c, true, nil
		case shapes.Circle:
			return shapes.CheckCollisionCircleRec(b.Center, b.Radius, a), c, true, nil
		case Line:
			return shapes.CheckCollisionRecLine(a, b.A, b.B), c, true, nil
		}
	case shapes.Circle:
		switch b := b.(type) {
		case shapes.Circle:
			return shapes.CheckCollisionCircles(a.Center, a.Radius, b.Center, b.Radius), c, true, nil
		case Line:
			return shapes.CheckCollisionCircleLine(a.Center, a.Radius, b.A, b.B), c, true, nil
		}
	case Line:
		if b, isLine := b.(Line); isLine {
			p, hit := shapes.CheckCollisionLines(a.A, a.B, b.A, b.B)
			c.Point = p
			return hit, c, true, nil
		}
	}
	return false, c, false, nil
}

// translate returns s moved by d. Unknown shapes are returned unchanged.
func translate(s any, d shapes.Vec2) any {
	if d == (shapes.Vec2{}) {
		return s
	}
	switch s := s.(type) {
	case shapes.Vec2:
		return s.Add(d)
	case shapes.Rect:
		s.X += d.X
		s.Y += d.Y
		return s
	case shapes.Circle:
		s.Center = s.Center.Add(d)
		return s
	case shapes.Triangle:
		return shapes.Triangle{A: s.A.Add(d), B: s.B.Add(d), C: s.C.Add(d)}
	case Line:
		s.A, s.B = s.A.Add(d), s.B.Add(d)
		return s
	case Polygon:
		out := make(Polygon, len(s))
		for i, p := range s {
			out[i] = p.Add(d)
		}
		return out
	}
	return s
}
