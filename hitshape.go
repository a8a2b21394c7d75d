package shapes

// HitShape defines a custom hit testing region in local coordinates.
type HitShape interface {
	// Contains reports whether the local-space point (x, y) is inside the shape.
	Contains(x, y float64) bool
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle. Edges count.
func (r HitRect) Contains(x, y float64) bool {
	return CheckCollisionPointRec(Vec2{x, y}, Rect(r))
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	return CheckCollisionPointCircle(Vec2{x, y}, Vec2{c.CenterX, c.CenterY}, c.Radius)
}

// HitTriangle is a triangular hit area in local coordinates.
type HitTriangle struct {
	A, B, C Vec2
}

// Contains reports whether (x, y) lies inside or on the triangle.
func (t HitTriangle) Contains(x, y float64) bool {
	return CheckCollisionPointTriangle(Vec2{x, y}, t.A, t.B, t.C)
}

// HitPolygon is a polygon hit area in local coordinates. Points may be in
// either winding order and need not be convex.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside or on the polygon. Polygons
// with fewer than three points contain nothing.
func (p HitPolygon) Contains(x, y float64) bool {
	in, err := CheckCollisionPointPoly(Vec2{x, y}, p.Points)
	return err == nil && in
}

// HitLine is a segment hit area that accepts points within Threshold pixels.
type HitLine struct {
	A, B      Vec2
	Threshold float64
}

// Contains reports whether (x, y) is within Threshold of the segment.
func (l HitLine) Contains(x, y float64) bool {
	return CheckCollisionPointLine(Vec2{x, y}, l.A, l.B, l.Threshold)
}

// --- Hit testing ---

// Hittable is a hit shape placed in the world by a transform.
type Hittable struct {
	Name      string
	Shape     HitShape
	Transform Transform
	Disabled  bool
}

// ContainsWorld reports whether the world-space point (x, y) falls inside h.
func (h Hittable) ContainsWorld(x, y float64) bool {
	if h.Disabled || h.Shape == nil {
		return false
	}
	lp := h.Transform.WorldToLocal(Vec2{x, y})
	return h.Shape.Contains(lp.X, lp.Y)
}

// HitTest returns the index of the topmost item containing the world point
// (x, y), or -1 if nothing is hit. Items are in painter order, so later items
// are on top.
func HitTest(items []Hittable, x, y float64) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].ContainsWorld(x, y) {
			return i
		}
	}
	return -1
}
