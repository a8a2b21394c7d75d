package shapes

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width and Height are expected to
// be non-negative; see [Rect.Canon] for rectangles built from arbitrary corners.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the smallest rectangle containing both a and b.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{X: a.X, Y: a.Y, Width: b.X - a.X, Height: b.Y - a.Y}.Canon()
}

// Canon returns r with negative Width or Height flipped so that (X, Y) is the
// top-left corner.
func (r Rect) Canon() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Overlap returns the region shared by r and other. Rectangles that only
// touch produce a zero-area rectangle on the shared edge or corner. Disjoint
// rectangles produce the zero Rect.
func (r Rect) Overlap(other Rect) Rect {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.X+r.Width, other.X+other.Width)
	bottom := min(r.Y+r.Height, other.Y+other.Height)
	if left > right || top > bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Vec2
	Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y float64) bool {
	return CheckCollisionPointCircle(Vec2{x, y}, c.Center, c.Radius)
}

// Bounds returns the axis-aligned bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		X:      c.Center.X - c.Radius,
		Y:      c.Center.Y - c.Radius,
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}

// Segment is a line segment between two endpoints. A segment whose endpoints
// coincide is degenerate and behaves like a point.
type Segment struct {
	A, B Vec2
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Degenerate reports whether both endpoints are the same point.
func (s Segment) Degenerate() bool {
	return s.A == s.B
}

// ClosestPoint returns the point on the segment nearest to p.
func (s Segment) ClosestPoint(p Vec2) Vec2 {
	d := s.B.Sub(s.A)
	l2 := d.LengthSquared()
	if l2 == 0 {
		return s.A
	}
	t := p.Sub(s.A).Dot(d) / l2
	t = max(0, min(1, t))
	return s.A.Add(d.Scale(t))
}

// Bounds returns the axis-aligned bounding box of the segment.
func (s Segment) Bounds() Rect {
	return RectFromPoints(s.A, s.B)
}

// Triangle is a triangle given by three vertices in either winding order.
type Triangle struct {
	A, B, C Vec2
}

// Contains reports whether (x, y) lies inside or on the edge of the triangle.
func (t Triangle) Contains(x, y float64) bool {
	return CheckCollisionPointTriangle(Vec2{x, y}, t.A, t.B, t.C)
}

// Bounds returns the axis-aligned bounding box of the triangle.
func (t Triangle) Bounds() Rect {
	return PolygonBounds([]Vec2{t.A, t.B, t.C})
}

// PolygonBounds returns the axis-aligned bounding box of points. An empty
// slice produces the zero Rect.
func PolygonBounds(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
