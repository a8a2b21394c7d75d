package shapes

import (
	"fmt"
	"math"
)

// parallelEpsilon is the relative tolerance below which two segment
// directions are treated as parallel by CheckCollisionLines.
const parallelEpsilon = 1e-12

// CheckCollisionRecs reports whether two rectangles overlap. Rectangles that
// share only an edge or corner collide.
func CheckCollisionRecs(rec1, rec2 Rect) bool {
	return rec1.Intersects(rec2)
}

// CheckCollisionCircles reports whether two circles overlap or touch.
func CheckCollisionCircles(center1 Vec2, radius1 float64, center2 Vec2, radius2 float64) bool {
	if radius1 < 0 || radius2 < 0 {
		return false
	}
	r := radius1 + radius2
	return center1.DistanceSquared(center2) <= r*r
}

// CheckCollisionCircleRec reports whether a circle overlaps a rectangle, i.e.
// whether the point of the rectangle nearest to center is within radius.
func CheckCollisionCircleRec(center Vec2, radius float64, rec Rect) bool {
	if radius < 0 {
		return false
	}
	closest := Vec2{
		X: clamp(center.X, rec.X, rec.X+rec.Width),
		Y: clamp(center.Y, rec.Y, rec.Y+rec.Height),
	}
	return center.DistanceSquared(closest) <= radius*radius
}

// CheckCollisionCircleLine reports whether a circle touches the segment from
// p1 to p2. Only the segment is considered, not the infinite line through it.
func CheckCollisionCircleLine(center Vec2, radius float64, p1, p2 Vec2) bool {
	if radius < 0 {
		return false
	}
	closest := Segment{p1, p2}.ClosestPoint(center)
	return center.DistanceSquared(closest) <= radius*radius
}

// CheckCollisionPointRec reports whether point lies inside or on the edge of rec.
func CheckCollisionPointRec(point Vec2, rec Rect) bool {
	return rec.Contains(point.X, point.Y)
}

// CheckCollisionPointCircle reports whether point lies inside or on the circle.
func CheckCollisionPointCircle(point, center Vec2, radius float64) bool {
	if radius < 0 {
		return false
	}
	return point.DistanceSquared(center) <= radius*radius
}

// CheckCollisionPointTriangle reports whether point lies inside or on the edge
// of the triangle p1, p2, p3 in either winding order. A collinear triangle
// contains exactly the points of its edges.
func CheckCollisionPointTriangle(point, p1, p2, p3 Vec2) bool {
	if p2.Sub(p1).Cross(p3.Sub(p1)) == 0 {
		return onSegment(point, p1, p2) || onSegment(point, p2, p3) || onSegment(point, p3, p1)
	}

	d1 := p2.Sub(p1).Cross(point.Sub(p1))
	d2 := p3.Sub(p2).Cross(point.Sub(p2))
	d3 := p1.Sub(p3).Cross(point.Sub(p3))

	negative := d1 < 0 || d2 < 0 || d3 < 0
	positive := d1 > 0 || d2 > 0 || d3 > 0
	return !(negative && positive)
}

// CheckCollisionPointLine reports whether point is within threshold pixels of
// the segment from p1 to p2. A threshold of zero accepts only points exactly
// on the segment. Negative thresholds never collide.
func CheckCollisionPointLine(point, p1, p2 Vec2, threshold float64) bool {
	if threshold < 0 {
		return false
	}
	if onSegment(point, p1, p2) {
		return true
	}
	closest := Segment{p1, p2}.ClosestPoint(point)
	return point.DistanceSquared(closest) <= threshold*threshold
}

// CheckCollisionPointPoly reports whether point lies inside the polygon whose
// edges run from points[i] to points[(i+1)%len(points)]. Points on an edge or
// vertex are inside. Self-intersecting polygons use the even-odd rule.
// Fewer than three vertices is an error wrapping ErrTooFewPoints.
func CheckCollisionPointPoly(point Vec2, points []Vec2) (bool, error) {
	n := len(points)
	if n < 3 {
		return false, fmt.Errorf("shapes: polygon needs at least 3 points, got %d: %w", n, ErrTooFewPoints)
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := points[i], points[j]
		if onSegment(point, a, b) {
			return true, nil
		}
		if (a.Y > point.Y) != (b.Y > point.Y) &&
			point.X < (b.X-a.X)*(point.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside, nil
}

// CheckCollisionLines reports whether segment p1-p2 crosses segment p3-p4 at
// a single point and returns that point. Parallel and collinear segments,
// including overlapping ones, report no intersection, as do zero-length
// segments. Touching at an endpoint counts as an intersection.
func CheckCollisionLines(p1, p2, p3, p4 Vec2) (Vec2, bool) {
	da := p2.Sub(p1)
	db := p4.Sub(p3)
	div := da.Cross(db)

	// Scale by the segment lengths so tiny segments are not all "parallel".
	if math.Abs(div) <= parallelEpsilon*da.Length()*db.Length() {
		return Vec2{}, false
	}

	w := p3.Sub(p1)
	ta := w.Cross(db) / div
	tb := w.Cross(da) / div
	if ta < 0 || ta > 1 || tb < 0 || tb > 1 {
		return Vec2{}, false
	}
	return p1.Lerp(p2, ta), true
}

// CheckCollisionRecLine reports whether the segment from p1 to p2 touches the
// rectangle, including segments that lie entirely inside it.
func CheckCollisionRecLine(rec Rect, p1, p2 Vec2) bool {
	if rec.Contains(p1.X, p1.Y) || rec.Contains(p2.X, p2.Y) {
		return true
	}

	tl := Vec2{rec.X, rec.Y}
	tr := Vec2{rec.X + rec.Width, rec.Y}
	br := Vec2{rec.X + rec.Width, rec.Y + rec.Height}
	bl := Vec2{rec.X, rec.Y + rec.Height}
	edges := [4]Segment{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
	for _, e := range edges {
		if segmentsTouch(Segment{p1, p2}, e) {
			return true
		}
	}
	return false
}

// GetCollisionRec returns the overlapping region of two rectangles. See
// [Rect.Overlap] for the zero-area and disjoint cases.
func GetCollisionRec(rec1, rec2 Rect) Rect {
	return rec1.Overlap(rec2)
}

// DistancePointSegment returns the distance from point to the nearest point of
// the segment from p1 to p2.
func DistancePointSegment(point, p1, p2 Vec2) float64 {
	return point.Distance(Segment{p1, p2}.ClosestPoint(point))
}

// --- Helpers ---

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// orientation returns the sign of the turn a -> b -> c: 1 clockwise in
// screen space, -1 counter-clockwise, 0 collinear.
func orientation(a, b, c Vec2) int {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p lies exactly on the closed segment a-b.
func onSegment(p, a, b Vec2) bool {
	if b.Sub(a).Cross(p.Sub(a)) != 0 {
		return false
	}
	return inBox(p, a, b)
}

// inBox reports whether p lies within the bounding box of a and b.
func inBox(p, a, b Vec2) bool {
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

// segmentsTouch reports whether two closed segments share at least one point,
// collinear overlap included.
func segmentsTouch(a, b Segment) bool {
	o1 := orientation(a.A, a.B, b.A)
	o2 := orientation(a.A, a.B, b.B)
	o3 := orientation(b.A, b.B, a.A)
	o4 := orientation(b.A, b.B, a.B)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && inBox(b.A, a.A, a.B) {
		return true
	}
	if o2 == 0 && inBox(b.B, a.A, a.B) {
		return true
	}
	if o3 == 0 && inBox(a.A, b.A, b.B) {
		return true
	}
	if o4 == 0 && inBox(a.B, b.A, b.B) {
		return true
	}
	return false
}
