// Package shapes provides 2D geometry for games: value types, parametric
// spline evaluation, and collision predicates.
//
// Every function in this package is pure. Nothing is retained between calls
// and nothing is shared, so all of it is safe for concurrent use without
// synchronization.
//
// # Splines
//
// Five curve families are evaluated per segment at a parameter t:
// [SplinePointLinear], [SplinePointBasis], [SplinePointCatmullRom],
// [SplinePointBezierQuad] and [SplinePointBezierCubic]. A [Spline] strings
// many control points together and walks them lazily with [Spline.Samples]:
//
//	s := shapes.Spline{Kind: shapes.SplineCatmullRom, Points: pts}
//	seq, err := s.Samples(shapes.DefaultSplineSteps)
//	if err != nil {
//		return err // fewer than 4 points
//	}
//	for p := range seq {
//		// ...
//	}
//
// # Collision
//
// The CheckCollision* functions decide whether two shapes overlap. All of
// them treat boundaries as inside: touching rectangles, tangent circles and
// points on an edge collide. Degenerate shapes (zero radius, zero area, zero
// length) are never an error. [CheckCollisionLines] returns the crossing point
// comma-ok style, and [GetCollisionRec] returns the overlap region instead of
// a boolean.
//
// # Hit testing
//
// [HitShape] implementations wrap the predicates for pointer hit testing in
// local coordinates, and [HitTest] finds the topmost [Hittable] under a world
// point.
//
// Rendering lives in the draw subpackage and tweening in anim.
package shapes
