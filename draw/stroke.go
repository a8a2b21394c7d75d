package draw

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/shapes"
)

// StrokeOptions configures outline and spline drawing. The zero value draws a
// 1px white stroke with shapes.DefaultSplineSteps subdivisions per segment.
type StrokeOptions struct {
	Width float64
	Color color.Color
	Steps int
	Join  RopeJoinMode
}

func (o StrokeOptions) rope() *Rope {
	r := ropePool.Get().(*Rope)
	r.Image = nil
	w := o.Width
	if w <= 0 {
		w = 1
	}
	r.config = RopeConfig{Width: w, JoinMode: o.Join, Steps: o.Steps}
	return r
}

// ropePool recycles the meshes behind one-shot stroke calls.
var ropePool = sync.Pool{New: func() any { return &Rope{} }}

// --- Splines ---

// DrawSpline strokes the whole spline. Splines with too few points for their
// kind are skipped and logged at debug level.
func DrawSpline(dst *ebiten.Image, s shapes.Spline, opts StrokeOptions) {
	r := opts.rope()
	defer ropePool.Put(r)
	if err := r.SetSpline(s); err != nil {
		Logger().Debug("draw: spline skipped", "kind", s.Kind, "points", len(s.Points), "err", err)
		return
	}
	r.Draw(dst, opts.Color)
}

// DrawSplineLinear draws straight lines through points. Minimum 2 points.
func DrawSplineLinear(dst *ebiten.Image, points []shapes.Vec2, thick float64, clr color.Color) {
	DrawSpline(dst, shapes.Spline{Kind: shapes.SplineLinear, Points: points}, StrokeOptions{Width: thick, Color: clr, Steps: 1})
}

// DrawSplineBasis draws a uniform B-spline. Minimum 4 points.
func DrawSplineBasis(dst *ebiten.Image, points []shapes.Vec2, thick float64, clr color.Color) {
	DrawSpline(dst, shapes.Spline{Kind: shapes.SplineBasis, Points: points}, StrokeOptions{Width: thick, Color: clr})
}

// DrawSplineCatmullRom draws a Catmull-Rom spline through points[1:len-1].
// Minimum 4 points.
func DrawSplineCatmullRom(dst *ebiten.Image, points []shapes.Vec2, thick float64, clr color.Color) {
	DrawSpline(dst, shapes.Spline{Kind: shapes.SplineCatmullRom, Points: points}, StrokeOptions{Width: thick, Color: clr})
}

// DrawSplineBezierQuad draws chained quadratic Béziers laid out as
// [p1, c2, p3, c4, p5, ...]. Minimum 3 points.
func DrawSplineBezierQuad(dst *ebiten.Image, points []shapes.Vec2, thick float64, clr color.Color) {
	DrawSpline(dst, shapes.Spline{Kind: shapes.SplineBezierQuad, Points: points}, StrokeOptions{Width: thick, Color: clr})
}

// DrawSplineBezierCubic draws chained cubic Béziers laid out as
// [p1, c2, c3, p4, c5, c6, p7, ...]. Minimum 4 points.
func DrawSplineBezierCubic(dst *ebiten.Image, points []shapes.Vec2, thick float64, clr color.Color) {
	DrawSpline(dst, shapes.Spline{Kind: shapes.SplineBezierCubic, Points: points}, StrokeOptions{Width: thick, Color: clr})
}

// --- Outlines ---

// StrokePolyline strokes an open path through points.
func StrokePolyline(dst *ebiten.Image, points []shapes.Vec2, opts StrokeOptions) {
	if len(points) < 2 {
		return
	}
	r := opts.rope()
	defer ropePool.Put(r)
	r.SetPoints(points)
	r.Draw(dst, opts.Color)
}

// StrokeLine strokes the segment s.
func StrokeLine(dst *ebiten.Image, s shapes.Segment, opts StrokeOptions) {
	StrokePolyline(dst, []shapes.Vec2{s.A, s.B}, opts)
}

// StrokeRect outlines r.
func StrokeRect(dst *ebiten.Image, r shapes.Rect, opts StrokeOptions) {
	pts := rectCorners(r.Canon())
	StrokePolyline(dst, append(pts, pts[0], pts[1]), opts)
}

// StrokeCircle outlines c with defaultCircleSegments edges.
func StrokeCircle(dst *ebiten.Image, c shapes.Circle, opts StrokeOptions) {
	pts := circlePoints(c, defaultCircleSegments, true)
	StrokePolyline(dst, append(pts, pts[1]), opts)
}

// StrokeTriangle outlines t.
func StrokeTriangle(dst *ebiten.Image, t shapes.Triangle, opts StrokeOptions) {
	StrokePolyline(dst, []shapes.Vec2{t.A, t.B, t.C, t.A, t.B}, opts)
}

// StrokePolygon outlines a closed polygon.
func StrokePolygon(dst *ebiten.Image, points []shapes.Vec2, opts StrokeOptions) {
	if len(points) < 2 {
		return
	}
	closed := make([]shapes.Vec2, 0, len(points)+2)
	closed = append(closed, points...)
	closed = append(closed, points[0], points[1])
	StrokePolyline(dst, closed, opts)
}

// --- Plots ---

// DrawPlot strokes the visible part of p as a Catmull-Rom curve, falling back
// to straight lines when fewer than four samples are visible.
func DrawPlot(dst *ebiten.Image, p shapes.Plot, opts StrokeOptions) {
	kind := shapes.SplineCatmullRom
	s, err := p.Spline(kind)
	if err != nil {
		kind = shapes.SplineLinear
		s, err = p.Spline(kind)
	}
	if err != nil {
		Logger().Debug("draw: plot skipped", "err", err)
		return
	}
	DrawSpline(dst, s, opts)
}
