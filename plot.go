package shapes

import (
	"fmt"
	"math"
)

const (
	defaultPlotUnitSize = 20.0
	defaultPlotSegments = 100
)

// Plot samples y = Fn(x) over a graph-space window and maps the samples to
// screen space. Graph Y grows upward; screen Y grows downward.
type Plot struct {
	Origin   Vec2 // screen position of graph (0, 0)
	Min, Max Vec2 // graph-space bounds, bottom-left and top-right
	Fn       func(x float64) float64
	UnitSize float64 // pixels per graph unit (default 20)
	Segments int     // sample intervals across [Min.X, Max.X] (default 100)
}

// Points returns the screen-space samples of the plot. Samples whose y value
// falls outside [Min.Y, Max.Y] or is NaN are dropped.
func (p Plot) Points() []Vec2 {
	if p.Fn == nil {
		return nil
	}
	unit := p.UnitSize
	if unit <= 0 {
		unit = defaultPlotUnitSize
	}
	segs := p.Segments
	if segs <= 0 {
		segs = defaultPlotSegments
	}

	step := (p.Max.X - p.Min.X) / float64(segs)
	pts := make([]Vec2, 0, segs+1)
	for i := 0; i <= segs; i++ {
		x := p.Min.X + float64(i)*step
		y := p.Fn(x)
		if math.IsNaN(y) || y < p.Min.Y || y > p.Max.Y {
			continue
		}
		pts = append(pts, p.ToScreen(Vec2{x, y}))
	}
	return pts
}

// ToScreen maps a graph-space point to screen space.
func (p Plot) ToScreen(g Vec2) Vec2 {
	unit := p.UnitSize
	if unit <= 0 {
		unit = defaultPlotUnitSize
	}
	return Vec2{
		X: p.Origin.X + g.X*unit,
		Y: p.Origin.Y - g.Y*unit,
	}
}

// Spline returns the visible samples as a spline of the given kind, ready to
// be drawn. It fails with ErrTooFewPoints when fewer samples survive clipping
// than kind needs.
func (p Plot) Spline(kind SplineKind) (Spline, error) {
	s := Spline{Kind: kind, Points: p.Points()}
	if err := s.Validate(); err != nil {
		return Spline{}, fmt.Errorf("shapes: plot: %w", err)
	}
	return s, nil
}
