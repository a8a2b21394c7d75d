package anim

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/shapes"
)

// PathTween moves a Vec2 along a spline at constant speed, with the easing
// function applied to the distance travelled.
type PathTween struct {
	point  *shapes.Vec2
	pts    []shapes.Vec2
	cumLen []float64
	p      progress
}

// Follow creates a PathTween that moves *point along s over the specified
// duration. The spline is flattened into s.Segments()*steps chords up front;
// steps <= 0 uses shapes.DefaultSplineSteps. Splines that fail validation are
// returned as errors.
func Follow(point *shapes.Vec2, s shapes.Spline, steps int, duration float32, fn ease.TweenFunc) (*PathTween, error) {
	if steps <= 0 {
		steps = shapes.DefaultSplineSteps
	}
	pts, err := s.AppendSamples(nil, steps)
	if err != nil {
		return nil, fmt.Errorf("anim: follow: %w", err)
	}
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i-1].Distance(pts[i])
	}
	return &PathTween{point: point, pts: pts, cumLen: cum, p: newProgress(duration, fn)}, nil
}

// Length returns the flattened arc length of the path.
func (pt *PathTween) Length() float64 {
	return pt.cumLen[len(pt.cumLen)-1]
}

// At returns the position at fraction u of the path length. u is clamped to
// [0, 1].
func (pt *PathTween) At(u float64) shapes.Vec2 {
	total := pt.Length()
	if total == 0 || u <= 0 {
		return pt.pts[0]
	}
	if u >= 1 {
		return pt.pts[len(pt.pts)-1]
	}
	d := u * total
	// First sample at or beyond d; d > 0 so i >= 1.
	i := sort.SearchFloat64s(pt.cumLen, d)
	seg := pt.cumLen[i] - pt.cumLen[i-1]
	if seg == 0 {
		return pt.pts[i]
	}
	return pt.pts[i-1].Lerp(pt.pts[i], (d-pt.cumLen[i-1])/seg)
}

// Update implements Animation.
func (pt *PathTween) Update(dt float32) bool {
	if pt.p.done {
		return true
	}
	pt.p.started = true
	v, done := pt.p.advance(dt)
	*pt.point = pt.At(v)
	return done
}

// Reset implements Animation.
func (pt *PathTween) Reset() { pt.p.reset() }
