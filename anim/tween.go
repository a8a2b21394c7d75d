package anim

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/shapes"
)

// Animation is a value that changes over time.
type Animation interface {
	// Update advances the animation by dt seconds and reports whether it
	// has finished. Updating a finished animation is a no-op returning true.
	Update(dt float32) bool
	// Reset rewinds the animation so the next Update starts it again. A
	// target that was already moved is restored to its start value.
	Reset()
}

// progress wraps a gween tween running from 0 to 1 and tracks whether the
// owning animation has captured its start state.
type progress struct {
	tween   *gween.Tween
	started bool
	done    bool
}

func newProgress(duration float32, fn ease.TweenFunc) progress {
	if fn == nil {
		fn = ease.Linear
	}
	return progress{tween: gween.New(0, 1, duration, fn)}
}

// advance steps the tween. It returns the eased progress and whether the
// tween is complete. A non-positive duration completes immediately at 1.
func (p *progress) advance(dt float32) (float64, bool) {
	v, finished := p.tween.Update(dt)
	if finished {
		v = 1
	}
	p.done = finished
	return float64(v), finished
}

func (p *progress) reset() {
	p.tween.Reset()
	p.started = false
	p.done = false
}

// FloatTween animates a single float64 field.
type FloatTween struct {
	field    *float64
	from, to float64
	p        progress
}

// Tween creates a FloatTween that animates *field to the target value over
// the specified duration using the easing function. A nil fn is linear.
func Tween(field *float64, to float64, duration float32, fn ease.TweenFunc) *FloatTween {
	return &FloatTween{field: field, to: to, p: newProgress(duration, fn)}
}

// Update implements Animation.
func (t *FloatTween) Update(dt float32) bool {
	if t.p.done {
		return true
	}
	if !t.p.started {
		t.from = *t.field
		t.p.started = true
	}
	v, done := t.p.advance(dt)
	*t.field = t.from + (t.to-t.from)*v
	return done
}

// Reset implements Animation.
func (t *FloatTween) Reset() {
	if t.p.started {
		*t.field = t.from
	}
	t.p.reset()
}

// MoveTween animates a Vec2 toward a target in a straight line.
type MoveTween struct {
	point    *shapes.Vec2
	from, to shapes.Vec2
	p        progress
}

// Move creates a MoveTween that animates *point to the target position over
// the specified duration using the easing function.
func Move(point *shapes.Vec2, to shapes.Vec2, duration float32, fn ease.TweenFunc) *MoveTween {
	return &MoveTween{point: point, to: to, p: newProgress(duration, fn)}
}

// Update implements Animation.
func (m *MoveTween) Update(dt float32) bool {
	if m.p.done {
		return true
	}
	if !m.p.started {
		m.from = *m.point
		m.p.started = true
	}
	v, done := m.p.advance(dt)
	*m.point = m.from.Lerp(m.to, v)
	return done
}

// Reset implements Animation.
func (m *MoveTween) Reset() {
	if m.p.started {
		*m.point = m.from
	}
	m.p.reset()
}

// RotateTween rotates a Vec2 around an origin.
type RotateTween struct {
	point   *shapes.Vec2
	origin  shapes.Vec2
	radians float64
	start   shapes.Vec2
	p       progress
}

// Rotate creates a RotateTween that turns *point by degrees around origin over
// the specified duration. Positive degrees rotate from +X toward +Y, which is
// clockwise on screen.
func Rotate(point *shapes.Vec2, origin shapes.Vec2, degrees float64, duration float32, fn ease.TweenFunc) *RotateTween {
	return &RotateTween{
		point:   point,
		origin:  origin,
		radians: degrees * math.Pi / 180,
		p:       newProgress(duration, fn),
	}
}

// Update implements Animation.
func (r *RotateTween) Update(dt float32) bool {
	if r.p.done {
		return true
	}
	if !r.p.started {
		r.start = *r.point
		r.p.started = true
	}
	v, done := r.p.advance(dt)
	*r.point = r.start.RotateAround(r.origin, r.radians*v)
	return done
}

// Reset implements Animation.
func (r *RotateTween) Reset() {
	if r.p.started {
		*r.point = r.start
	}
	r.p.reset()
}

// FuncTween calls a function every frame with the eased progress in [0, 1].
type FuncTween struct {
	fn func(t float64)
	p  progress
}

// Func creates a FuncTween. fn is called on every Update, ending with t == 1.
func Func(duration float32, easing ease.TweenFunc, fn func(t float64)) *FuncTween {
	return &FuncTween{fn: fn, p: newProgress(duration, easing)}
}

// Update implements Animation.
func (f *FuncTween) Update(dt float32) bool {
	if f.p.done {
		return true
	}
	v, done := f.p.advance(dt)
	f.fn(v)
	return done
}

// Reset implements Animation.
func (f *FuncTween) Reset() { f.p.reset() }

// Wait returns an animation that does nothing for duration seconds.
func Wait(duration float32) Animation {
	return Func(duration, ease.Linear, func(float64) {})
}
