package shapes

import (
	"errors"
	"fmt"
	"iter"
)

// DefaultSplineSteps is the number of line segments each spline segment is
// subdivided into when a caller does not choose one.
const DefaultSplineSteps = 24

var (
	// ErrTooFewPoints is returned when a spline or polygon has fewer control
	// points than its family requires.
	ErrTooFewPoints = errors.New("too few points")
	// ErrInvalidSteps is returned when a sampling step count is less than 1.
	ErrInvalidSteps = errors.New("steps must be at least 1")
	// ErrUnknownSplineKind is returned for a SplineKind outside the defined set.
	ErrUnknownSplineKind = errors.New("unknown spline kind")
)

// SplineKind selects a curve family.
type SplineKind uint8

const (
	SplineLinear      SplineKind = iota // straight lines through every point
	SplineBasis                         // uniform cubic B-spline, approximating
	SplineCatmullRom                    // cubic, interpolates interior points
	SplineBezierQuad                    // [p1, c2, p3, c4, p5, ...]
	SplineBezierCubic                   // [p1, c2, c3, p4, c5, c6, p7, ...]
)

// splineLayout describes how a control point list is cut into segments:
// window points feed one evaluation, and consecutive windows start stride
// points apart.
type splineLayout struct {
	window int
	stride int
}

var splineLayouts = [...]splineLayout{
	SplineLinear:      {window: 2, stride: 1},
	SplineBasis:       {window: 4, stride: 1},
	SplineCatmullRom:  {window: 4, stride: 1},
	SplineBezierQuad:  {window: 3, stride: 2},
	SplineBezierCubic: {window: 4, stride: 3},
}

func (k SplineKind) valid() bool {
	return int(k) < len(splineLayouts)
}

// MinPoints returns the minimum number of control points a spline of this
// kind needs to produce one segment. Unknown kinds return 0.
func (k SplineKind) MinPoints() int {
	if !k.valid() {
		return 0
	}
	return splineLayouts[k].window
}

// String returns a short lowercase name for the kind.
func (k SplineKind) String() string {
	switch k {
	case SplineLinear:
		return "linear"
	case SplineBasis:
		return "basis"
	case SplineCatmullRom:
		return "catmull-rom"
	case SplineBezierQuad:
		return "bezier-quad"
	case SplineBezierCubic:
		return "bezier-cubic"
	default:
		return fmt.Sprintf("SplineKind(%d)", uint8(k))
	}
}

// --- Segment evaluators ---

// SplinePointLinear returns p1 + t*(p2-p1). t outside [0, 1] extrapolates.
func SplinePointLinear(p1, p2 Vec2, t float64) Vec2 {
	return p1.Lerp(p2, t)
}

// SplinePointBasis evaluates a uniform cubic B-spline segment. The curve is
// shaped by all four points but in general passes through none of them.
func SplinePointBasis(p1, p2, p3, p4 Vec2, t float64) Vec2 {
	basis := func(a, b, c, d float64) float64 {
		a0 := (-a + 3*b - 3*c + d) / 6
		a1 := (3*a - 6*b + 3*c) / 6
		a2 := (-3*a + 3*c) / 6
		a3 := (a + 4*b + c) / 6
		return a3 + t*(a2+t*(a1+t*a0))
	}
	return Vec2{
		X: basis(p1.X, p2.X, p3.X, p4.X),
		Y: basis(p1.Y, p2.Y, p3.Y, p4.Y),
	}
}

// SplinePointCatmullRom evaluates a Catmull-Rom segment. The curve passes
// through p2 at t=0 and p3 at t=1; p1 and p4 only shape the tangents.
func SplinePointCatmullRom(p1, p2, p3, p4 Vec2, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t
	q0 := -t3 + 2*t2 - t
	q1 := 3*t3 - 5*t2 + 2
	q2 := -3*t3 + 4*t2 + t
	q3 := t3 - t2
	return Vec2{
		X: 0.5 * (p1.X*q0 + p2.X*q1 + p3.X*q2 + p4.X*q3),
		Y: 0.5 * (p1.Y*q0 + p2.Y*q1 + p3.Y*q2 + p4.Y*q3),
	}
}

// SplinePointBezierQuad evaluates a quadratic Bézier with anchors p1, p3 and
// control point c2.
func SplinePointBezierQuad(p1, c2, p3 Vec2, t float64) Vec2 {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return Vec2{
		X: a*p1.X + b*c2.X + c*p3.X,
		Y: a*p1.Y + b*c2.Y + c*p3.Y,
	}
}

// SplinePointBezierCubic evaluates a cubic Bézier with anchors p1, p4 and
// control points c2, c3.
func SplinePointBezierCubic(p1, c2, c3, p4 Vec2, t float64) Vec2 {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	a := u2 * u
	b := 3 * u2 * t
	c := 3 * u * t2
	d := t2 * t
	return Vec2{
		X: a*p1.X + b*c2.X + c*c3.X + d*p4.X,
		Y: a*p1.Y + b*c2.Y + c*c3.Y + d*p4.Y,
	}
}

// --- Multi-segment splines ---

// Spline is an ordered list of control points interpreted by Kind.
// Trailing points that do not complete a segment are ignored.
type Spline struct {
	Kind   SplineKind
	Points []Vec2
}

// Validate reports whether the spline has a known kind and enough points.
// The returned error wraps ErrUnknownSplineKind or ErrTooFewPoints.
func (s Spline) Validate() error {
	if !s.Kind.valid() {
		return fmt.Errorf("shapes: %v: %w", s.Kind, ErrUnknownSplineKind)
	}
	if need := s.Kind.MinPoints(); len(s.Points) < need {
		return fmt.Errorf("shapes: %v spline needs at least %d points, got %d: %w",
			s.Kind, need, len(s.Points), ErrTooFewPoints)
	}
	return nil
}

// Segments returns the number of curve segments the control points form.
// Invalid splines have zero segments.
func (s Spline) Segments() int {
	if s.Validate() != nil {
		return 0
	}
	l := splineLayouts[s.Kind]
	return (len(s.Points)-l.window)/l.stride + 1
}

// Point evaluates segment i of the spline at t. It panics if i is not in
// [0, Segments()).
func (s Spline) Point(i int, t float64) Vec2 {
	n := s.Segments()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("shapes: spline segment %d out of range [0, %d)", i, n))
	}
	p := s.Points[i*splineLayouts[s.Kind].stride:]
	switch s.Kind {
	case SplineLinear:
		return SplinePointLinear(p[0], p[1], t)
	case SplineBasis:
		return SplinePointBasis(p[0], p[1], p[2], p[3], t)
	case SplineCatmullRom:
		return SplinePointCatmullRom(p[0], p[1], p[2], p[3], t)
	case SplineBezierQuad:
		return SplinePointBezierQuad(p[0], p[1], p[2], t)
	default:
		return SplinePointBezierCubic(p[0], p[1], p[2], p[3], t)
	}
}

// Samples returns a sequence of Segments()*steps+1 points walking the whole
// spline, suitable for drawing as a polyline. Joints between segments are
// yielded once. The sequence may be ranged over any number of times.
func (s Spline) Samples(steps int) (iter.Seq[Vec2], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, fmt.Errorf("shapes: %d: %w", steps, ErrInvalidSteps)
	}
	segs := s.Segments()
	return func(yield func(Vec2) bool) {
		if !yield(s.Point(0, 0)) {
			return
		}
		for i := 0; i < segs; i++ {
			for j := 1; j <= steps; j++ {
				if !yield(s.Point(i, float64(j)/float64(steps))) {
					return
				}
			}
		}
	}, nil
}

// AppendSamples appends the points of Samples(steps) to dst and returns the
// extended slice. On error dst is returned unchanged.
func (s Spline) AppendSamples(dst []Vec2, steps int) ([]Vec2, error) {
	seq, err := s.Samples(steps)
	if err != nil {
		return dst, err
	}
	for p := range seq {
		dst = append(dst, p)
	}
	return dst, nil
}

// Length approximates the arc length of the spline by summing the chords of
// Samples(steps).
func (s Spline) Length(steps int) (float64, error) {
	seq, err := s.Samples(steps)
	if err != nil {
		return 0, err
	}
	var total float64
	var prev Vec2
	first := true
	for p := range seq {
		if !first {
			total += prev.Distance(p)
		}
		prev = p
		first = false
	}
	return total, nil
}
