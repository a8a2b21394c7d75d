package draw

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/shapes"
)

// RopeJoinMode controls how segments join in a Rope mesh.
type RopeJoinMode uint8

const (
	// RopeJoinMiter extends segment corners to a sharp point.
	RopeJoinMiter RopeJoinMode = iota
	// RopeJoinBevel keeps the unscaled average normal, narrowing sharp corners
	// instead of spiking.
	RopeJoinBevel
)

// RopeConfig configures a Rope mesh.
type RopeConfig struct {
	Width    float64
	JoinMode RopeJoinMode
	Steps    int // subdivisions per spline segment (default shapes.DefaultSplineSteps)
}

// Rope is a ribbon mesh that follows a polyline path. With an Image set, the
// image is tiled along the path (SrcX) and spans its full height across the
// ribbon (SrcY); without one, the ribbon is a solid color.
type Rope struct {
	Image    *ebiten.Image
	Vertices []ebiten.Vertex
	Indices  []uint32

	config RopeConfig
	cumLen []float64      // preallocated cumulative length buffer
	ptsBuf []shapes.Vec2 // preallocated points buffer for SetSpline
}

// NewRope creates an empty rope. img may be nil for a solid-color ribbon.
func NewRope(img *ebiten.Image, cfg RopeConfig) *Rope {
	return &Rope{Image: img, config: cfg}
}

// Config returns a pointer to the rope's configuration so callers can mutate
// fields directly before the next SetPoints or SetSpline.
func (r *Rope) Config() *RopeConfig {
	return &r.config
}

// SetSpline samples s and rebuilds the mesh along the resulting polyline.
// Invalid splines clear the mesh and return the validation error.
func (r *Rope) SetSpline(s shapes.Spline) error {
	steps := r.config.Steps
	if steps <= 0 {
		steps = shapes.DefaultSplineSteps
	}
	pts, err := s.AppendSamples(r.ptsBuf[:0], steps)
	r.ptsBuf = pts
	if err != nil {
		r.SetPoints(nil)
		return err
	}
	r.SetPoints(r.ptsBuf)
	return nil
}

// SetPoints updates the rope's path. For N points: 2N vertices, 6(N-1) indices.
// Fewer than two points clear the mesh.
func (r *Rope) SetPoints(points []shapes.Vec2) {
	if len(points) < 2 {
		r.Vertices = r.Vertices[:0]
		r.Indices = r.Indices[:0]
		return
	}

	n := len(points)
	numVerts := n * 2
	numInds := (n - 1) * 6

	// Grow vertex/index slices to high-water mark.
	if cap(r.Vertices) < numVerts {
		r.Vertices = make([]ebiten.Vertex, numVerts)
	}
	r.Vertices = r.Vertices[:numVerts]

	if cap(r.Indices) < numInds {
		r.Indices = make([]uint32, numInds)
	}
	r.Indices = r.Indices[:numInds]

	imgH := float32(0)
	if r.Image != nil {
		imgH = float32(r.Image.Bounds().Dy())
	}

	halfW := r.config.Width / 2

	// Compute cumulative path length for UV tiling.
	if cap(r.cumLen) < n {
		r.cumLen = make([]float64, n)
	}
	r.cumLen = r.cumLen[:n]
	r.cumLen[0] = 0
	for i := 1; i < n; i++ {
		r.cumLen[i] = r.cumLen[i-1] + points[i-1].Distance(points[i])
	}

	for i := 0; i < n; i++ {
		var nrm shapes.Vec2
		if i == 0 {
			nrm = perpendicular(points[0], points[1])
		} else if i == n-1 {
			nrm = perpendicular(points[n-2], points[n-1])
		} else {
			// Average of adjacent segment normals (miter).
			n0 := perpendicular(points[i-1], points[i])
			n1 := perpendicular(points[i], points[i+1])
			nrm = n0.Add(n1).Normalize()
			if r.config.JoinMode == RopeJoinMiter {
				// Scale to keep the ribbon width at the miter, clamped to 2x
				// so sharp corners do not spike.
				if dot := n0.Dot(nrm); dot > 0.1 {
					nrm = nrm.Scale(min(1/dot, 2))
				}
			}
		}

		var srcX, srcY0, srcY1 float32 = 0.5, 0.5, 0.5
		if r.Image != nil {
			srcX = float32(r.cumLen[i])
			srcY0, srcY1 = 0, imgH
		}

		off := nrm.Scale(halfW)
		vi := i * 2
		r.Vertices[vi] = ebiten.Vertex{
			DstX:   float32(points[i].X + off.X),
			DstY:   float32(points[i].Y + off.Y),
			SrcX:   srcX,
			SrcY:   srcY0,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
		r.Vertices[vi+1] = ebiten.Vertex{
			DstX:   float32(points[i].X - off.X),
			DstY:   float32(points[i].Y - off.Y),
			SrcX:   srcX,
			SrcY:   srcY1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}

	// Two triangles per segment.
	for i := 0; i < n-1; i++ {
		ii := i * 6
		v := uint32(i * 2)
		r.Indices[ii+0] = v
		r.Indices[ii+1] = v + 1
		r.Indices[ii+2] = v + 2
		r.Indices[ii+3] = v + 1
		r.Indices[ii+4] = v + 3
		r.Indices[ii+5] = v + 2
	}
}

// Bounds returns the axis-aligned bounding box of the rope's vertices.
func (r *Rope) Bounds() shapes.Rect {
	if len(r.Vertices) == 0 {
		return shapes.Rect{}
	}
	minX, minY := float64(r.Vertices[0].DstX), float64(r.Vertices[0].DstY)
	maxX, maxY := minX, minY
	for _, v := range r.Vertices[1:] {
		minX = min(minX, float64(v.DstX))
		maxX = max(maxX, float64(v.DstX))
		minY = min(minY, float64(v.DstY))
		maxY = max(maxY, float64(v.DstY))
	}
	return shapes.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Draw renders the rope onto dst tinted by clr. A nil clr draws untinted.
func (r *Rope) Draw(dst *ebiten.Image, clr color.Color) {
	if len(r.Indices) == 0 {
		return
	}
	tint(r.Vertices, clr)
	src := r.Image
	var op ebiten.DrawTrianglesOptions
	if src == nil {
		src = whitePixel()
	} else {
		op.Address = ebiten.AddressRepeat
	}
	dst.DrawTriangles32(r.Vertices, r.Indices, src, &op)
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b shapes.Vec2) shapes.Vec2 {
	d := b.Sub(a)
	ln := math.Sqrt(d.X*d.X + d.Y*d.Y)
	if ln < 1e-10 {
		return shapes.Vec2{X: 0, Y: -1}
	}
	return shapes.Vec2{X: -d.Y / ln, Y: d.X / ln}
}
