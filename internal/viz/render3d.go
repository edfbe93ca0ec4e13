package viz

import (
	"math"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// DefaultDim is the half-size of the orthographic view box.
const DefaultDim = 2.0

// Projection is an orthographic camera. The scene is rotated about Y by Th
// degrees, then about X by Ph degrees, and mapped into the box
// [-Dim*Aspect, Dim*Aspect] x [-Dim, Dim] x [-Dim, Dim].
type Projection struct {
	Th, Ph int
	Dim    float64
	Aspect float64
}

// NewProjection builds a projection for a viewport of the given pixel size.
// A zero height yields an aspect of 1.
func NewProjection(th, ph int, dim float64, width, height int) Projection {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return Projection{Th: th, Ph: ph, Dim: dim, Aspect: aspect}
}

// Rotate applies the view rotation.
func (p Projection) Rotate(v Vec3) Vec3 {
	ct, st := math.Cos(degToRad(p.Th)), math.Sin(degToRad(p.Th))
	v.X, v.Z = v.X*ct+v.Z*st, -v.X*st+v.Z*ct
	cp, sp := math.Cos(degToRad(p.Ph)), math.Sin(degToRad(p.Ph))
	v.Y, v.Z = v.Y*cp-v.Z*sp, v.Y*sp+v.Z*cp
	return v
}

// NDC maps a homogeneous vertex (v, w) to normalised device coordinates.
// The vertex is visible only when ok is true and all three components lie in
// [-1, 1]. A non-positive w places the vertex outside every clip plane.
func (p Projection) NDC(v Vec3, w float64) (Vec3, bool) {
	if w <= 0 || math.IsNaN(w) {
		return Vec3{}, false
	}
	r := p.Rotate(v).Scale(1 / w)
	return Vec3{
		X: r.X / (p.Dim * p.Aspect),
		Y: r.Y / p.Dim,
		Z: -r.Z / p.Dim,
	}, true
}

// ToScreen maps NDC x and y onto a width x height viewport with y pointing
// down.
func ToScreen(n Vec3, width, height float64) (float64, float64) {
	return (n.X + 1) / 2 * width, (1 - n.Y) / 2 * height
}

// ToPixel maps NDC x and y onto a pw x ph dot grid.
func ToPixel(n Vec3, pw, ph int) (int, int) {
	x, y := ToScreen(n, float64(pw-1), float64(ph-1))
	return int(math.Round(x)), int(math.Round(y))
}

// ClipSegment trims the segment a-b to the NDC cube using Liang-Barsky.
// Endpoints that need no clipping are returned unchanged, so consecutive
// segments of a strip still share their vertices exactly.
func ClipSegment(a, b Vec3) (Vec3, Vec3, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	planes := [6][2]float64{
		{-d.X, a.X + 1}, {d.X, 1 - a.X},
		{-d.Y, a.Y + 1}, {d.Y, 1 - a.Y},
		{-d.Z, a.Z + 1}, {d.Z, 1 - a.Z},
	}
	for _, pl := range planes {
		p, q := pl[0], pl[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = a.Add(d.Scale(t0))
	}
	if t1 < 1 {
		cb = a.Add(d.Scale(t1))
	}
	return ca, cb, true
}

// Segments walks consecutive vertices as a connected line strip, each with
// homogeneous weight w, and calls emit with every visible segment clipped to
// the NDC cube. Segments touching a non-finite vertex are dropped and reported
// as ErrNonFinite. A strip of two or more vertices with no visible segment is
// reported as ErrOffscreen. It returns the number of segments emitted.
func Segments(p Projection, pts []Vec3, w float64, emit func(a, b Vec3)) (int, error) {
	if len(pts) < 2 {
		return 0, nil
	}
	drawn := 0
	nonFinite := false

	prev, prevOK := Vec3{}, false
	for _, v := range pts {
		if !v.Finite() {
			nonFinite = true
			prevOK = false
			continue
		}
		n, ok := p.NDC(v, w)
		if ok && !n.Finite() {
			nonFinite = true
			ok = false
		}
		if ok && prevOK {
			if a, b, in := ClipSegment(prev, n); in {
				emit(a, b)
				drawn++
			}
		}
		prev, prevOK = n, ok
	}

	switch {
	case nonFinite:
		return drawn, ErrNonFinite
	case drawn == 0:
		return 0, ErrOffscreen
	}
	return drawn, nil
}

// DrawStrip rasterises a line strip onto the canvas and records any fault.
func DrawStrip(c *Canvas, p Projection, pts []Vec3, w float64) int {
	pw, ph := c.PixelSize()
	n, err := Segments(p, pts, w, func(a, b Vec3) {
		x0, y0 := ToPixel(a, pw, ph)
		x1, y1 := ToPixel(b, pw, ph)
		c.DrawLine(x0, y0, x1, y1)
	})
	if err != nil {
		c.record(err)
	}
	return n
}

// DrawSegment draws a single line with w = 1.
func DrawSegment(c *Canvas, p Projection, a, b Vec3) bool {
	return DrawStrip(c, p, []Vec3{a, b}, 1) > 0
}

// Anchor projects a w = 1 point for text placement. ok is false when the
// point lies outside the view box.
func (p Projection) Anchor(v Vec3) (Vec3, bool) {
	n, ok := p.NDC(v, 1)
	if !ok || math.Abs(n.X) > 1 || math.Abs(n.Y) > 1 || math.Abs(n.Z) > 1 {
		return n, false
	}
	return n, true
}

// DrawLabel writes text at the projected position of v when it is inside the
// view box.
func DrawLabel(c *Canvas, p Projection, v Vec3, text string) bool {
	n, ok := p.Anchor(v)
	if !ok {
		return false
	}
	pw, ph := c.PixelSize()
	x, y := ToPixel(n, pw, ph)
	c.Label(x, y, text)
	return true
}

func degToRad(d int) float64 {
	return float64(d) * math.Pi / 180
}
