// Package trajectory regenerates the Lorenz attractor curve that is drawn on
// every redraw.
package trajectory

import (
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
)

const (
	DefaultSteps = 50000
	DefaultDt    = 0.001
	// DefaultScale maps model coordinates into the display box.
	DefaultScale = 0.03
)

type Config struct {
	Steps   int
	Dt      float64
	Initial dynamo.State
	Scale   float64
}

func DefaultConfig() Config {
	return Config{
		Steps:   DefaultSteps,
		Dt:      DefaultDt,
		Initial: dynamo.State{1, 1, 1},
		Scale:   DefaultScale,
	}
}

type Point struct {
	X, Y, Z float64
}

// Trajectory is an ordered line strip in display space.
type Trajectory []Point

// Generate integrates l with forward Euler from cfg.Initial and returns
// cfg.Steps scaled points. The initial point itself is not emitted.
func Generate(l *physics.Lorenz, cfg Config) Trajectory {
	return GenerateWith(l, integrators.NewEuler(), cfg)
}

// GenerateWith runs the same pipeline with any integrator. dyn must have a
// state of at least three components; the first three are emitted.
func GenerateWith(dyn dynamo.System, integ dynamo.Integrator, cfg Config) Trajectory {
	if cfg.Steps <= 0 {
		return Trajectory{}
	}
	out := make(Trajectory, 0, cfg.Steps)
	x := cfg.Initial.Clone()
	t := 0.0
	for i := 0; i < cfg.Steps; i++ {
		x = integ.Step(dyn, x, nil, t, cfg.Dt)
		t += cfg.Dt
		out = append(out, Point{x[0] * cfg.Scale, x[1] * cfg.Scale, x[2] * cfg.Scale})
	}
	return out
}

// Component extracts one coordinate (0=x, 1=y, 2=z) as a series.
func (tr Trajectory) Component(i int) []float64 {
	series := make([]float64, len(tr))
	for k, p := range tr {
		switch i {
		case 0:
			series[k] = p.X
		case 1:
			series[k] = p.Y
		default:
			series[k] = p.Z
		}
	}
	return series
}

// Bounds returns the componentwise min and max over finite points.
func (tr Trajectory) Bounds() (lo, hi Point) {
	lo = Point{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range tr {
		if !p.Finite() {
			continue
		}
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
		lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
	}
	return lo, hi
}

func (p Point) Finite() bool {
	return dynamo.State{p.X, p.Y, p.Z}.IsValid()
}
