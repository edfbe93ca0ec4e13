package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/viz"
)

// BifurcationPoint holds the local maxima of one state component seen at a
// single parameter value.
type BifurcationPoint struct {
	Param  float64
	Maxima []float64
}

// Sweep describes a parameter sweep.
type Sweep struct {
	Param      string
	Min, Max   float64
	Samples    int
	StateIndex int
	Dt         float64
	Transient  float64
	Record     float64
}

// BifurcationDiagram sweeps one parameter of dyn and records the local
// maxima of a state component after the transient has died out. Periodic
// orbits show a few distinct maxima, chaotic ones a smear. The starting
// parameter value is restored afterwards.
func BifurcationDiagram(dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, sw Sweep) ([]BifurcationPoint, error) {
	tunable, ok := dyn.(dynamo.Configurable)
	if !ok {
		return nil, fmt.Errorf("bifurcation: %T has no tunable parameters", dyn)
	}
	orig, ok := tunable.GetParams()[sw.Param]
	if !ok {
		return nil, fmt.Errorf("%w: %q", dynamo.ErrUnknownParam, sw.Param)
	}
	if sw.StateIndex < 0 || sw.StateIndex >= len(x0) {
		return nil, fmt.Errorf("%w: state index %d", dynamo.ErrDimensionMismatch, sw.StateIndex)
	}
	if !x0.IsValid() {
		return nil, fmt.Errorf("%w: initial state %v", dynamo.ErrInvalidState, x0)
	}
	if sw.Dt <= 0 {
		return nil, fmt.Errorf("bifurcation: non-positive dt %g", sw.Dt)
	}
	defer tunable.SetParam(sw.Param, orig)

	samples := sw.Samples
	if samples < 2 {
		samples = 2
	}
	step := (sw.Max - sw.Min) / float64(samples-1)
	ctrl := make(dynamo.Control, dyn.ControlDim())
	results := make([]BifurcationPoint, 0, samples)

	for i := 0; i < samples; i++ {
		param := sw.Min + float64(i)*step
		if err := tunable.SetParam(sw.Param, param); err != nil {
			return nil, err
		}

		x := x0.Clone()
		t := 0.0
		for t < sw.Transient {
			x = integ.Step(dyn, x, ctrl, t, sw.Dt)
			t += sw.Dt
		}

		var maxima []float64
		prev2, prev1 := math.NaN(), x[sw.StateIndex]
		for t < sw.Transient+sw.Record {
			x = integ.Step(dyn, x, ctrl, t, sw.Dt)
			t += sw.Dt
			cur := x[sw.StateIndex]
			if prev1 > prev2 && prev1 >= cur {
				maxima = append(maxima, prev1)
			}
			prev2, prev1 = prev1, cur
		}

		results = append(results, BifurcationPoint{Param: param, Maxima: maxima})
	}
	return results, nil
}

// DrawBifurcation plots the diagram on a braille canvas, parameter along x
// and maxima along y.
func DrawBifurcation(c *viz.Canvas, data []BifurcationPoint) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range data {
		for _, v := range p.Maxima {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if len(data) == 0 || math.IsInf(lo, 1) {
		return
	}
	if hi == lo {
		hi = lo + 1
	}

	pw, ph := c.PixelSize()
	for i, p := range data {
		x := i * (pw - 1) / max(len(data)-1, 1)
		for _, v := range p.Maxima {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			y := int(math.Round((hi - v) / (hi - lo) * float64(ph-1)))
			c.Set(x, y)
		}
	}
}
