package analysis

import (
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent by following a
// reference trajectory and a neighbour started perturbation away along x.
// After every step the separation is logged and the neighbour is pulled back
// to distance perturbation along the current separation direction.
//
//	λ ≈ (1/T) Σ ln(|δx_k| / δ0)
//
// A positive value indicates chaos. Transient steps are integrated first and
// excluded from the sum. A run that goes non-finite returns NaN.
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, transient, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 || dt <= 0 || duration <= 0 || perturbation <= 0 {
		return 0
	}

	ctrl := make(dynamo.Control, dyn.ControlDim())
	x := x0.Clone()
	t := 0.0
	for t < transient {
		x = integ.Step(dyn, x, ctrl, t, dt)
		t += dt
	}

	xp := x.Clone()
	xp[0] += perturbation

	sumLog := 0.0
	elapsed := 0.0
	for elapsed < duration {
		x = integ.Step(dyn, x, ctrl, t, dt)
		xp = integ.Step(dyn, xp, ctrl, t, dt)
		t += dt
		elapsed += dt

		sep := xp.Sub(x).Norm()
		if !x.IsValid() || math.IsNaN(sep) || math.IsInf(sep, 0) {
			return math.NaN()
		}
		if sep == 0 {
			xp = x.Clone()
			xp[0] += perturbation
			continue
		}
		sumLog += math.Log(sep / perturbation)
		xp = x.Add(xp.Sub(x).Scale(perturbation / sep))
	}

	return sumLog / elapsed
}
