package integrators

import "github.com/san-kum/lorenz/internal/dynamo"

// Classical fourth-order Runge-Kutta: stage s is evaluated at
// x + dt*rk4Nodes[s]*k[s-1] and the stages are combined with rk4Weights/6.
var (
	rk4Nodes   = [4]float64{0, 0.5, 0.5, 1}
	rk4Weights = [4]float64{1, 2, 2, 1}
)

// RK4 reuses its stage buffers between steps, so one value must not be
// shared between goroutines.
type RK4 struct {
	k     [4]dynamo.State
	probe dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) resize(n int) {
	if len(r.probe) == n {
		return
	}
	for s := range r.k {
		r.k[s] = make(dynamo.State, n)
	}
	r.probe = make(dynamo.State, n)
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	r.resize(n)

	copy(r.k[0], dyn.Derive(x, u, t))
	for s := 1; s < len(r.k); s++ {
		h := dt * rk4Nodes[s]
		for i := range r.probe {
			r.probe[i] = x[i] + h*r.k[s-1][i]
		}
		copy(r.k[s], dyn.Derive(r.probe, u, t+h))
	}

	next := x.Clone()
	for s, k := range r.k {
		w := dt * rk4Weights[s] / 6
		for i := range next {
			next[i] += w * k[i]
		}
	}
	return next
}
