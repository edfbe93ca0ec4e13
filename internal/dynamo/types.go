package dynamo

import "math"

// State is a point in phase space.
type State []float64

func (s State) Clone() State {
	return append(State(nil), s...)
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm is the Euclidean length.
func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Add and Sub combine componentwise. Components missing from other are
// treated as zero; the result always has the length of s.
func (s State) Add(other State) State { return s.combine(other, 1) }

func (s State) Sub(other State) State { return s.combine(other, -1) }

func (s State) combine(other State, sign float64) State {
	out := s.Clone()
	for i := range out {
		if i < len(other) {
			out[i] += sign * other[i]
		}
	}
	return out
}

func (s State) Scale(factor float64) State {
	out := make(State, len(s))
	for i, v := range s {
		out[i] = v * factor
	}
	return out
}

// Control is an external input vector. Autonomous systems receive nil.
type Control []float64

// System is a continuous-time model dx/dt = f(x, u, t).
type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

// Integrator advances x by one fixed step dt and returns the new state. It
// must not modify x.
type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

// Configurable exposes named coefficients for sweeps and presets.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
