package physics

import (
	"fmt"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Default Lorenz coefficients. B is the truncated 2.6666 rather than 8/3.
const (
	DefaultS = 10.0
	DefaultB = 2.6666
	DefaultR = 28.0
)

// Lorenz is the three-variable Lorenz system
//
//	dx/dt = s(y - x)
//	dy/dt = x(r - z) - y
//	dz/dt = xy - bz
type Lorenz struct {
	S, B, R float64
}

func NewLorenz() *Lorenz          { return &Lorenz{S: DefaultS, B: DefaultB, R: DefaultR} }
func (l *Lorenz) StateDim() int   { return 3 }
func (l *Lorenz) ControlDim() int { return 0 }

// Derive evaluates all three derivatives from the same input point.
func (l *Lorenz) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	return dynamo.State{
		l.S * (x[1] - x[0]),
		x[0]*(l.R-x[2]) - x[1],
		x[0]*x[1] - l.B*x[2],
	}
}

func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{1.0, 1.0, 1.0} }

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"s": l.S, "b": l.B, "r": l.R}
}

func (l *Lorenz) SetParam(name string, value float64) error {
	switch name {
	case "s":
		l.S = value
	case "b":
		l.B = value
	case "r":
		l.R = value
	default:
		return fmt.Errorf("%w: %s", dynamo.ErrUnknownParam, name)
	}
	return nil
}

func (l *Lorenz) String() string {
	return fmt.Sprintf("s=%g b=%g r=%g", l.S, l.B, l.R)
}
