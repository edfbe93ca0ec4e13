package interact

import (
	"fmt"

	"github.com/san-kum/lorenz/internal/physics"
)

// Step sizes applied per key press.
const (
	SStep     = 0.2
	BStep     = 0.1
	RStep     = 0.5
	ZoomStep  = 0.01
	AngleStep = 5
)

// View is the camera state. Th is azimuth and Ph elevation, both in whole
// degrees. W divides model coordinates, so larger values shrink the curve.
type View struct {
	Th, Ph int
	W      float64
}

type State struct {
	Params    physics.Lorenz
	View      View
	Animating bool
}

// New returns the startup state: th=0, ph=0, w=1, s=10, b=2.6666, r=28.
func New() *State {
	return &State{
		Params: *physics.NewLorenz(),
		View:   View{Th: 0, Ph: 0, W: 1},
	}
}

// NewWith starts from explicit parameters and view.
func NewWith(params physics.Lorenz, view View) *State {
	return &State{Params: params, View: view}
}

// Overlay is the status text drawn under every frame.
func (s *State) Overlay() string {
	return fmt.Sprintf("View Angle=%d,%d; s = %f; b = %f; r = %f",
		s.View.Th, s.View.Ph, s.Params.S, s.Params.B, s.Params.R)
}
