package interact

// Outcome tells the renderer what to do after an event.
type Outcome int

const (
	OutcomeRedraw Outcome = iota
	OutcomeQuit
)

// Apply mutates the state for ev. Every event except EventQuit asks for a
// redraw, including EventNone, which leaves the state untouched.
func (s *State) Apply(ev Event) Outcome {
	switch ev {
	case EventQuit:
		return OutcomeQuit
	case EventReset:
		s.View.Th, s.View.Ph = 0, 0
		s.Animating = false
	case EventZoomOut:
		s.View.W += ZoomStep
		s.Animating = false
	case EventZoomIn:
		s.View.W -= ZoomStep
		s.Animating = false
	case EventSInc:
		s.Params.S += SStep
		s.Animating = false
	case EventSDec:
		s.Params.S -= SStep
		s.Animating = false
	case EventBInc:
		s.Params.B += BStep
		s.Animating = false
	case EventBDec:
		s.Params.B -= BStep
		s.Animating = false
	case EventRInc:
		s.Params.R += RStep
		s.Animating = false
	case EventRDec:
		s.Params.R -= RStep
		s.Animating = false
	case EventToggleAnimation:
		s.Animating = !s.Animating
	case EventViewX:
		s.View.Th, s.View.Ph = 90, 0
		s.Animating = false
	case EventViewY:
		s.View.Th, s.View.Ph = 0, -90
		s.Animating = false
	case EventViewZ:
		s.View.Th, s.View.Ph = 0, 0
		s.Animating = false
	case EventRight, EventLeft, EventUp, EventDown:
		s.rotate(ev)
	}
	return OutcomeRedraw
}

// rotate nudges the camera and keeps both angles within (-360, 360). Go's %
// truncates toward zero, so negative angles stay negative.
func (s *State) rotate(ev Event) {
	switch ev {
	case EventRight:
		s.View.Th += AngleStep
	case EventLeft:
		s.View.Th -= AngleStep
	case EventUp:
		s.View.Ph += AngleStep
	case EventDown:
		s.View.Ph -= AngleStep
	}
	s.View.Th %= 360
	s.View.Ph %= 360
}
