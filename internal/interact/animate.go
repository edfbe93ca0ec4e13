package interact

import (
	"math"
	"time"
)

// DegreesPerSecond is the spin rate while animating.
const DegreesPerSecond = 90.0

// Animate sets th and ph from the time elapsed since the session started and
// reports whether a redraw is needed. Both angles follow the same function of
// time and are truncated to whole degrees. It is a no-op when not animating.
func (s *State) Animate(elapsed time.Duration) bool {
	if !s.Animating {
		return false
	}
	angle := int(math.Mod(DegreesPerSecond*elapsed.Seconds(), 360))
	s.View.Th = angle
	s.View.Ph = angle
	return true
}
