package viz

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

// AxisLength is the length of each drawn axis in model units.
const AxisLength = 1.0

// Scene is one frame: a line strip plus the three coordinate axes.
type Scene struct {
	Strip []Vec3
	// W is the homogeneous weight applied to every strip vertex.
	W         float64
	LineColor lipgloss.Color
	AxisColor lipgloss.Color
}

// Draw clears the canvas and paints the scene. Canvas faults are left for the
// caller to collect with Err.
func (s Scene) Draw(c *Canvas, p Projection) {
	c.Clear()

	c.SetPen(s.LineColor)
	DrawStrip(c, p, s.Strip, s.W)

	c.SetPen(s.AxisColor)
	origin := Vec3{}
	axes := []struct {
		tip   Vec3
		label string
	}{
		{Vec3{X: AxisLength}, "X"},
		{Vec3{Y: AxisLength}, "Y"},
		{Vec3{Z: AxisLength}, "Z"},
	}
	for _, a := range axes {
		DrawSegment(c, p, origin, a.tip)
	}
	for _, a := range axes {
		DrawLabel(c, p, a.tip, a.label)
	}
}

// RandomColor picks an opaque colour with each channel in [0, 255).
func RandomColor(rng *rand.Rand) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rng.Intn(255), rng.Intn(255), rng.Intn(255)))
}
