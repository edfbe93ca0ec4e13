package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/lorenz/internal/viz"
)

const (
	svgBackground = "#000000"
	svgAxes       = "#ffffff"
	svgStroke     = "#00ff88"
	svgFontSize   = 18
)

// WriteSVG renders the trajectory through doc.Projection as a path, with the
// axes and overlay text, the same way the viewer draws a frame.
func WriteSVG(w io.Writer, doc Document) error {
	width, height := doc.Width, doc.Height
	if width <= 0 || height <= 0 {
		return fmt.Errorf("export: svg size %dx%d", width, height)
	}
	fw, fh := float64(width), float64(height)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground)

	verts := make([]viz.Vec3, len(doc.Trajectory))
	for i, p := range doc.Trajectory {
		verts[i] = viz.Vec3(p)
	}

	fmt.Fprintf(bw, `<path fill="none" stroke="%s" stroke-width="1" d="`, svgStroke)
	var last viz.Vec3
	started := false
	viz.Segments(doc.Projection, verts, doc.W, func(a, b viz.Vec3) {
		if !started || a != last {
			x, y := viz.ToScreen(a, fw, fh)
			fmt.Fprintf(bw, "M%.2f,%.2f", x, y)
			started = true
		}
		x, y := viz.ToScreen(b, fw, fh)
		fmt.Fprintf(bw, "L%.2f,%.2f", x, y)
		last = b
	})
	bw.WriteString("\"/>\n")

	for _, axis := range []struct {
		tip  viz.Vec3
		name string
	}{
		{viz.Vec3{X: viz.AxisLength}, "X"},
		{viz.Vec3{Y: viz.AxisLength}, "Y"},
		{viz.Vec3{Z: viz.AxisLength}, "Z"},
	} {
		viz.Segments(doc.Projection, []viz.Vec3{{}, axis.tip}, 1, func(a, b viz.Vec3) {
			x0, y0 := viz.ToScreen(a, fw, fh)
			x1, y1 := viz.ToScreen(b, fw, fh)
			fmt.Fprintf(bw, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n", x0, y0, x1, y1, svgAxes)
		})
		if n, ok := doc.Projection.Anchor(axis.tip); ok {
			x, y := viz.ToScreen(n, fw, fh)
			fmt.Fprintf(bw, `<text x="%.2f" y="%.2f" fill="%s" font-size="%d">%s</text>`+"\n", x, y, svgAxes, svgFontSize, axis.name)
		}
	}

	fmt.Fprintf(bw, `<text x="5" y="%d" fill="%s" font-size="%d">View Angle=%d,%d; s = %f; b = %f; r = %f</text>`+"\n",
		height-5, svgAxes, svgFontSize,
		doc.Projection.Th, doc.Projection.Ph, doc.Params.S, doc.Params.B, doc.Params.R)
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
