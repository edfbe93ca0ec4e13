// Package export writes a single trajectory to csv, json or svg. It is only
// reached from the export command; the viewer itself never writes files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/trajectory"
	"github.com/san-kum/lorenz/internal/viz"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Document is one trajectory plus the settings that produced it.
type Document struct {
	Params     physics.Lorenz
	Config     trajectory.Config
	Integrator string
	Trajectory trajectory.Trajectory
	// Projection and W are used by the svg writer only.
	Projection viz.Projection
	W          float64
	Width      int
	Height     int
}

type writerFunc func(io.Writer, Document) error

var writers = map[string]writerFunc{
	"csv":  WriteCSV,
	"json": WriteJSON,
	"svg":  WriteSVG,
}

// Formats lists the supported format names.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Write(w io.Writer, format string, doc Document) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return fn(w, doc)
}

// WriteCSV writes one row per point: step, x, y, z.
func WriteCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "x", "y", "z"}); err != nil {
		return err
	}
	for i, p := range doc.Trajectory {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.FormatFloat(p.Z, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonDoc struct {
	S          float64      `json:"s"`
	B          float64      `json:"b"`
	R          float64      `json:"r"`
	Steps      int          `json:"steps"`
	Dt         float64      `json:"dt"`
	Scale      float64      `json:"scale"`
	Initial    []float64    `json:"initial"`
	Integrator string       `json:"integrator"`
	Diverged   bool         `json:"diverged"`
	DivergedAt int          `json:"diverged_at,omitempty"`
	Points     [][3]float64 `json:"points"`
}

// WriteJSON writes the settings and the points. JSON has no encoding for NaN
// or infinity, so points stop at the first non-finite one and the document is
// marked diverged with its 1-based step.
func WriteJSON(w io.Writer, doc Document) error {
	out := jsonDoc{
		S:          doc.Params.S,
		B:          doc.Params.B,
		R:          doc.Params.R,
		Steps:      doc.Config.Steps,
		Dt:         doc.Config.Dt,
		Scale:      doc.Config.Scale,
		Initial:    []float64(doc.Config.Initial),
		Integrator: doc.Integrator,
		Points:     make([][3]float64, 0, len(doc.Trajectory)),
	}
	for i, p := range doc.Trajectory {
		if !p.Finite() {
			out.Diverged = true
			out.DivergedAt = i + 1
			break
		}
		out.Points = append(out.Points, [3]float64{p.X, p.Y, p.Z})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
