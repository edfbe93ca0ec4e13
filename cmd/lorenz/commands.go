package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lorenz/internal/analysis"
	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/export"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/trajectory"
	"github.com/san-kum/lorenz/internal/viz"
)

var (
	integrator  string
	lyapInteg   string
	format      string
	outPath     string
	viewTh      int
	viewPh      int
	viewW       float64
	svgWidth    int
	svgHeight   int
	component   string
	plotWidth   int
	plotHeight  int
	lyapDt      float64
	transient   float64
	duration    float64
	sweepParam  string
	sweepFrom   float64
	sweepTo     float64
	sweepCount  int
	forceWrite  bool
	benchRounds int
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "write one trajectory as " + strings.Join(export.Formats(), ", "),
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	cmd.Flags().StringVar(&format, "format", "csv", "output format: "+strings.Join(export.Formats(), ", "))
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&integrator, "integrator", "", "integrator: "+strings.Join(integrators.Names(), ", ")+" (default from config)")
	cmd.Flags().IntVar(&viewTh, "th", 0, "azimuth in degrees (svg)")
	cmd.Flags().IntVar(&viewPh, "ph", 0, "elevation in degrees (svg)")
	cmd.Flags().Float64Var(&viewW, "w", 1, "zoom divisor (svg)")
	cmd.Flags().IntVar(&svgWidth, "width", config.DefaultWidth, "svg width")
	cmd.Flags().IntVar(&svgHeight, "height", config.DefaultHeight, "svg height")
	return cmd
}

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "plot x, y and z against step",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	cmd.Flags().StringVar(&component, "component", "all", "x, y, z or all")
	cmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	cmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "estimate the largest lyapunov exponent, or sweep a parameter",
		Args:  cobra.NoArgs,
		RunE:  runAnalyze,
	}
	cmd.Flags().StringVar(&lyapInteg, "integrator", "rk4", "integrator: "+strings.Join(integrators.Names(), ", "))
	cmd.Flags().Float64Var(&lyapDt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&transient, "transient", 10, "settling time excluded from the estimate")
	cmd.Flags().Float64Var(&duration, "duration", 100, "averaging time, or recording time per sweep sample")
	cmd.Flags().StringVar(&sweepParam, "sweep", "", "sweep this parameter (s, b or r) and draw a bifurcation diagram")
	cmd.Flags().Float64Var(&sweepFrom, "from", 20, "sweep start")
	cmd.Flags().Float64Var(&sweepTo, "to", 200, "sweep end")
	cmd.Flags().IntVar(&sweepCount, "samples", 80, "sweep samples")
	cmd.Flags().IntVar(&plotWidth, "width", 80, "diagram width")
	cmd.Flags().IntVar(&plotHeight, "height", 12, "diagram height")
	return cmd
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "time trajectory generation per integrator",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	cmd.Flags().IntVar(&benchRounds, "rounds", 10, "trajectories per integrator")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tS\tB\tR\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%s\n", name, p.Params.S, p.Params.B, p.Params.R, p.Description)
			}
			w.Flush()
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "lorenz.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !forceWrite {
				return fmt.Errorf("%s exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&forceWrite, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name := integrator
	if name == "" {
		name = cfg.Trajectory.Integrator
	}
	integ, err := integrators.Get(name)
	if err != nil {
		return err
	}

	l := cfg.Lorenz()
	tc := cfg.TrajectoryConfig()
	doc := export.Document{
		Params:     l,
		Config:     tc,
		Integrator: name,
		Trajectory: trajectory.GenerateWith(&l, integ, tc),
		Projection: viz.NewProjection(viewTh, viewPh, cfg.View.Dim, svgWidth, svgHeight),
		W:          viewW,
		Width:      svgWidth,
		Height:     svgHeight,
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := export.Write(w, format, doc); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	l := cfg.Lorenz()
	tr := trajectory.Generate(&l, cfg.TrajectoryConfig())
	if n := finitePrefix(tr); n < len(tr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "trajectory diverges at step %d, plotting the first %d points\n", n+1, n)
		tr = tr[:n]
	}
	if len(tr) == 0 {
		return errors.New("nothing to plot")
	}

	names := map[string]int{"x": 0, "y": 1, "z": 2}
	var series [][]float64
	var captions []string
	switch component {
	case "all":
		for _, c := range []string{"x", "y", "z"} {
			series = append(series, downsample(tr.Component(names[c]), plotWidth))
			captions = append(captions, c)
		}
	default:
		idx, ok := names[component]
		if !ok {
			return fmt.Errorf("unknown component %q", component)
		}
		series = append(series, downsample(tr.Component(idx), plotWidth))
		captions = append(captions, component)
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("%s vs step (s=%g b=%g r=%g)", strings.Join(captions, ", "), l.S, l.B, l.R)),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	integ, err := integrators.Get(lyapInteg)
	if err != nil {
		return err
	}
	l := cfg.Lorenz()
	x0 := cfg.TrajectoryConfig().Initial
	out := cmd.OutOrStdout()

	if sweepParam != "" {
		data, err := analysis.BifurcationDiagram(&l, integ, x0, analysis.Sweep{
			Param:      sweepParam,
			Min:        sweepFrom,
			Max:        sweepTo,
			Samples:    sweepCount,
			StateIndex: 2,
			Dt:         lyapDt,
			Transient:  transient,
			Record:     duration,
		})
		if err != nil {
			return err
		}
		c := viz.NewCanvas(plotWidth, plotHeight)
		analysis.DrawBifurcation(c, data)
		fmt.Fprintln(out, viz.HeaderStyle.Render(fmt.Sprintf("local maxima of z, %s from %g to %g", sweepParam, sweepFrom, sweepTo)))
		fmt.Fprintln(out, viz.Panel(c.Render()))
		return nil
	}

	start := time.Now()
	lambda := analysis.LyapunovExponent(&l, integ, x0, lyapDt, transient, duration, 1e-8)
	elapsed := time.Since(start).Round(time.Millisecond)

	verdict := "not chaotic"
	switch {
	case math.IsNaN(lambda):
		verdict = "diverged"
	case lambda > 0.01:
		verdict = "chaotic"
	}
	fmt.Fprintln(out, viz.HeaderStyle.Render(fmt.Sprintf("s=%g b=%g r=%g", l.S, l.B, l.R)))
	fmt.Fprintln(out, viz.Metric("integrator", lyapInteg))
	fmt.Fprintln(out, viz.Metric("lyapunov  ", fmt.Sprintf("%.4f", lambda)))
	fmt.Fprintln(out, viz.Metric("verdict   ", verdict))
	fmt.Fprintln(out, viz.Separator(32))
	fmt.Fprintln(out, viz.Metric("took      ", elapsed.String()))
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	l := cfg.Lorenz()
	tc := cfg.TrajectoryConfig()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tSTEPS\tPER TRAJECTORY\tLAST POINT")
	for _, name := range integrators.Names() {
		integ, err := integrators.Get(name)
		if err != nil {
			return err
		}
		var tr trajectory.Trajectory
		start := time.Now()
		for i := 0; i < max(benchRounds, 1); i++ {
			tr = trajectory.GenerateWith(&l, integ, tc)
		}
		per := time.Since(start) / time.Duration(max(benchRounds, 1))
		last := "-"
		if len(tr) > 0 {
			p := tr[len(tr)-1]
			last = fmt.Sprintf("(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
		}
		fmt.Fprintf(w, "%s\t%d\t%v\t%s\n", name, tc.Steps, per, last)
	}
	return w.Flush()
}

func finitePrefix(tr trajectory.Trajectory) int {
	for i, p := range tr {
		if !p.Finite() {
			return i
		}
	}
	return len(tr)
}

// downsample keeps at most n evenly spaced values.
func downsample(v []float64, n int) []float64 {
	if n <= 0 || len(v) <= n {
		return v
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v[i*len(v)/n]
	}
	return out
}
