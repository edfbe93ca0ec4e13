package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/viz"
)

var (
	configFile string
	preset     string
	paramS     float64
	paramB     float64
	paramR     float64
	theme      string
	verbose    bool
	logFile    string

	logOut *os.File
)

// main registers the commands and runs the terminal viewer when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	if err := run(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// run executes cmd and releases the log file whether or not it failed.
func run(cmd *cobra.Command) error {
	defer closeLog()
	return cmd.Execute()
}

func closeLog() {
	if logOut == nil {
		return
	}
	logrus.SetOutput(os.Stderr)
	logOut.Close()
	logOut = nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "lorenz",
		Short:             "interactive lorenz attractor viewer",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runView,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "parameter preset (see 'lorenz presets')")
	pf.Float64VarP(&paramS, "s", "s", physics.DefaultS, "lorenz parameter s")
	pf.Float64VarP(&paramB, "b", "b", physics.DefaultB, "lorenz parameter b")
	pf.Float64VarP(&paramR, "r", "r", physics.DefaultR, "lorenz parameter r")
	pf.StringVar(&theme, "theme", "", "colour theme: "+strings.Join(viz.ThemeNames(), ", "))
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")

	rootCmd.AddCommand(
		newViewCmd(),
		newGUICmd(),
		newServeCmd(),
		newExportCmd(),
		newPlotCmd(),
		newAnalyzeCmd(),
		newBenchCmd(),
		newPresetsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		logrus.SetOutput(f)
	}
	return nil
}

// loadConfig layers defaults, the config file, a preset, explicit -s/-b/-r
// flags and the environment, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("s") {
		cfg.Params.S = paramS
	}
	if flags.Changed("b") {
		cfg.Params.B = paramB
	}
	if flags.Changed("r") {
		cfg.Params.R = paramR
	}
	if theme != "" {
		cfg.Theme = theme
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	viz.SetTheme(cfg.Theme)
	logrus.WithFields(logrus.Fields{
		"s": cfg.Params.S, "b": cfg.Params.B, "r": cfg.Params.R,
		"steps": cfg.Trajectory.Steps, "dt": cfg.Trajectory.Dt,
	}).Debug("config loaded")
	return cfg, nil
}
