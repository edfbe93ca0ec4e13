package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/gui"
	"github.com/san-kum/lorenz/internal/serve"
	"github.com/san-kum/lorenz/internal/tui"
)

var (
	sshHost    string
	sshPort    string
	sshHostKey string
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "view the attractor in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runView,
	}
}

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "view the attractor in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the terminal viewer over ssh",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&sshHost, "host", "", "listen host (env "+config.EnvSSHHost+")")
	cmd.Flags().StringVar(&sshPort, "port", "", "listen port (env "+config.EnvSSHPort+")")
	cmd.Flags().StringVar(&sshHostKey, "host-key", "", "host key path, created if missing (env "+config.EnvSSHHostKey+")")
	return cmd
}

// viewerOptions builds options for one viewer session with its own state.
func viewerOptions(cfg *config.Config) tui.Options {
	return tui.Options{
		State:      cfg.NewState(),
		Trajectory: cfg.TrajectoryConfig(),
		Dim:        cfg.View.Dim,
		FPS:        cfg.View.FPS,
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	return tui.Run(ctx, viewerOptions(cfg), logFile != "")
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(gui.Options{
		State:      cfg.NewState(),
		Trajectory: cfg.TrajectoryConfig(),
		Dim:        cfg.View.Dim,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		FPS:        cfg.View.FPS,
		Title:      cfg.Window.Title,
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.SSH.Host = sshHost
	}
	if cmd.Flags().Changed("port") {
		cfg.SSH.Port = sshPort
	}
	if cmd.Flags().Changed("host-key") {
		cfg.SSH.HostKey = sshHostKey
	}

	srv, err := serve.New(serve.Config{
		Host:        cfg.SSH.Host,
		Port:        cfg.SSH.Port,
		HostKeyPath: cfg.SSH.HostKey,
	}, func() tui.Options { return viewerOptions(cfg) })
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"host":     cfg.SSH.Host,
		"port":     cfg.SSH.Port,
		"host_key": cfg.SSH.HostKey,
	}).Info("ssh config")

	ctx, cancel := signalContext()
	defer cancel()
	return srv.Run(ctx)
}
