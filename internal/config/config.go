package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/interact"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/trajectory"
)

const (
	DefaultDim         = 2.0
	DefaultFPS         = 60
	DefaultWidth       = 500
	DefaultHeight      = 500
	DefaultTitle       = "Lorenz Attractor"
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultSSHHostKey  = ".ssh/lorenz_host_ed25519"
	DefaultTheme       = "classic"
	DefaultIntegrator  = "euler"
	EnvSSHHost         = "LORENZ_SSH_HOST"
	EnvSSHPort         = "LORENZ_SSH_PORT"
	EnvSSHHostKey      = "LORENZ_SSH_HOST_KEY"
	defaultFileMode    = 0644
	initialStateLength = 3
)

type Config struct {
	Params     ParamsConfig     `yaml:"params"`
	Trajectory TrajectoryConfig `yaml:"trajectory"`
	View       ViewConfig       `yaml:"view"`
	Window     WindowConfig     `yaml:"window"`
	SSH        SSHConfig        `yaml:"ssh"`
	Theme      string           `yaml:"theme" validate:"omitempty,oneof=classic retro ocean"`
}

// ParamsConfig holds the Lorenz coefficients. Any real value is accepted.
type ParamsConfig struct {
	S float64 `yaml:"s"`
	B float64 `yaml:"b"`
	R float64 `yaml:"r"`
}

type TrajectoryConfig struct {
	Steps      int       `yaml:"steps" validate:"gt=0"`
	Dt         float64   `yaml:"dt" validate:"gt=0"`
	Scale      float64   `yaml:"scale" validate:"gt=0"`
	Initial    []float64 `yaml:"initial" validate:"len=3"`
	Integrator string    `yaml:"integrator" validate:"oneof=euler rk4"`
}

type ViewConfig struct {
	Th  int     `yaml:"th"`
	Ph  int     `yaml:"ph"`
	W   float64 `yaml:"w"`
	Dim float64 `yaml:"dim" validate:"gt=0"`
	FPS int     `yaml:"fps" validate:"min=1,max=240"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" validate:"gt=0"`
	Height int    `yaml:"height" validate:"gt=0"`
	Title  string `yaml:"title"`
}

type SSHConfig struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port" validate:"required,numeric"`
	HostKey string `yaml:"host_key"`
}

func DefaultConfig() *Config {
	return &Config{
		Params: ParamsConfig{
			S: physics.DefaultS,
			B: physics.DefaultB,
			R: physics.DefaultR,
		},
		Trajectory: TrajectoryConfig{
			Steps:      trajectory.DefaultSteps,
			Dt:         trajectory.DefaultDt,
			Scale:      trajectory.DefaultScale,
			Initial:    []float64{1, 1, 1},
			Integrator: DefaultIntegrator,
		},
		View: ViewConfig{
			W:   1,
			Dim: DefaultDim,
			FPS: DefaultFPS,
		},
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		SSH: SSHConfig{
			Host:    DefaultSSHHost,
			Port:    DefaultSSHPort,
			HostKey: DefaultSSHHostKey,
		},
		Theme: DefaultTheme,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, defaultFileMode)
}

// Validate checks the numeric settings the viewer depends on. The Lorenz
// coefficients are never checked.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyEnv overrides the SSH settings from LORENZ_SSH_* variables.
func (c *Config) ApplyEnv() {
	c.SSH.Host = GetEnv(EnvSSHHost, c.SSH.Host)
	c.SSH.Port = GetEnv(EnvSSHPort, c.SSH.Port)
	c.SSH.HostKey = GetEnv(EnvSSHHostKey, c.SSH.HostKey)
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func (c *Config) Lorenz() physics.Lorenz {
	return physics.Lorenz{S: c.Params.S, B: c.Params.B, R: c.Params.R}
}

func (c *Config) TrajectoryConfig() trajectory.Config {
	initial := make(dynamo.State, initialStateLength)
	copy(initial, c.Trajectory.Initial)
	return trajectory.Config{
		Steps:   c.Trajectory.Steps,
		Dt:      c.Trajectory.Dt,
		Initial: initial,
		Scale:   c.Trajectory.Scale,
	}
}

// NewState returns a fresh session state for the configured parameters and
// starting view.
func (c *Config) NewState() *interact.State {
	return interact.NewWith(c.Lorenz(), interact.View{Th: c.View.Th, Ph: c.View.Ph, W: c.View.W})
}
