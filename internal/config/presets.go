package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

type Preset struct {
	Description string
	Params      ParamsConfig
}

// Presets are named (s, b, r) triples with qualitatively different behaviour.
var Presets = map[string]Preset{
	"classic": {
		Description: "the butterfly attractor",
		Params:      ParamsConfig{S: 10, B: 2.6666, R: 28},
	},
	"origin": {
		Description: "r < 1, decays to the origin",
		Params:      ParamsConfig{S: 10, B: 2.6666, R: 0.5},
	},
	"fixedpoint": {
		Description: "spirals into one of the two off-origin equilibria",
		Params:      ParamsConfig{S: 10, B: 2.6666, R: 14},
	},
	"intermittent": {
		Description: "near the r = 166 intermittency window",
		Params:      ParamsConfig{S: 10, B: 2.6666, R: 166.3},
	},
	"periodic": {
		Description: "large r, a stable periodic orbit",
		Params:      ParamsConfig{S: 10, B: 2.6666, R: 350},
	},
}

func GetPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the Lorenz coefficients with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p, err := GetPreset(name)
	if err != nil {
		return err
	}
	c.Params = p.Params
	return nil
}
