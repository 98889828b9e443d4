// Package config provides configuration loading for the simulator binaries.
// Defaults are embedded; a user file overrides them field by field.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the user-tunable settings shared by both frontends.
type Config struct {
	// Particles is the target particle count; capped to the grid capacity
	// once the grid size is known.
	Particles int `yaml:"particles"`
	// Stickiness is the bonding probability in [0.1, 1.0].
	Stickiness float64 `yaml:"stickiness"`
	// Seed names the initial seed pattern (point, line, ring, ...).
	Seed string `yaml:"seed"`
	// StepsPerFrame controls growth speed, clamped to [1, 50].
	StepsPerFrame int `yaml:"steps_per_frame"`
	// ColorScheme names the age-coloring gradient.
	ColorScheme string `yaml:"color_scheme"`
	// ColorByAge toggles arrival-age coloring versus flat white.
	ColorByAge bool `yaml:"color_by_age"`
	// FPS is the terminal draw rate.
	FPS int `yaml:"fps"`
	// TelemetryDir, when set, receives growth-curve CSV exports.
	TelemetryDir string `yaml:"telemetry_dir"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		// The embedded file ships with the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	c.Clamp()
	return c
}

// Load reads a YAML file over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.Clamp()
	return c, nil
}

// Clamp saturates out-of-range values instead of rejecting them.
func (c *Config) Clamp() {
	if c.Particles < 100 {
		c.Particles = 100
	}
	if c.Stickiness < 0.1 {
		c.Stickiness = 0.1
	}
	if c.Stickiness > 1.0 {
		c.Stickiness = 1.0
	}
	if c.StepsPerFrame < 1 {
		c.StepsPerFrame = 1
	}
	if c.StepsPerFrame > 50 {
		c.StepsPerFrame = 50
	}
	if c.FPS < 1 {
		c.FPS = 60
	}
}
