package app

import (
	"flag"

	"github.com/jo56/dla-simulation/internal/config"
)

// Flags represents the command-line parameters layered on top of the file
// configuration: file values replace embedded defaults, explicitly set flags
// replace both.
type Flags struct {
	ConfigPath   string
	Particles    int
	Stickiness   float64
	Seed         string
	Speed        int
	Scheme       string
	ColorByAge   bool
	FPS          int
	TelemetryDir string
}

// NewFlags returns a Flags populated with defaults from the given config.
func NewFlags(def config.Config) *Flags {
	return &Flags{
		Particles:    def.Particles,
		Stickiness:   def.Stickiness,
		Seed:         def.Seed,
		Speed:        def.StepsPerFrame,
		Scheme:       def.ColorScheme,
		ColorByAge:   def.ColorByAge,
		FPS:          def.FPS,
		TelemetryDir: def.TelemetryDir,
	}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "optional YAML config file")
	fs.IntVar(&f.Particles, "particles", f.Particles, "target particle count (capped to grid capacity)")
	fs.Float64Var(&f.Stickiness, "stickiness", f.Stickiness, "bonding probability, 0.1-1.0")
	fs.StringVar(&f.Seed, "seed", f.Seed, "initial seed pattern (point, line, cross, circle, ring, ...)")
	fs.IntVar(&f.Speed, "speed", f.Speed, "simulation steps per frame, 1-50")
	fs.StringVar(&f.Scheme, "scheme", f.Scheme, "color scheme for age coloring")
	fs.BoolVar(&f.ColorByAge, "age-color", f.ColorByAge, "color particles by arrival age")
	fs.IntVar(&f.FPS, "fps", f.FPS, "terminal draw rate")
	fs.StringVar(&f.TelemetryDir, "telemetry", f.TelemetryDir, "directory for growth CSV exports")
}

// Apply copies every flag the user explicitly set on fs into cfg.
func (f *Flags) Apply(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "particles":
			cfg.Particles = f.Particles
		case "stickiness":
			cfg.Stickiness = f.Stickiness
		case "seed":
			cfg.Seed = f.Seed
		case "speed":
			cfg.StepsPerFrame = f.Speed
		case "scheme":
			cfg.ColorScheme = f.Scheme
		case "age-color":
			cfg.ColorByAge = f.ColorByAge
		case "fps":
			cfg.FPS = f.FPS
		case "telemetry":
			cfg.TelemetryDir = f.TelemetryDir
		}
	})
	cfg.Clamp()
}
