package render

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorScheme selects the gradient used for age-based coloring.
type ColorScheme int

const (
	SchemeIce ColorScheme = iota
	SchemeFire
	SchemePlasma
	SchemeViridis
	SchemeRainbow
	SchemeGrayscale
	SchemeOcean
	SchemeNeon

	schemeCount
)

var schemeNames = [...]string{
	SchemeIce:       "Ice",
	SchemeFire:      "Fire",
	SchemePlasma:    "Plasma",
	SchemeViridis:   "Viridis",
	SchemeRainbow:   "Rainbow",
	SchemeGrayscale: "Grayscale",
	SchemeOcean:     "Ocean",
	SchemeNeon:      "Neon",
}

// Name returns the human-readable scheme name.
func (c ColorScheme) Name() string {
	if c < 0 || c >= schemeCount {
		return "Unknown"
	}
	return schemeNames[c]
}

// Next returns the following scheme, wrapping around.
func (c ColorScheme) Next() ColorScheme { return (c + 1) % schemeCount }

// Prev returns the preceding scheme, wrapping around.
func (c ColorScheme) Prev() ColorScheme { return (c + schemeCount - 1) % schemeCount }

// ParseScheme maps a name like "viridis" to its scheme, defaulting to Ice.
func ParseScheme(name string) ColorScheme {
	for i, n := range schemeNames {
		if strings.EqualFold(n, name) {
			return ColorScheme(i)
		}
	}
	return SchemeIce
}

// gradientStop anchors a color at a position in [0, 1].
type gradientStop struct {
	pos float64
	col colorful.Color
}

func hexStop(pos float64, hex string) gradientStop {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("render: bad gradient stop " + hex)
	}
	return gradientStop{pos: pos, col: c}
}

// schemeStops holds the gradient anchors per scheme. Rainbow is generated
// from HSV rotation instead and has no entry here.
var schemeStops = map[ColorScheme][]gradientStop{
	SchemeIce: {
		hexStop(0.0, "#0020b4"),
		hexStop(0.5, "#3fb8e6"),
		hexStop(1.0, "#ffffff"),
	},
	SchemeFire: {
		hexStop(0.0, "#000000"),
		hexStop(0.33, "#c80000"),
		hexStop(0.66, "#ff9600"),
		hexStop(1.0, "#ffffc8"),
	},
	SchemePlasma: {
		hexStop(0.0, "#0d0887"),
		hexStop(0.33, "#9c179e"),
		hexStop(0.66, "#ed7953"),
		hexStop(1.0, "#f0f921"),
	},
	SchemeViridis: {
		hexStop(0.0, "#440154"),
		hexStop(0.33, "#31688e"),
		hexStop(0.66, "#35b779"),
		hexStop(1.0, "#fde725"),
	},
	SchemeGrayscale: {
		hexStop(0.0, "#000000"),
		hexStop(1.0, "#ffffff"),
	},
	SchemeOcean: {
		hexStop(0.0, "#003264"),
		hexStop(0.5, "#3296be"),
		hexStop(1.0, "#64c8ff"),
	},
	SchemeNeon: {
		hexStop(0.0, "#ff00ff"),
		hexStop(0.5, "#00ffff"),
		hexStop(1.0, "#00ff00"),
	},
}

// ColorLUT is a precomputed 256-entry gradient table. Building the gradient
// once keeps per-glyph color lookup to an index operation.
type ColorLUT struct {
	table [256]color.RGBA
}

// NewColorLUT materializes the gradient for the given scheme.
func NewColorLUT(scheme ColorScheme) *ColorLUT {
	lut := &ColorLUT{}
	for i := range lut.table {
		t := float64(i) / float64(len(lut.table)-1)
		lut.table[i] = toRGBA(schemeColor(scheme, t))
	}
	return lut
}

// Lookup maps t in [0, 1] to a color; out-of-range values saturate.
func (l *ColorLUT) Lookup(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return l.table[int(t*float64(len(l.table)-1))]
}

func schemeColor(scheme ColorScheme, t float64) colorful.Color {
	if scheme == SchemeRainbow {
		return colorful.Hsv(t*360, 1, 1)
	}
	stops, ok := schemeStops[scheme]
	if !ok {
		stops = schemeStops[SchemeIce]
	}
	if t <= stops[0].pos {
		return stops[0].col
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t <= b.pos {
			f := (t - a.pos) / (b.pos - a.pos)
			return a.col.BlendLab(b.col, f).Clamped()
		}
	}
	return stops[len(stops)-1].col
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
