package sim

import (
	"math"
	"strings"

	"github.com/jo56/dla-simulation/internal/core"
)

// SeedPattern selects the initial structure stamped into the grid before
// growth begins. The catalog is closed; every variant derives its shape
// parameters from the current grid dimensions.
type SeedPattern int

const (
	PatternPoint SeedPattern = iota
	PatternLine
	PatternCross
	PatternCircle
	PatternRing
	PatternDiamond
	PatternBlock
	PatternStarburst
	PatternSpiral
	PatternNoise
	PatternScatter
	PatternMultiPoint
	PatternXShape

	patternCount
)

var patternNames = [...]string{
	PatternPoint:      "Point",
	PatternLine:       "Line",
	PatternCross:      "Cross",
	PatternCircle:     "Circle",
	PatternRing:       "Ring",
	PatternDiamond:    "Diamond",
	PatternBlock:      "Block",
	PatternStarburst:  "Starburst",
	PatternSpiral:     "Spiral",
	PatternNoise:      "Noise",
	PatternScatter:    "Scatter",
	PatternMultiPoint: "Multi-Point",
	PatternXShape:     "X-Shape",
}

// Name returns the human-readable pattern name.
func (p SeedPattern) Name() string {
	if p < 0 || p >= patternCount {
		return "Unknown"
	}
	return patternNames[p]
}

// Next returns the following pattern, wrapping at the end of the catalog.
func (p SeedPattern) Next() SeedPattern { return (p + 1) % patternCount }

// Prev returns the preceding pattern, wrapping at the start of the catalog.
func (p SeedPattern) Prev() SeedPattern { return (p + patternCount - 1) % patternCount }

// AllPatterns lists every seed pattern in cycling order.
func AllPatterns() []SeedPattern {
	out := make([]SeedPattern, patternCount)
	for i := range out {
		out[i] = SeedPattern(i)
	}
	return out
}

// ParsePattern maps a name like "ring" or "multi-point" to its pattern.
// Unrecognized names fall back to PatternPoint.
func ParsePattern(name string) SeedPattern {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	for i, n := range patternNames {
		if strings.ToLower(strings.ReplaceAll(n, "-", "")) == name {
			return SeedPattern(i)
		}
	}
	if name == "x" {
		return PatternXShape
	}
	return PatternPoint
}

// stamper marks seed cells while keeping the occupancy count and the true
// maximum center distance accurate. It refuses out-of-bounds writes and
// never counts a cell twice.
type stamper struct {
	grid      *core.ArrivalGrid
	count     int
	maxDistSq float64
}

func (st *stamper) mark(x, y int) {
	if !st.grid.InBounds(x, y) || st.grid.Occupied(x, y) {
		return
	}
	st.grid.Set(x, y, 0)
	st.count++
	dx := float64(x) - float64(st.grid.W)/2
	dy := float64(y) - float64(st.grid.H)/2
	if d := dx*dx + dy*dy; d > st.maxDistSq {
		st.maxDistSq = d
	}
}

// markSegment rasterizes the line from (x0, y0) to (x1, y1).
func (st *stamper) markSegment(x0, y0, x1, y1 float64) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		st.mark(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t))
	}
}

func (st *stamper) radius() float64 { return math.Sqrt(st.maxDistSq) }

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func seedPoint(st *stamper) {
	st.mark(st.grid.W/2, st.grid.H/2)
}

func seedLine(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cy := h / 2
	halfLen := minInt(20, w/4)
	for x := w/2 - halfLen; x < w/2+halfLen; x++ {
		st.mark(x, cy)
	}
}

func seedCross(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cx, cy := w/2, h/2
	armLen := minInt(10, w/8, h/8)
	for i := 0; i < armLen; i++ {
		st.mark(cx-i, cy)
		st.mark(cx+i, cy)
		st.mark(cx, cy-i)
		st.mark(cx, cy+i)
	}
}

// seedCircle stamps a filled disk around the grid center.
func seedCircle(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cx, cy := w/2, h/2
	r := minInt(12, w/8, h/8)
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				st.mark(x, y)
			}
		}
	}
}

// seedRing stamps the one-cell outline of a circle.
func seedRing(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cx := float64(w) / 2
	cy := float64(h) / 2
	r := math.Min(15, math.Min(float64(w/8), float64(h/8)))
	for deg := 0; deg < 360; deg++ {
		a := float64(deg) * math.Pi / 180
		st.mark(int(cx+r*math.Cos(a)), int(cy+r*math.Sin(a)))
	}
}

func seedDiamond(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cx, cy := w/2, h/2
	size := minInt(12, w/8, h/8)
	for i := 0; i <= size; i++ {
		st.mark(cx+i, cy-(size-i))
		st.mark(cx+i, cy+(size-i))
		st.mark(cx-i, cy-(size-i))
		st.mark(cx-i, cy+(size-i))
	}
}

// seedBlock stamps a solid square.
func seedBlock(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cx, cy := w/2, h/2
	half := minInt(8, w/10, h/10)
	for y := cy - half; y <= cy+half; y++ {
		for x := cx - half; x <= cx+half; x++ {
			st.mark(x, y)
		}
	}
}

// seedStarburst stamps a five-pointed star outline.
func seedStarburst(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cx := float64(w) / 2
	cy := float64(h) / 2
	outer := math.Min(15, math.Min(float64(w/8), float64(h/8)))
	inner := outer * 0.4

	var px, py [10]float64
	for i := 0; i < 10; i++ {
		a := (float64(i)*36 - 90) * math.Pi / 180
		r := inner
		if i%2 == 0 {
			r = outer
		}
		px[i] = cx + r*math.Cos(a)
		py[i] = cy + r*math.Sin(a)
	}
	for i := 0; i < 10; i++ {
		j := (i + 1) % 10
		st.markSegment(px[i], py[i], px[j], py[j])
	}
}

// seedSpiral stamps an Archimedean spiral of three turns.
func seedSpiral(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cx := float64(w) / 2
	cy := float64(h) / 2
	maxR := math.Min(20, math.Min(float64(w/6), float64(h/6)))

	const turns = 3.0
	steps := int(turns * 360)
	a := maxR / (turns * 2 * math.Pi)
	for i := 0; i < steps; i++ {
		theta := float64(i) * math.Pi / 180
		r := a * theta
		st.mark(int(cx+r*math.Cos(theta)), int(cy+r*math.Sin(theta)))
	}
}

// seedNoise stamps a disk around a jittered center where the per-cell
// inclusion probability falls off linearly from 1 at the center to a floor
// near the rim. At least one cell is always stamped.
func seedNoise(st *stamper, rng *core.RNG) {
	w, h := st.grid.W, st.grid.H
	r := minInt(12, w/6, h/6)
	jitter := r / 4
	cx := w/2 + rng.IntN(2*jitter+1) - jitter
	cy := h/2 + rng.IntN(2*jitter+1) - jitter

	const floor = 0.15
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := float64(x-cx), float64(y-cy)
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist > float64(r) {
				continue
			}
			p := 1 - dist/float64(r)
			if p < floor {
				p = floor
			}
			if rng.Float64() < p {
				st.mark(x, y)
			}
		}
	}
	if st.count == 0 {
		st.mark(cx, cy)
	}
}

// seedScatter stamps random points uniformly sampled from a bounded disk.
func seedScatter(st *stamper, rng *core.RNG) {
	w, h := st.grid.W, st.grid.H
	cx := float64(w) / 2
	cy := float64(h) / 2
	scatterRadius := float64(minInt(20, w/6, h/6))

	const numSeeds = 15
	for i := 0; i < numSeeds; i++ {
		a := rng.Angle()
		r := rng.Float64() * scatterRadius
		st.mark(int(cx+r*math.Cos(a)), int(cy+r*math.Sin(a)))
	}
}

// seedMultiPoint stamps the center plus four points around it, producing
// competing growth fronts.
func seedMultiPoint(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cx, cy := w/2, h/2
	spread := minInt(25, w/5, h/5)
	st.mark(cx, cy)
	st.mark(cx-spread, cy)
	st.mark(cx+spread, cy)
	st.mark(cx, cy-spread)
	st.mark(cx, cy+spread)
}

func seedXShape(st *stamper) {
	w, h := st.grid.W, st.grid.H
	cx, cy := w/2, h/2
	armLen := minInt(10, w/8, h/8)
	for i := 0; i < armLen; i++ {
		st.mark(cx-i, cy-i)
		st.mark(cx+i, cy+i)
		st.mark(cx+i, cy-i)
		st.mark(cx-i, cy+i)
	}
}
