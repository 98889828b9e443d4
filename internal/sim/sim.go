// Package sim implements diffusion-limited aggregation: particles random-walk
// in from a spawn circle and freeze onto the growing cluster on contact.
package sim

import (
	"fmt"
	"math"

	"github.com/jo56/dla-simulation/internal/core"
)

const (
	// DefaultParticles is the target particle count before clamping to the
	// grid's capacity.
	DefaultParticles = 5000
	// MinParticles is the lower clamp for the target particle count.
	MinParticles = 100
	// MinStickiness and MaxStickiness bound the bonding probability.
	MinStickiness = 0.1
	MaxStickiness = 1.0

	// Walk tuning. Particles spawn spawnOffset cells outside the cluster
	// envelope (never closer than minSpawnRadius to center), wander in
	// steps of stepLength, and are dropped once they drift past
	// escapeMultiplier times the spawn radius or exhaust maxWalkSteps.
	spawnOffset      = 10.0
	minSpawnRadius   = 50.0
	escapeMultiplier = 2.0
	stepLength       = 2.0
	maxWalkSteps     = 10000
)

// Simulation owns the canonical particle-occupancy grid and grows it one
// random-walking particle at a time. All mutating operations are synchronous;
// the caller drives growth by invoking Step from its tick loop.
type Simulation struct {
	grid *core.ArrivalGrid
	rng  *core.RNG

	numParticles   int
	stickiness     float64
	particlesStuck int
	maxRadius      float64
	paused         bool
	pattern        SeedPattern
}

// New creates a simulation on a w×h grid seeded with PatternPoint. The
// provided RNG drives both the walk and the randomized seed patterns.
func New(w, h int, rng *core.RNG) *Simulation {
	s := &Simulation{
		grid:       core.NewArrivalGrid(w, h),
		rng:        rng,
		stickiness: MaxStickiness,
		maxRadius:  1.0,
		pattern:    PatternPoint,
	}
	s.numParticles = s.clampParticles(DefaultParticles)
	s.Reset()
	return s
}

// Width returns the grid width in cells.
func (s *Simulation) Width() int { return s.grid.W }

// Height returns the grid height in cells.
func (s *Simulation) Height() int { return s.grid.H }

// Cell returns the arrival index at (x, y) and whether the cell is occupied.
func (s *Simulation) Cell(x, y int) (int32, bool) { return s.grid.At(x, y) }

// Cells exposes the raw arrival-index grid in row-major order.
func (s *Simulation) Cells() []int32 { return s.grid.Cells() }

// ParticlesStuck returns the number of occupied cells.
func (s *Simulation) ParticlesStuck() int { return s.particlesStuck }

// NumParticles returns the target particle count.
func (s *Simulation) NumParticles() int { return s.numParticles }

// Stickiness returns the bonding probability.
func (s *Simulation) Stickiness() float64 { return s.stickiness }

// MaxRadius returns the cluster envelope radius from grid center.
func (s *Simulation) MaxRadius() float64 { return s.maxRadius }

// Paused reports whether growth is suspended.
func (s *Simulation) Paused() bool { return s.paused }

// Pattern returns the currently selected seed pattern.
func (s *Simulation) Pattern() SeedPattern { return s.pattern }

// Progress returns growth completion as a ratio in [0, 1].
func (s *Simulation) Progress() float64 {
	p := float64(s.particlesStuck) / float64(s.numParticles)
	return math.Min(p, 1.0)
}

// IsComplete reports whether the target particle count has been reached.
func (s *Simulation) IsComplete() bool { return s.particlesStuck >= s.numParticles }

// Step attempts to place one additional particle: spawn on a circle outside
// the cluster, random-walk, stick or escape. The return value is a
// continuation hint — false means no growth is possible right now (paused or
// complete), true means keep calling. A true return does not imply a
// particle stuck; escaped and budget-exhausted walks simply commit nothing.
func (s *Simulation) Step() bool {
	if s.paused || s.particlesStuck >= s.numParticles {
		return false
	}

	spawnRadius := math.Max(s.maxRadius+spawnOffset, minSpawnRadius)
	cx := float64(s.grid.W) / 2
	cy := float64(s.grid.H) / 2

	angle := s.rng.Angle()
	x := cx + spawnRadius*math.Cos(angle)
	y := cy + spawnRadius*math.Sin(angle)

	escapeSq := (spawnRadius * escapeMultiplier) * (spawnRadius * escapeMultiplier)

	for i := 0; i < maxWalkSteps; i++ {
		dx := x - cx
		dy := y - cy
		// Squared-distance early exit; the exact sqrt is only paid when a
		// stick commits below.
		if dx*dx+dy*dy > escapeSq {
			return true
		}

		ix := int(x)
		iy := int(y)
		if ix > 0 && ix < s.grid.W-1 && iy > 0 && iy < s.grid.H-1 &&
			!s.grid.Occupied(ix, iy) && s.hasOccupiedNeighbor(ix, iy) {
			if s.rng.Float64() < s.stickiness {
				s.grid.Set(ix, iy, int32(s.particlesStuck))
				s.particlesStuck++

				sdx := float64(ix) - cx
				sdy := float64(iy) - cy
				if d := math.Sqrt(sdx*sdx + sdy*sdy); d > s.maxRadius {
					s.maxRadius = d
				}
				return true
			}
		}

		walk := s.rng.Angle()
		x += stepLength * math.Cos(walk)
		y += stepLength * math.Sin(walk)

		// Keep the walker strictly interior so the neighbor scan never
		// touches the border.
		x = clampFloat(x, 1.0, float64(s.grid.W-2))
		y = clampFloat(y, 1.0, float64(s.grid.H-2))
	}

	return true
}

func (s *Simulation) hasOccupiedNeighbor(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if s.grid.Occupied(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// Reset clears the grid and re-stamps the current seed pattern.
func (s *Simulation) Reset() {
	s.ResetWithSeed(s.pattern)
}

// ResetWithSeed clears the grid, stamps the given pattern and recomputes the
// stuck count and envelope radius from the stamped cells. The simulation is
// left running.
func (s *Simulation) ResetWithSeed(pattern SeedPattern) {
	s.grid.Clear()
	s.pattern = pattern

	st := &stamper{grid: s.grid}
	switch pattern {
	case PatternPoint:
		seedPoint(st)
	case PatternLine:
		seedLine(st)
	case PatternCross:
		seedCross(st)
	case PatternCircle:
		seedCircle(st)
	case PatternRing:
		seedRing(st)
	case PatternDiamond:
		seedDiamond(st)
	case PatternBlock:
		seedBlock(st)
	case PatternStarburst:
		seedStarburst(st)
	case PatternSpiral:
		seedSpiral(st)
	case PatternNoise:
		seedNoise(st, s.rng)
	case PatternScatter:
		seedScatter(st, s.rng)
	case PatternMultiPoint:
		seedMultiPoint(st)
	case PatternXShape:
		seedXShape(st)
	default:
		seedPoint(st)
	}

	s.particlesStuck = st.count
	s.maxRadius = math.Max(st.radius(), 1.0)
	s.paused = false
}

// Resize replaces the grid with new dimensions, clamps the target particle
// count to the new capacity and re-seeds. Resizing to the current dimensions
// is a no-op.
func (s *Simulation) Resize(newWidth, newHeight int) {
	if newWidth == s.grid.W && newHeight == s.grid.H {
		return
	}
	s.grid = core.NewArrivalGrid(newWidth, newHeight)
	s.numParticles = s.clampParticles(s.numParticles)
	s.Reset()
}

// MaxParticles returns the capacity ceiling for this grid. Aggregates are
// fractally sparse, so a fifth of the cell count is a practical maximum.
func (s *Simulation) MaxParticles() int {
	max := s.grid.W * s.grid.H / 5
	if max < MinParticles {
		max = MinParticles
	}
	return max
}

func (s *Simulation) clampParticles(n int) int {
	if n < MinParticles {
		return MinParticles
	}
	if max := s.MaxParticles(); n > max {
		return max
	}
	return n
}

// SetParticles sets the target particle count, clamped to the grid capacity.
func (s *Simulation) SetParticles(n int) {
	s.numParticles = s.clampParticles(n)
}

// AdjustParticles shifts the target particle count by delta, saturating at
// the clamp bounds.
func (s *Simulation) AdjustParticles(delta int) {
	s.numParticles = s.clampParticles(s.numParticles + delta)
}

// SetStickiness sets the bonding probability, clamped to [0.1, 1.0].
func (s *Simulation) SetStickiness(v float64) {
	s.stickiness = clampFloat(v, MinStickiness, MaxStickiness)
}

// AdjustStickiness shifts the bonding probability by delta, saturating at
// the clamp bounds.
func (s *Simulation) AdjustStickiness(delta float64) {
	s.SetStickiness(s.stickiness + delta)
}

// TogglePause flips the pause flag.
func (s *Simulation) TogglePause() {
	s.paused = !s.paused
}

// CycleSeedForward reseeds with the next pattern in the catalog.
func (s *Simulation) CycleSeedForward() {
	s.ResetWithSeed(s.pattern.Next())
}

// CycleSeedBackward reseeds with the previous pattern in the catalog.
func (s *Simulation) CycleSeedBackward() {
	s.ResetWithSeed(s.pattern.Prev())
}

// Parameters returns a presentation snapshot of the tunable state.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Params: []core.Parameter{
			{Key: "particles", Label: "Particles", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", s.numParticles)},
			{Key: "stickiness", Label: "Stickiness", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.2f", s.stickiness)},
			{Key: "seed", Label: "Seed", Type: core.ParamTypeString, Value: s.pattern.Name()},
		},
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
