package sim

import (
	"math"
	"testing"

	"github.com/jo56/dla-simulation/internal/core"
)

func countOccupied(s *Simulation) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if _, ok := s.Cell(x, y); ok {
				n++
			}
		}
	}
	return n
}

func trueMaxRadius(s *Simulation) float64 {
	cx := float64(s.Width()) / 2
	cy := float64(s.Height()) / 2
	max := 0.0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if _, ok := s.Cell(x, y); !ok {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if d := math.Sqrt(dx*dx + dy*dy); d > max {
				max = d
			}
		}
	}
	return max
}

func TestPointSeed(t *testing.T) {
	s := New(64, 64, core.NewRNG(1))
	s.ResetWithSeed(PatternPoint)

	if got := countOccupied(s); got != 1 {
		t.Fatalf("occupied cells = %d, want 1", got)
	}
	if _, ok := s.Cell(32, 32); !ok {
		t.Fatal("center cell (32,32) not occupied")
	}
	if s.ParticlesStuck() != 1 {
		t.Fatalf("ParticlesStuck = %d, want 1", s.ParticlesStuck())
	}
	if s.MaxRadius() != 1.0 {
		t.Fatalf("MaxRadius = %v, want 1.0", s.MaxRadius())
	}
}

func TestLineSeed(t *testing.T) {
	s := New(64, 64, core.NewRNG(1))
	s.ResetWithSeed(PatternLine)

	// Half length is min(20, 64/4) = 16: a single run of 32 cells centered
	// on (32, 32).
	wantLen := 32
	if s.ParticlesStuck() != wantLen {
		t.Fatalf("ParticlesStuck = %d, want %d", s.ParticlesStuck(), wantLen)
	}
	for x := 16; x < 48; x++ {
		if _, ok := s.Cell(x, 32); !ok {
			t.Fatalf("line cell (%d,32) not occupied", x)
		}
	}
	if got := countOccupied(s); got != wantLen {
		t.Fatalf("occupied cells = %d, want %d", got, wantLen)
	}
}

func TestSeedAccountingAllPatterns(t *testing.T) {
	sizes := [][2]int{{64, 64}, {100, 80}, {200, 200}}
	for _, size := range sizes {
		for _, p := range AllPatterns() {
			s := New(size[0], size[1], core.NewRNG(42))
			s.ResetWithSeed(p)

			if s.ParticlesStuck() == 0 {
				t.Fatalf("%s on %dx%d stamped no cells", p.Name(), size[0], size[1])
			}
			if got := countOccupied(s); got != s.ParticlesStuck() {
				t.Fatalf("%s on %dx%d: ParticlesStuck = %d but %d cells occupied",
					p.Name(), size[0], size[1], s.ParticlesStuck(), got)
			}
			if trueMax := trueMaxRadius(s); s.MaxRadius() < trueMax-1e-9 {
				t.Fatalf("%s on %dx%d: MaxRadius %v below true max %v",
					p.Name(), size[0], size[1], s.MaxRadius(), trueMax)
			}
			if s.Paused() {
				t.Fatalf("%s left simulation paused after reseed", p.Name())
			}
		}
	}
}

func TestNoiseSeedNeverEmpty(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := New(64, 64, core.NewRNG(seed))
		s.ResetWithSeed(PatternNoise)
		if s.ParticlesStuck() < 1 {
			t.Fatalf("noise seed empty for rng seed %d", seed)
		}
	}
}

func TestPatternCycling(t *testing.T) {
	for _, p := range AllPatterns() {
		if p.Next().Prev() != p {
			t.Fatalf("%s: Next().Prev() = %s", p.Name(), p.Next().Prev().Name())
		}
	}
	last := AllPatterns()[len(AllPatterns())-1]
	if last.Next() != PatternPoint {
		t.Fatalf("cycle does not wrap: %s.Next() = %s", last.Name(), last.Next().Name())
	}
}

func TestParsePattern(t *testing.T) {
	cases := map[string]SeedPattern{
		"point":       PatternPoint,
		"Ring":        PatternRing,
		"multi-point": PatternMultiPoint,
		"multipoint":  PatternMultiPoint,
		"x-shape":     PatternXShape,
		"x":           PatternXShape,
		"starburst":   PatternStarburst,
		"bogus":       PatternPoint,
	}
	for in, want := range cases {
		if got := ParsePattern(in); got != want {
			t.Fatalf("ParsePattern(%q) = %s, want %s", in, got.Name(), want.Name())
		}
	}
}
