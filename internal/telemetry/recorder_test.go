package telemetry

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/jo56/dla-simulation/internal/core"
	"github.com/jo56/dla-simulation/internal/sim"
)

func TestFractalDimensionRecoversExponent(t *testing.T) {
	r := NewRecorder(1)
	// Synthetic mass-radius law N = R^1.71.
	for radius := 2.0; radius < 100; radius += 3 {
		r.samples = append(r.samples, Sample{
			Particles: int(math.Pow(radius, 1.71)),
			MaxRadius: radius,
		})
	}

	d, ok := r.FractalDimension()
	if !ok {
		t.Fatal("no dimension estimate from a full curve")
	}
	if math.Abs(d-1.71) > 0.05 {
		t.Fatalf("dimension = %v, want ~1.71", d)
	}
}

func TestFractalDimensionNeedsSamples(t *testing.T) {
	r := NewRecorder(1)
	r.samples = []Sample{{Particles: 10, MaxRadius: 3}}
	if _, ok := r.FractalDimension(); ok {
		t.Fatal("dimension reported from a single sample")
	}
}

func TestObserveSamplesOnInterval(t *testing.T) {
	s := sim.New(64, 64, core.NewRNG(11))
	s.ResetWithSeed(sim.PatternLine) // 32 particles up front

	r := NewRecorder(10)
	r.Observe(s)
	if len(r.Samples()) != 1 {
		t.Fatalf("samples after first observe = %d, want 1", len(r.Samples()))
	}
	// No new particles, no new sample.
	r.Observe(s)
	if len(r.Samples()) != 1 {
		t.Fatalf("samples without growth = %d, want 1", len(r.Samples()))
	}

	got := r.Samples()[0]
	if got.Particles != 32 {
		t.Fatalf("sampled particle count = %d, want 32", got.Particles)
	}
	if got.Density <= 0 || got.Density >= 1 {
		t.Fatalf("density = %v, want in (0,1)", got.Density)
	}
}

func TestObserveResetStartsNewCurve(t *testing.T) {
	s := sim.New(64, 64, core.NewRNG(11))
	s.ResetWithSeed(sim.PatternLine)

	r := NewRecorder(10)
	r.Observe(s)
	if len(r.Samples()) == 0 {
		t.Fatal("no sample from line seed")
	}

	// Reseeding to a single point shrinks the count; the curve restarts.
	s.ResetWithSeed(sim.PatternPoint)
	r.Observe(s)
	if len(r.Samples()) != 0 {
		t.Fatalf("stale samples after reset: %d", len(r.Samples()))
	}
}

func TestWriteCSV(t *testing.T) {
	r := NewRecorder(1)
	r.samples = []Sample{
		{Tick: 1, Particles: 10, MaxRadius: 3.5, Density: 0.002},
		{Tick: 2, Particles: 20, MaxRadius: 5.0, Density: 0.004},
	}

	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "tick,particles,max_radius,density") {
		t.Fatalf("unexpected header: %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "2,20,5,0.004") {
		t.Fatalf("missing data row in:\n%s", out)
	}
}
