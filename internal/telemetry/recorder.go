// Package telemetry records the growth curve of a run: how the particle
// count, envelope radius and grid density evolve, plus a mass–radius fit
// summarizing the aggregate's fractal dimension.
package telemetry

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/jo56/dla-simulation/internal/sim"
)

// Sample is one point on the growth curve.
type Sample struct {
	Tick      int     `csv:"tick"`
	Particles int     `csv:"particles"`
	MaxRadius float64 `csv:"max_radius"`
	Density   float64 `csv:"density"`
}

// Recorder samples the simulation every interval newly stuck particles.
// Observing a shrinking particle count (reset or resize) starts a new curve.
type Recorder struct {
	interval int
	tick     int
	lastSeen int
	samples  []Sample
}

// NewRecorder creates a recorder sampling every interval stuck particles.
func NewRecorder(interval int) *Recorder {
	if interval < 1 {
		interval = 1
	}
	return &Recorder{interval: interval}
}

// Observe inspects the simulation once per tick and appends a sample when
// enough particles have stuck since the last one.
func (r *Recorder) Observe(s *sim.Simulation) {
	r.tick++
	stuck := s.ParticlesStuck()
	if stuck < r.lastSeen {
		// Grid was reset or resized; the old curve no longer continues.
		r.samples = r.samples[:0]
		r.lastSeen = stuck
		return
	}
	if stuck-r.lastSeen < r.interval {
		return
	}
	r.lastSeen = stuck
	area := s.Width() * s.Height()
	r.samples = append(r.samples, Sample{
		Tick:      r.tick,
		Particles: stuck,
		MaxRadius: s.MaxRadius(),
		Density:   float64(stuck) / float64(area),
	})
}

// Samples returns the collected growth curve.
func (r *Recorder) Samples() []Sample { return r.samples }

// FractalDimension fits log(particles) against log(radius) and returns the
// slope — the mass–radius scaling exponent, ~1.71 for classic 2D DLA. The
// second return is false when fewer than three usable samples exist.
func (r *Recorder) FractalDimension() (float64, bool) {
	var xs, ys []float64
	for _, s := range r.samples {
		if s.MaxRadius <= 1 || s.Particles < 1 {
			continue
		}
		xs = append(xs, math.Log(s.MaxRadius))
		ys = append(ys, math.Log(float64(s.Particles)))
	}
	if len(xs) < 3 {
		return 0, false
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope, true
}

// WriteCSV streams the growth curve as CSV.
func (r *Recorder) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(&r.samples, w); err != nil {
		return fmt.Errorf("writing growth samples: %w", err)
	}
	return nil
}

// Export writes the growth curve to a timestamped CSV file under dir and
// returns the file path.
func (r *Recorder) Export(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating telemetry directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("growth-%s.csv", time.Now().Format("20060102-150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating telemetry file: %w", err)
	}
	defer f.Close()
	if err := r.WriteCSV(f); err != nil {
		return "", err
	}
	return path, nil
}
