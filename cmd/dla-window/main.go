//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jo56/dla-simulation/internal/app"
	"github.com/jo56/dla-simulation/internal/config"
	"github.com/jo56/dla-simulation/internal/core"
	"github.com/jo56/dla-simulation/internal/render"
	"github.com/jo56/dla-simulation/internal/sim"
	"github.com/jo56/dla-simulation/internal/window"
)

func main() {
	fl := app.NewFlags(config.Default())
	width := flag.Int("width", 256, "simulation grid width in cells")
	height := flag.Int("height", 256, "simulation grid height in cells")
	scale := flag.Int("scale", 3, "pixel scale multiplier")
	fl.Bind(flag.CommandLine)
	flag.Parse()

	cfg := config.Default()
	if fl.ConfigPath != "" {
		loaded, err := config.Load(fl.ConfigPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	fl.Apply(&cfg, flag.CommandLine)

	s := sim.New(*width, *height, core.NewUnseededRNG())
	s.SetParticles(cfg.Particles)
	s.SetStickiness(cfg.Stickiness)
	s.ResetWithSeed(sim.ParsePattern(cfg.Seed))

	game := window.New(s, render.ParseScheme(cfg.ColorScheme), cfg.ColorByAge, cfg.StepsPerFrame, *scale)

	ebiten.SetWindowTitle("dla — " + s.Pattern().Name())
	ebiten.SetWindowSize(s.Width()*(*scale), s.Height()*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
