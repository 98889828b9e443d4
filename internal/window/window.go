//go:build ebiten

// Package window is the optional windowed frontend: the simulation grid is
// blitted one pixel per cell, colored by arrival age.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jo56/dla-simulation/internal/render"
	"github.com/jo56/dla-simulation/internal/sim"
)

var background = color.RGBA{R: 8, G: 8, B: 12, A: 255}

// Game adapts the simulation to the ebiten.Game interface.
type Game struct {
	sim           *sim.Simulation
	scheme        render.ColorScheme
	lut           *render.ColorLUT
	colorByAge    bool
	stepsPerFrame int
	scale         int

	img *ebiten.Image
	buf []byte
}

// New constructs a Game around an existing simulation.
func New(s *sim.Simulation, scheme render.ColorScheme, colorByAge bool, stepsPerFrame, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	return &Game{
		sim:           s,
		scheme:        scheme,
		lut:           render.NewColorLUT(scheme),
		colorByAge:    colorByAge,
		stepsPerFrame: stepsPerFrame,
		scale:         scale,
		img:           ebiten.NewImage(s.Width(), s.Height()),
		buf:           make([]byte, s.Width()*s.Height()*4),
	}
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.CycleSeedForward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sim.CycleSeedBackward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.scheme = g.scheme.Next()
		g.lut = render.NewColorLUT(g.scheme)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.colorByAge = !g.colorByAge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.sim.AdjustParticles(100)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.sim.AdjustParticles(-100)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.sim.AdjustStickiness(0.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.sim.AdjustStickiness(-0.05)
	}

	for i := 0; i < g.stepsPerFrame; i++ {
		if !g.sim.Step() {
			break
		}
	}
	return nil
}

// Draw renders the current grid state and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	render.FillAgeRGBA(g.buf, g.sim.Cells(), g.sim.NumParticles(), g.lut, g.colorByAge, background)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	status := fmt.Sprintf("%s  %d/%d  sticky %.2f  r %.1f",
		g.sim.Pattern().Name(), g.sim.ParticlesStuck(), g.sim.NumParticles(),
		g.sim.Stickiness(), g.sim.MaxRadius())
	if g.sim.Paused() {
		status += "  [paused]"
	} else if g.sim.IsComplete() {
		status += "  [complete]"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Width() * g.scale, g.sim.Height() * g.scale
}
