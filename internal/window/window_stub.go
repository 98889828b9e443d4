//go:build !ebiten

package window

import (
	"fmt"

	"github.com/jo56/dla-simulation/internal/render"
	"github.com/jo56/dla-simulation/internal/sim"
)

// Game is a placeholder that satisfies the API expected by the windowed build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for the
// windowed frontend.
func New(*sim.Simulation, render.ColorScheme, bool, int, int) *Game {
	panic("window.New requires building with the 'ebiten' tag")
}

// Update always reports that the windowed build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("window.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
