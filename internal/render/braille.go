// Package render projects the simulation grid onto display surfaces: braille
// glyph cells for the terminal frontend and RGBA pixel buffers for the
// windowed one.
package render

import (
	"image/color"

	"github.com/jo56/dla-simulation/internal/sim"
)

// Braille patterns occupy U+2800..U+28FF; each glyph encodes a 2-wide by
// 4-tall dot grid, one bit per dot:
//
//	(0,0)=0x01  (1,0)=0x08
//	(0,1)=0x02  (1,1)=0x10
//	(0,2)=0x04  (1,2)=0x20
//	(0,3)=0x40  (1,3)=0x80
const brailleBase = 0x2800

// brailleDots maps (column, row) sub-positions to pattern bits.
var brailleDots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// GlyphCell is one renderable display unit: a glyph position, the braille
// rune selected by its dot pattern, and the derived color. Cells are produced
// fresh every frame and never mutated afterwards.
type GlyphCell struct {
	X, Y  int
	Rune  rune
	Color color.RGBA
}

// white is the flat color used when age coloring is off.
var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// SampleGlyphs samples the simulation grid at 2×4 sub-cell resolution per
// glyph and returns one GlyphCell per glyph with at least one occupied
// sub-cell. Sampling is floor-indexed and binary — no interpolation — and
// the function is stateless: identical inputs yield identical output, so it
// may run at any rate relative to simulation stepping.
//
// With age coloring on, a glyph's color is the mean arrival index of its
// occupied sub-cells normalized by the target particle count and passed
// through the LUT.
func SampleGlyphs(s *sim.Simulation, glyphW, glyphH int, lut *ColorLUT, colorByAge bool) []GlyphCell {
	if glyphW <= 0 || glyphH <= 0 {
		return nil
	}

	scaleX := float64(s.Width()) / float64(glyphW*2)
	scaleY := float64(s.Height()) / float64(glyphH*4)
	invParticles := 1.0 / float64(s.NumParticles())

	cells := make([]GlyphCell, 0, glyphW*glyphH/4)

	for cy := 0; cy < glyphH; cy++ {
		for cx := 0; cx < glyphW; cx++ {
			var pattern uint8
			var totalAge float64
			dotCount := 0

			baseX := cx * 2
			baseY := cy * 4
			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 4; dy++ {
					simX := int(float64(baseX+dx) * scaleX)
					simY := int(float64(baseY+dy) * scaleY)
					if age, ok := s.Cell(simX, simY); ok {
						pattern |= brailleDots[dx][dy]
						totalAge += float64(age)
						dotCount++
					}
				}
			}

			if pattern == 0 {
				continue
			}

			col := white
			if colorByAge && dotCount > 0 {
				t := totalAge / float64(dotCount) * invParticles
				col = lut.Lookup(t)
			}
			cells = append(cells, GlyphCell{
				X:     cx,
				Y:     cy,
				Rune:  rune(brailleBase + int(pattern)),
				Color: col,
			})
		}
	}

	return cells
}

// SimulationSize derives the simulation grid resolution for a glyph canvas:
// one simulation cell per braille dot, floored at 64 cells per axis so tiny
// viewports still grow something.
func SimulationSize(glyphW, glyphH int) (int, int) {
	w := glyphW * 2
	if w < 64 {
		w = 64
	}
	h := glyphH * 4
	if h < 64 {
		h = 64
	}
	return w, h
}
