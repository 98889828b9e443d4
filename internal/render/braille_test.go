package render

import (
	"reflect"
	"testing"

	"github.com/jo56/dla-simulation/internal/core"
	"github.com/jo56/dla-simulation/internal/sim"
)

func TestBrailleDotBits(t *testing.T) {
	if brailleDots[0][0] != 0x01 {
		t.Fatalf("top-left bit = %#x, want 0x01", brailleDots[0][0])
	}
	if brailleDots[1][0] != 0x08 {
		t.Fatalf("top-right bit = %#x, want 0x08", brailleDots[1][0])
	}
	if brailleDots[0][3] != 0x40 {
		t.Fatalf("bottom-left bit = %#x, want 0x40", brailleDots[0][3])
	}
	if brailleDots[1][3] != 0x80 {
		t.Fatalf("bottom-right bit = %#x, want 0x80", brailleDots[1][3])
	}

	var all uint8
	for _, col := range brailleDots {
		for _, bit := range col {
			all |= bit
		}
	}
	if all != 0xFF {
		t.Fatalf("dot bits cover %#x, want 0xFF", all)
	}
}

func TestSamplePointSeed(t *testing.T) {
	// 32x16 glyph canvas maps 1:1 onto a 64x64 grid (2x4 dots per glyph).
	s := sim.New(64, 64, core.NewRNG(1))

	lut := NewColorLUT(SchemeIce)
	cells := SampleGlyphs(s, 32, 16, lut, false)

	if len(cells) != 1 {
		t.Fatalf("emitted %d glyph cells for a point seed, want 1", len(cells))
	}
	got := cells[0]
	if got.X != 16 || got.Y != 8 {
		t.Fatalf("glyph position = (%d,%d), want (16,8)", got.X, got.Y)
	}
	// Cell (32,32) is the top-left dot of its glyph.
	if got.Rune != rune(0x2801) {
		t.Fatalf("glyph rune = %U, want U+2801", got.Rune)
	}
	if got.Color != white {
		t.Fatalf("flat coloring produced %v, want white", got.Color)
	}
}

func TestSampleOmitsEmptyGlyphs(t *testing.T) {
	s := sim.New(64, 64, core.NewRNG(1))
	s.ResetWithSeed(sim.PatternLine)

	lut := NewColorLUT(SchemeIce)
	cells := SampleGlyphs(s, 32, 16, lut, false)

	// A 32-cell horizontal run covers exactly 16 glyphs at 2 dots each.
	if len(cells) != 16 {
		t.Fatalf("emitted %d glyph cells for the line seed, want 16", len(cells))
	}
	for _, c := range cells {
		if c.Rune == rune(brailleBase) {
			t.Fatalf("glyph (%d,%d) emitted with empty pattern", c.X, c.Y)
		}
	}
}

func TestSampleIdempotent(t *testing.T) {
	s := sim.New(128, 128, core.NewRNG(9))
	s.ResetWithSeed(sim.PatternScatter)

	lut := NewColorLUT(SchemeFire)
	first := SampleGlyphs(s, 40, 20, lut, true)
	second := SampleGlyphs(s, 40, 20, lut, true)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two samples of an unchanged grid differ")
	}
	if len(first) == 0 {
		t.Fatal("scatter seed produced no visible glyphs")
	}
}

func TestSampleAgeColorUsesLUT(t *testing.T) {
	s := sim.New(64, 64, core.NewRNG(1))
	lut := NewColorLUT(SchemeViridis)

	cells := SampleGlyphs(s, 32, 16, lut, true)
	if len(cells) != 1 {
		t.Fatalf("emitted %d cells, want 1", len(cells))
	}
	// The seed cell has arrival index 0, so its age ratio is 0.
	if want := lut.Lookup(0); cells[0].Color != want {
		t.Fatalf("age color = %v, want %v", cells[0].Color, want)
	}
}

func TestSimulationSize(t *testing.T) {
	cases := []struct {
		glyphW, glyphH int
		wantW, wantH   int
	}{
		{10, 10, 64, 64},
		{100, 50, 200, 200},
		{32, 16, 64, 64},
		{0, 0, 64, 64},
	}
	for _, c := range cases {
		w, h := SimulationSize(c.glyphW, c.glyphH)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("SimulationSize(%d,%d) = (%d,%d), want (%d,%d)",
				c.glyphW, c.glyphH, w, h, c.wantW, c.wantH)
		}
	}
}
