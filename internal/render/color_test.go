package render

import (
	"image/color"
	"testing"
)

func TestSchemeCycleRoundTrip(t *testing.T) {
	for s := ColorScheme(0); s < schemeCount; s++ {
		if s.Next().Prev() != s {
			t.Fatalf("%s: Next().Prev() = %s", s.Name(), s.Next().Prev().Name())
		}
	}
	if SchemeNeon.Next() != SchemeIce {
		t.Fatalf("cycle does not wrap: Neon.Next() = %s", SchemeNeon.Next().Name())
	}
}

func TestParseScheme(t *testing.T) {
	if got := ParseScheme("viridis"); got != SchemeViridis {
		t.Fatalf("ParseScheme(viridis) = %s", got.Name())
	}
	if got := ParseScheme("Fire"); got != SchemeFire {
		t.Fatalf("ParseScheme(Fire) = %s", got.Name())
	}
	if got := ParseScheme("nonsense"); got != SchemeIce {
		t.Fatalf("ParseScheme(nonsense) = %s, want Ice fallback", got.Name())
	}
}

func TestLookupSaturates(t *testing.T) {
	for s := ColorScheme(0); s < schemeCount; s++ {
		lut := NewColorLUT(s)
		if lut.Lookup(-5) != lut.Lookup(0) {
			t.Fatalf("%s: negative t does not saturate low", s.Name())
		}
		if lut.Lookup(5) != lut.Lookup(1) {
			t.Fatalf("%s: t > 1 does not saturate high", s.Name())
		}
	}
}

func TestGrayscaleEndpoints(t *testing.T) {
	lut := NewColorLUT(SchemeGrayscale)
	if got := lut.Lookup(0); got != (color.RGBA{A: 255}) {
		t.Fatalf("grayscale start = %v, want black", got)
	}
	if got := lut.Lookup(1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("grayscale end = %v, want white", got)
	}
}

func TestFillAgeRGBA(t *testing.T) {
	lut := NewColorLUT(SchemeGrayscale)
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	cells := []int32{-1, 0, 99}
	buf := make([]byte, len(cells)*4)

	FillAgeRGBA(buf, cells, 100, lut, true, bg)

	if got := (color.RGBA{R: buf[0], G: buf[1], B: buf[2], A: buf[3]}); got != bg {
		t.Fatalf("empty cell = %v, want background %v", got, bg)
	}
	if want := lut.Lookup(0); buf[4] != want.R || buf[5] != want.G || buf[6] != want.B {
		t.Fatalf("age-0 cell = (%d,%d,%d), want %v", buf[4], buf[5], buf[6], want)
	}
	if want := lut.Lookup(0.99); buf[8] != want.R || buf[9] != want.G || buf[10] != want.B {
		t.Fatalf("age-99 cell = (%d,%d,%d), want %v", buf[8], buf[9], buf[10], want)
	}

	FillAgeRGBA(buf, cells, 100, lut, false, bg)
	if buf[4] != 255 || buf[5] != 255 || buf[6] != 255 {
		t.Fatal("flat coloring did not produce white")
	}
}
