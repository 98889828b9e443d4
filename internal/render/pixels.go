package render

import "image/color"

// FillAgeRGBA converts arrival-index cell data into RGBA pixels in buf, one
// pixel per cell. Occupied cells are colored by normalized arrival age
// through the LUT (or flat white when colorByAge is false); empty cells get
// the background color. buf must hold len(cells)*4 bytes.
func FillAgeRGBA(buf []byte, cells []int32, numParticles int, lut *ColorLUT, colorByAge bool, bg color.RGBA) {
	invParticles := 0.0
	if numParticles > 0 {
		invParticles = 1.0 / float64(numParticles)
	}
	for i, c := range cells {
		base := i * 4
		if c < 0 {
			buf[base+0] = bg.R
			buf[base+1] = bg.G
			buf[base+2] = bg.B
			buf[base+3] = bg.A
			continue
		}
		col := white
		if colorByAge {
			col = lut.Lookup(float64(c) * invParticles)
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
