package core

// Empty marks an unoccupied cell in an ArrivalGrid.
const Empty int32 = -1

// ArrivalGrid stores a 2D grid of arrival indices in row-major order. Each
// cell holds the 0-based order in which it became occupied, or Empty.
type ArrivalGrid struct {
	W, H int
	data []int32
}

// NewArrivalGrid allocates a fully empty grid with the given dimensions.
func NewArrivalGrid(w, h int) *ArrivalGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &ArrivalGrid{W: w, H: h, data: make([]int32, w*h)}
	g.Clear()
	return g
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *ArrivalGrid) Cells() []int32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ArrivalGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *ArrivalGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the arrival index at (x, y) and whether the cell is occupied.
// Out-of-bounds coordinates read as unoccupied.
func (g *ArrivalGrid) At(x, y int) (int32, bool) {
	if !g.InBounds(x, y) {
		return Empty, false
	}
	v := g.data[y*g.W+x]
	return v, v != Empty
}

// Occupied reports whether the cell at (x, y) holds a particle.
func (g *ArrivalGrid) Occupied(x, y int) bool {
	_, ok := g.At(x, y)
	return ok
}

// Set marks (x, y) occupied with the given arrival index.
func (g *ArrivalGrid) Set(x, y int, arrival int32) {
	if g.InBounds(x, y) {
		g.data[y*g.W+x] = arrival
	}
}

// Clear empties every cell.
func (g *ArrivalGrid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}
