// Package ui draws the terminal chrome around the simulation canvas: the
// status/parameters/controls sidebar, the canvas border, the braille glyphs
// themselves, and the help overlay.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/jo56/dla-simulation/internal/core"
	"github.com/jo56/dla-simulation/internal/render"
)

// SidebarWidth is the fixed column count of the left panel.
const SidebarWidth = 22

// Focus identifies which sidebar parameter the arrow keys adjust.
type Focus int

const (
	FocusParticles Focus = iota
	FocusStickiness
	FocusSeed
	FocusSpeed

	focusCount
)

// Next returns the following focus target, wrapping around.
func (f Focus) Next() Focus { return (f + 1) % focusCount }

// Prev returns the preceding focus target, wrapping around.
func (f Focus) Prev() Focus { return (f + focusCount - 1) % focusCount }

// State is the view model for one frame of chrome. The app fills it from the
// simulation's read accessors; ui never touches the simulation directly.
// Params is expected in focus order: particles, stickiness, seed, speed.
type State struct {
	Paused     bool
	Complete   bool
	Progress   float64
	Particles  int
	Target     int
	Params     []core.Parameter
	Scheme     string
	ColorByAge bool
	Focus      Focus
	Fullscreen bool
	ShowHelp   bool
}

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	styleFocus   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// CanvasSize returns the glyph-cell dimensions available for the simulation
// canvas given the terminal size, excluding the sidebar and border.
func CanvasSize(termW, termH int, fullscreen bool) (int, int) {
	w := termW - 2
	if !fullscreen {
		w = termW - SidebarWidth - 2
	}
	h := termH - 2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// CanvasOrigin returns the screen position of the canvas's top-left glyph.
func CanvasOrigin(fullscreen bool) (int, int) {
	if fullscreen {
		return 1, 1
	}
	return SidebarWidth + 1, 1
}

// DrawFrame paints the sidebar and the canvas border for the current state.
func DrawFrame(s tcell.Screen, st State) {
	termW, termH := s.Size()

	if !st.Fullscreen {
		drawSidebar(s, st, termH)
	}
	ox := 0
	if !st.Fullscreen {
		ox = SidebarWidth
	}
	drawBox(s, ox, 0, termW-ox, termH, " Aggregate ")
}

// DrawGlyphs paints sampled braille cells at the given canvas origin.
func DrawGlyphs(s tcell.Screen, cells []render.GlyphCell, ox, oy int) {
	for _, c := range cells {
		style := tcell.StyleDefault.Foreground(
			tcell.NewRGBColor(int32(c.Color.R), int32(c.Color.G), int32(c.Color.B)))
		s.SetContent(ox+c.X, oy+c.Y, c.Rune, nil, style)
	}
}

func drawSidebar(s tcell.Screen, st State, termH int) {
	drawBox(s, 0, 0, SidebarWidth, 5, " DLA Simulator ")
	drawStatus(s, st)

	drawBox(s, 0, 5, SidebarWidth, 8, " Parameters ")
	drawParams(s, st)

	ch := termH - 13
	if ch > 2 {
		drawBox(s, 0, 13, SidebarWidth, ch, " Controls ")
		drawControls(s, termH)
	}
}

func drawStatus(s tcell.Screen, st State) {
	status := "RUNNING"
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	switch {
	case st.Paused:
		status = "PAUSED"
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case st.Complete:
		status = "COMPLETE"
		style = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	}
	drawText(s, 2, 1, status, style)
	drawText(s, 2, 2, fmt.Sprintf("%d / %d", st.Particles, st.Target), styleDefault)

	barW := SidebarWidth - 4
	filled := int(st.Progress * float64(barW))
	for i := 0; i < barW; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		s.SetContent(2+i, 3, r, nil, styleBorder)
	}
}

func drawParams(s tcell.Screen, st State) {
	for i, p := range st.Params {
		y := 6 + i
		if y > 9 {
			break
		}
		style := styleDefault
		marker := ' '
		if int(st.Focus) == i {
			style = styleFocus
			marker = '▸'
		}
		s.SetContent(1, y, marker, nil, style)
		drawText(s, 2, y, fmt.Sprintf("%-10s %s", p.Label, p.Value), style)
	}

	age := "off"
	if st.ColorByAge {
		age = "on"
	}
	drawText(s, 2, 10, fmt.Sprintf("%-10s %s", "Scheme", st.Scheme), styleDim)
	drawText(s, 2, 11, fmt.Sprintf("%-10s %s", "Age color", age), styleDim)
}

var controlLines = []string{
	"space  pause",
	"r      reset",
	"1-0 [] seed",
	"tab    focus",
	"↑/↓    adjust",
	"+/-    speed",
	"c      scheme",
	"a      age color",
	"v      fullscreen",
	"e      export csv",
	"h/?    help",
	"q      quit",
}

func drawControls(s tcell.Screen, termH int) {
	for i, line := range controlLines {
		y := 14 + i
		if y >= termH-1 {
			break
		}
		drawText(s, 2, y, line, styleDim)
	}
}

// DrawNotice paints a transient one-line message along the bottom border.
func DrawNotice(s tcell.Screen, text string) {
	termW, termH := s.Size()
	if termH < 1 || termW < 8 {
		return
	}
	msg := " " + text + " "
	if len(msg) > termW-4 {
		msg = msg[:termW-4]
	}
	drawText(s, 2, termH-1, msg, styleFocus)
}

// DrawHelp paints the help overlay centered on the screen.
func DrawHelp(s tcell.Screen) {
	termW, termH := s.Size()
	lines := []string{
		"Diffusion-Limited Aggregation",
		"",
		"Particles random-walk in from a spawn",
		"circle and freeze onto the cluster on",
		"contact, growing a fractal.",
		"",
		"space      pause / resume",
		"r          reset current seed",
		"1-9, 0     select seed pattern",
		"[ ]        more seed patterns",
		"tab/S-tab  move parameter focus",
		"up/down    adjust focused parameter",
		"+ / -      steps per frame",
		"c / C      cycle color scheme",
		"a          toggle age coloring",
		"v          toggle fullscreen",
		"e          export growth CSV",
		"q          quit",
		"",
		"press h or esc to close",
	}
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 4
	h := len(lines) + 2
	x0 := (termW - w) / 2
	y0 := (termH - h) / 2
	if x0 < 0 || y0 < 0 {
		return
	}
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			s.SetContent(x, y, ' ', nil, styleDefault)
		}
	}
	drawBoxAt(s, x0, y0, w, h, " Help ")
	for i, l := range lines {
		drawText(s, x0+2, y0+1+i, l, styleDefault)
	}
}

func drawBox(s tcell.Screen, x, y, w, h int, title string) {
	drawBoxAt(s, x, y, w, h, title)
}

func drawBoxAt(s tcell.Screen, x, y, w, h int, title string) {
	if w < 2 || h < 2 {
		return
	}
	for i := 1; i < w-1; i++ {
		s.SetContent(x+i, y, '─', nil, styleBorder)
		s.SetContent(x+i, y+h-1, '─', nil, styleBorder)
	}
	for j := 1; j < h-1; j++ {
		s.SetContent(x, y+j, '│', nil, styleBorder)
		s.SetContent(x+w-1, y+j, '│', nil, styleBorder)
	}
	s.SetContent(x, y, '╭', nil, styleBorder)
	s.SetContent(x+w-1, y, '╮', nil, styleBorder)
	s.SetContent(x, y+h-1, '╰', nil, styleBorder)
	s.SetContent(x+w-1, y+h-1, '╯', nil, styleBorder)
	if title != "" && len(title) < w-2 {
		drawText(s, x+1, y, title, styleTitle)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}
