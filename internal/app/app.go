// Package app runs the interactive terminal frontend: screen lifecycle,
// key dispatch and the simulate/sample/render tick loop.
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jo56/dla-simulation/internal/config"
	"github.com/jo56/dla-simulation/internal/core"
	"github.com/jo56/dla-simulation/internal/render"
	"github.com/jo56/dla-simulation/internal/sim"
	"github.com/jo56/dla-simulation/internal/telemetry"
	"github.com/jo56/dla-simulation/internal/ui"
)

// recorderInterval is the particle spacing between growth-curve samples.
const recorderInterval = 50

// App owns the terminal screen and drives the single-threaded
// simulate → sample → draw cycle. Only the Run goroutine ever touches the
// simulation.
type App struct {
	screen   tcell.Screen
	sim      *sim.Simulation
	recorder *telemetry.Recorder
	timer    *core.FixedStep

	scheme        render.ColorScheme
	lut           *render.ColorLUT
	colorByAge    bool
	stepsPerFrame int
	telemetryDir  string

	canvasW, canvasH int
	fullscreen       bool
	showHelp         bool
	focus            ui.Focus
	notice           string
}

// New initializes the terminal and builds a simulation sized to it.
func New(cfg config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	a := &App{
		screen:        screen,
		recorder:      telemetry.NewRecorder(recorderInterval),
		timer:         core.NewFixedStep(cfg.FPS),
		scheme:        render.ParseScheme(cfg.ColorScheme),
		colorByAge:    cfg.ColorByAge,
		stepsPerFrame: cfg.StepsPerFrame,
		telemetryDir:  cfg.TelemetryDir,
	}
	a.lut = render.NewColorLUT(a.scheme)

	termW, termH := screen.Size()
	a.canvasW, a.canvasH = ui.CanvasSize(termW, termH, a.fullscreen)
	sw, sh := render.SimulationSize(a.canvasW, a.canvasH)

	a.sim = sim.New(sw, sh, core.NewUnseededRNG())
	a.sim.SetParticles(cfg.Particles)
	a.sim.SetStickiness(cfg.Stickiness)
	a.sim.ResetWithSeed(sim.ParsePattern(cfg.Seed))

	return a, nil
}

// Run drives the application until the user quits.
func (a *App) Run() error {
	defer a.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)

	// Poll well above the draw rate; FixedStep gates actual frames.
	poll := time.NewTicker(4 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				close(quit)
				return nil
			}
		case <-poll.C:
			if a.timer.ShouldStep() {
				a.tick()
				a.draw()
			}
		}
	}
}

// tick advances growth by the configured number of walk attempts.
func (a *App) tick() {
	for i := 0; i < a.stepsPerFrame; i++ {
		if !a.sim.Step() {
			break
		}
	}
	a.recorder.Observe(a.sim)
}

func (a *App) draw() {
	a.screen.Clear()

	params := append(a.sim.Parameters().Params, core.Parameter{
		Key:   "speed",
		Label: "Speed",
		Type:  core.ParamTypeInt,
		Value: fmt.Sprintf("%d/frame", a.stepsPerFrame),
	})
	st := ui.State{
		Paused:     a.sim.Paused(),
		Complete:   a.sim.IsComplete(),
		Progress:   a.sim.Progress(),
		Particles:  a.sim.ParticlesStuck(),
		Target:     a.sim.NumParticles(),
		Params:     params,
		Scheme:     a.scheme.Name(),
		ColorByAge: a.colorByAge,
		Focus:      a.focus,
		Fullscreen: a.fullscreen,
		ShowHelp:   a.showHelp,
	}
	ui.DrawFrame(a.screen, st)

	cells := render.SampleGlyphs(a.sim, a.canvasW, a.canvasH, a.lut, a.colorByAge)
	ox, oy := ui.CanvasOrigin(a.fullscreen)
	ui.DrawGlyphs(a.screen, cells, ox, oy)

	if a.notice != "" {
		ui.DrawNotice(a.screen, a.notice)
	}
	if a.showHelp {
		ui.DrawHelp(a.screen)
	}

	a.screen.Show()
}

// handleEvent processes one terminal event; a false return quits.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.resizeToTerminal()
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if a.showHelp {
			a.showHelp = false
			return true
		}
		return false
	case tcell.KeyTab:
		a.focus = a.focus.Next()
		return true
	case tcell.KeyBacktab:
		a.focus = a.focus.Prev()
		return true
	case tcell.KeyUp:
		a.adjustFocused(1)
		return true
	case tcell.KeyDown:
		a.adjustFocused(-1)
		return true
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	a.notice = ""
	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		a.sim.TogglePause()
	case 'r', 'R':
		a.sim.Reset()
	case 'c':
		a.setScheme(a.scheme.Next())
	case 'C':
		a.setScheme(a.scheme.Prev())
	case 'a', 'A':
		a.colorByAge = !a.colorByAge
	case 'v', 'V':
		a.fullscreen = !a.fullscreen
		a.resizeToTerminal()
	case 'h', 'H', '?':
		a.showHelp = !a.showHelp
	case '+', '=':
		a.adjustSpeed(1)
	case '-', '_':
		a.adjustSpeed(-1)
	case 'e', 'E':
		a.exportTelemetry()
	default:
		if p, ok := patternForRune(r); ok {
			a.sim.ResetWithSeed(p)
		}
	}
	return true
}

// patternForRune maps the digit and bracket keys to seed patterns. The rest
// of the catalog is reachable by cycling the focused seed parameter.
func patternForRune(r rune) (sim.SeedPattern, bool) {
	switch r {
	case '1':
		return sim.PatternPoint, true
	case '2':
		return sim.PatternLine, true
	case '3':
		return sim.PatternCross, true
	case '4':
		return sim.PatternCircle, true
	case '5':
		return sim.PatternRing, true
	case '6':
		return sim.PatternDiamond, true
	case '7':
		return sim.PatternBlock, true
	case '8':
		return sim.PatternStarburst, true
	case '9':
		return sim.PatternSpiral, true
	case '0':
		return sim.PatternNoise, true
	case '[':
		return sim.PatternScatter, true
	case ']':
		return sim.PatternMultiPoint, true
	}
	return 0, false
}

func (a *App) adjustFocused(dir int) {
	switch a.focus {
	case ui.FocusParticles:
		a.sim.AdjustParticles(dir * 100)
	case ui.FocusStickiness:
		a.sim.AdjustStickiness(float64(dir) * 0.05)
	case ui.FocusSeed:
		if dir > 0 {
			a.sim.CycleSeedForward()
		} else {
			a.sim.CycleSeedBackward()
		}
	case ui.FocusSpeed:
		a.adjustSpeed(dir)
	}
}

func (a *App) adjustSpeed(dir int) {
	a.stepsPerFrame += dir
	if a.stepsPerFrame < 1 {
		a.stepsPerFrame = 1
	}
	if a.stepsPerFrame > 50 {
		a.stepsPerFrame = 50
	}
}

func (a *App) setScheme(s render.ColorScheme) {
	a.scheme = s
	a.lut = render.NewColorLUT(s)
}

// resizeToTerminal re-derives the canvas and simulation grid from the
// current terminal size. Same-size resizes are absorbed by the simulation.
func (a *App) resizeToTerminal() {
	termW, termH := a.screen.Size()
	a.canvasW, a.canvasH = ui.CanvasSize(termW, termH, a.fullscreen)
	sw, sh := render.SimulationSize(a.canvasW, a.canvasH)
	a.sim.Resize(sw, sh)
}

func (a *App) exportTelemetry() {
	dir := a.telemetryDir
	if dir == "" {
		dir = "telemetry"
	}
	path, err := a.recorder.Export(dir)
	if err != nil {
		a.notice = fmt.Sprintf("export failed: %v", err)
		return
	}
	if d, ok := a.recorder.FractalDimension(); ok {
		a.notice = fmt.Sprintf("saved %s (dimension ≈ %.2f)", path, d)
	} else {
		a.notice = fmt.Sprintf("saved %s", path)
	}
}
