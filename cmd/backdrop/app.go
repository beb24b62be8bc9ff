package main

import (
	"log"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/systems"
)

// speedStep is the live ripple speed change per key press
const speedStep = 0.1

// app binds a terminal screen to a stage and translates host events
type app struct {
	screen  tcell.Screen
	surface *render.TerminalSurface
	host    *engine.LoopHost
	clock   engine.TimeProvider
	state   *engine.State
	cfg     *config.Config
	stage   *engine.Stage

	pressed bool // Button1 held, so drags do not repeat clicks
}

// newApp mounts the field selected by the initial theme on an initialized screen
func newApp(screen tcell.Screen, cfg *config.Config, rng *rand.Rand, state *engine.State, clock engine.TimeProvider, sound systems.Sound) *app {
	a := &app{
		screen:  screen,
		surface: render.NewTerminalSurface(screen),
		host:    engine.NewLoopHost(),
		clock:   clock,
		state:   state,
		cfg:     cfg,
	}
	dark, light := systems.Factories(cfg, rng, sound)
	a.stage = engine.NewStage(engine.StageConfig{
		Canvas: render.NewCanvas(a.surface, a.surface),
		Host:   a.host,
		Inputs: state,
		Gate:   cfg.Frame.Gate,
		Dark:   dark,
		Light:  light,
	})
	a.stage.Sync(clock.Now())
	return a
}

// frame runs one host refresh; the scheduler decides whether it is processed
func (a *app) frame() {
	a.host.RunFrame(a.clock.Now())
}

// handle applies one terminal event, false means quit
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.pressed {
			x, y := ev.Position()
			a.stage.Click(float64(x), float64(y))
		}
		a.pressed = down

	case *tcell.EventResize:
		a.screen.Sync()
		a.surface.NotifyResize()
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 't', 'T':
		dark := a.state.ToggleDarkMode()
		log.Printf("app: theme dark=%v", dark)
		a.stage.Sync(a.clock.Now())
	case 'f', 'F':
		frozen := a.state.ToggleFrozen()
		log.Printf("app: frozen=%v", frozen)
	case '+', '=':
		log.Printf("app: ripple speed %.2f", a.cfg.AdjustSpeed(speedStep))
	case '-', '_':
		log.Printf("app: ripple speed %.2f", a.cfg.AdjustSpeed(-speedStep))
	}
	return true
}

// close releases the mounted field
func (a *app) close() {
	a.stage.Teardown()
}
