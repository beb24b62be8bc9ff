package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/systems"
)

const speedStep = 0.1

// game hosts a stage in an ebiten window, blitting the raster surface every draw
type game struct {
	surface *render.RasterSurface
	host    *engine.LoopHost
	state   *engine.State
	cfg     *config.Config
	stage   *engine.Stage

	frame         *ebiten.Image
	width, height int
}

func newGame(cfg *config.Config, rng *rand.Rand, state *engine.State, width, height int, sound systems.Sound) (*game, error) {
	surface, err := render.NewRasterSurface(width, height, cfg.Rain.CellSize)
	if err != nil {
		return nil, err
	}
	g := &game{
		surface: surface,
		host:    engine.NewLoopHost(),
		state:   state,
		cfg:     cfg,
		width:   width,
		height:  height,
	}
	dark, light := systems.Factories(cfg, rng, sound)
	g.stage = engine.NewStage(engine.StageConfig{
		Canvas: render.NewCanvas(surface, surface),
		Host:   g.host,
		Inputs: state,
		Gate:   cfg.Frame.Gate,
		Dark:   dark,
		Light:  light,
	})
	g.stage.Sync(time.Now())
	return g, nil
}

func (g *game) Update() error {
	if w, h := g.surface.ViewportSize(); w != g.width || h != g.height {
		g.surface.SetViewport(g.width, g.height)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		log.Printf("window: theme dark=%v", g.state.ToggleDarkMode())
		g.stage.Sync(time.Now())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		log.Printf("window: frozen=%v", g.state.ToggleFrozen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		log.Printf("window: ripple speed %.2f", g.cfg.AdjustSpeed(speedStep))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		log.Printf("window: ripple speed %.2f", g.cfg.AdjustSpeed(-speedStep))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.stage.Click(float64(x), float64(y))
	}

	g.host.RunFrame(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.surface.Size()
	if w == 0 || h == 0 {
		return
	}
	pix := g.surface.Pixels()
	if len(pix) != 4*w*h {
		return
	}
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(pix)
	screen.DrawImage(g.frame, nil)
}

// Layout follows the window size; the new size is applied on the next Update
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *game) close() error {
	g.stage.Teardown()
	return g.surface.Close()
}
