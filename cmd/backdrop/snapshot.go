package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/systems"
)

// snapshotEpoch is the virtual mount time of offscreen runs
var snapshotEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type snapshotOptions struct {
	Path          string
	Width, Height int
	Frames        int
	Dark, Frozen  bool
}

// runSnapshot simulates opts.Frames processed frames on a raster surface under
// a virtual clock and writes the final frame as PNG
func runSnapshot(cfg *config.Config, rng *rand.Rand, opts snapshotOptions) (err error) {
	if opts.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", opts.Frames)
	}

	surface, err := render.NewRasterSurface(opts.Width, opts.Height, cfg.Rain.CellSize)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, surface.Close())
	}()

	clock := engine.NewMockClock(snapshotEpoch)
	host := engine.NewLoopHost()
	dark, light := systems.Factories(cfg, rng, nil)
	stage := engine.NewStage(engine.StageConfig{
		Canvas: render.NewCanvas(surface, surface),
		Host:   host,
		Inputs: engine.NewState(opts.Dark, opts.Frozen),
		Gate:   cfg.Frame.Gate,
		Dark:   dark,
		Light:  light,
	})
	stage.Sync(clock.Now())
	defer stage.Teardown()

	scheduler := stage.Scheduler()
	if scheduler == nil {
		return errors.New("no usable surface")
	}
	if !clock.Pump(host, cfg.Frame.Gate, func() bool { return scheduler.Frames() >= uint64(opts.Frames) }) {
		return errors.New("frame loop stopped early")
	}

	if err := surface.SavePNG(opts.Path); err != nil {
		return fmt.Errorf("write %s: %w", opts.Path, err)
	}
	log.Printf("snapshot: %s field, %d frames, %dx%d -> %s",
		stage.Field().Name(), scheduler.Frames(), opts.Width, opts.Height, opts.Path)
	return nil
}
