package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/backdrop/audio"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/constants"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/systems"
)

var (
	darkFlag     = flag.Bool("dark", true, "Start with the rain field (dark theme); false starts the ripple field")
	frozenFlag   = flag.Bool("frozen", false, "Start with ripples frozen")
	configFlag   = flag.String("config", "", "TOML configuration file")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/backdrop.log")
	snapshotFlag = flag.String("snapshot", "", "Render offscreen and write a PNG to this path instead of using the terminal")
	framesFlag   = flag.Int("frames", constants.SnapshotFrames, "Processed frames to simulate in snapshot mode")
	widthFlag    = flag.Int("width", constants.SnapshotWidth, "Snapshot width in pixels")
	heightFlag   = flag.Int("height", constants.SnapshotHeight, "Snapshot height in pixels")
	seedFlag     = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backdrop: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("backdrop: seed=%d", seed)

	if *snapshotFlag != "" {
		opts := snapshotOptions{
			Path:   *snapshotFlag,
			Width:  *widthFlag,
			Height: *heightFlag,
			Frames: *framesFlag,
			Dark:   *darkFlag,
			Frozen: *frozenFlag,
		}
		if err := runSnapshot(cfg, rng, opts); err != nil {
			fmt.Fprintf(os.Stderr, "backdrop: snapshot: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(cfg, rng); err != nil {
		fmt.Fprintf(os.Stderr, "backdrop: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runTerminal(cfg *config.Config, rng *rand.Rand) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBACKDROP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	var sound systems.Sound
	if cfg.Audio.Enabled {
		chime := audio.NewChime()
		if err := chime.Initialize(); err != nil {
			log.Printf("backdrop: audio unavailable, continuing without: %v", err)
		} else {
			defer chime.Cleanup()
			sound = chime
		}
	}

	state := engine.NewState(*darkFlag, *frozenFlag)
	a := newApp(screen, cfg, rng, state, engine.NewSystemClock(), sound)
	defer a.close()

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(constants.HostRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !a.handle(ev) {
				return nil
			}
		case <-ticker.C:
			a.frame()
		}
	}
}
