package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/backdrop/audio"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/constants"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/systems"
)

var (
	darkFlag   = flag.Bool("dark", true, "Start with the rain field (dark theme); false starts the ripple field")
	frozenFlag = flag.Bool("frozen", false, "Start with ripples frozen")
	configFlag = flag.String("config", "", "TOML configuration file")
	debugFlag  = flag.Bool("debug", false, "Log to stderr")
	widthFlag  = flag.Int("width", constants.SnapshotWidth, "Initial window width")
	heightFlag = flag.Int("height", constants.SnapshotHeight, "Initial window height")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
)

func main() {
	flag.Parse()
	if !*debugFlag {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "backdrop-window: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sound systems.Sound
	if cfg.Audio.Enabled {
		chime := audio.NewChime()
		if err := chime.Initialize(); err != nil {
			log.Printf("window: audio unavailable, continuing without: %v", err)
		} else {
			defer chime.Cleanup()
			sound = chime
		}
	}

	state := engine.NewState(*darkFlag, *frozenFlag)
	g, err := newGame(cfg, rand.New(rand.NewSource(seed)), state, *widthFlag, *heightFlag, sound)
	if err != nil {
		return err
	}
	defer g.close()

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("backdrop - t: theme, f: freeze, +/-: speed, q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / constants.HostRefreshInterval))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
