package systems

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/render"
)

// Factories returns the dark (rain) and light (ripple) field constructors for a stage
// Both fields share cfg for live tuning and draw from rng
func Factories(cfg *config.Config, rng *rand.Rand, sound Sound) (dark, light engine.FieldFactory) {
	dark = func(s render.Surface, _ engine.Inputs, _ time.Time) engine.Field {
		f := NewRainField(s, cfg, rng)
		f.SetSound(sound)
		return f
	}
	light = func(s render.Surface, in engine.Inputs, now time.Time) engine.Field {
		f := NewRippleField(s, in, cfg, rng, now)
		f.SetSound(sound)
		return f
	}
	return dark, light
}
