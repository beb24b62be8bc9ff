// Package config holds every tunable of the ambient engine in one structure
// with documented defaults and valid ranges.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/backdrop/constants"
)

// Config is the root configuration
type Config struct {
	Frame  FrameConfig  `toml:"frame"`
	Rain   RainConfig   `toml:"rain"`
	Ripple RippleConfig `toml:"ripple"`
	Audio  AudioConfig  `toml:"audio"`
}

// FrameConfig controls the frame scheduler
type FrameConfig struct {
	// Gate is the minimum interval between processed frames
	Gate time.Duration `toml:"gate"`
}

// RainConfig controls the falling-glyph field
// Column ranges are half-open [min, max)
type RainConfig struct {
	ColumnSpacing   float64 `toml:"column_spacing"`
	CellSize        float64 `toml:"cell_size"`
	SpeedMin        float64 `toml:"speed_min"`
	SpeedMax        float64 `toml:"speed_max"`
	LengthMin       int     `toml:"length_min"`
	LengthMax       int     `toml:"length_max"`
	OpacityMin      float64 `toml:"opacity_min"`
	OpacityMax      float64 `toml:"opacity_max"`
	Glyphs          string  `toml:"glyphs"`
	SparkleCount    int     `toml:"sparkle_count"`
	SparklePeriod   int     `toml:"sparkle_period"`
	RippleCap       int     `toml:"ripple_cap"`
	RippleMaxRadius float64 `toml:"ripple_max_radius"`
	RippleMaxLife   int     `toml:"ripple_max_life"`
}

// RippleConfig controls the phased ripple field
// Speed and Opacity are read every frame and may be tuned while running
type RippleConfig struct {
	InitialRadius     float64       `toml:"initial_radius"`
	MaxRadiusFraction float64       `toml:"max_radius_fraction"`
	Opacity           float64       `toml:"opacity"`
	OpacityMin        float64       `toml:"opacity_min"`
	OpacityMax        float64       `toml:"opacity_max"`
	Speed             float64       `toml:"speed"`
	SpawnInterval     time.Duration `toml:"spawn_interval"`
	InitialDelay      time.Duration `toml:"initial_delay"`
	BurstBase         int           `toml:"burst_base"`
	BurstExtra        int           `toml:"burst_extra"`
	AvoidMin          float64       `toml:"avoid_min"`
	AvoidMax          float64       `toml:"avoid_max"`
	MaxSamples        int           `toml:"max_samples"`
	ContractRatio     float64       `toml:"contract_ratio"`
	ContractFactor    float64       `toml:"contract_factor"`
	FadeFactor        float64       `toml:"fade_factor"`
	MinRadius         float64       `toml:"min_radius"`
	MinFadeRadius     float64       `toml:"min_fade_radius"`
}

// AudioConfig toggles the click chime
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the documented defaults
func Default() *Config {
	return &Config{
		Frame: FrameConfig{
			Gate: constants.FrameGate,
		},
		Rain: RainConfig{
			ColumnSpacing:   constants.RainColumnSpacing,
			CellSize:        constants.RainCellSize,
			SpeedMin:        constants.RainSpeedMin,
			SpeedMax:        constants.RainSpeedMax,
			LengthMin:       constants.RainLengthMin,
			LengthMax:       constants.RainLengthMax,
			OpacityMin:      constants.RainOpacityMin,
			OpacityMax:      constants.RainOpacityMax,
			Glyphs:          string(constants.RainGlyphs),
			SparkleCount:    constants.SparkleCount,
			SparklePeriod:   constants.SparklePeriod,
			RippleCap:       constants.SimpleRippleCap,
			RippleMaxRadius: constants.SimpleRippleMaxRadius,
			RippleMaxLife:   constants.SimpleRippleMaxLife,
		},
		Ripple: RippleConfig{
			InitialRadius:     constants.RippleInitialRadius,
			MaxRadiusFraction: constants.RippleMaxRadiusFraction,
			Opacity:           constants.RippleOpacity,
			OpacityMin:        constants.RippleOpacityMin,
			OpacityMax:        constants.RippleOpacityMax,
			Speed:             constants.RippleSpeed,
			SpawnInterval:     constants.RippleSpawnInterval,
			InitialDelay:      constants.RippleInitialDelay,
			BurstBase:         constants.RippleBurstBase,
			BurstExtra:        constants.RippleBurstExtra,
			AvoidMin:          constants.RippleAvoidMin,
			AvoidMax:          constants.RippleAvoidMax,
			MaxSamples:        constants.RippleMaxSamples,
			ContractRatio:     constants.RippleContractRatio,
			ContractFactor:    constants.RippleContractFactor,
			FadeFactor:        constants.RippleFadeFactor,
			MinRadius:         constants.RippleMinRadius,
			MinFadeRadius:     constants.RippleMinFadeRadius,
		},
	}
}

// Validate reports every out-of-range field as a single joined error
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Frame.Gate > 0 && c.Frame.Gate <= time.Second, "frame.gate must be in (0, 1s], got %v", c.Frame.Gate)

	r := c.Rain
	check(r.ColumnSpacing > 0, "rain.column_spacing must be positive, got %v", r.ColumnSpacing)
	check(r.CellSize > 0, "rain.cell_size must be positive, got %v", r.CellSize)
	check(r.SpeedMin > 0 && r.SpeedMin < r.SpeedMax, "rain speed range must satisfy 0 < min < max, got [%v, %v)", r.SpeedMin, r.SpeedMax)
	check(r.LengthMin > 0 && r.LengthMin < r.LengthMax, "rain length range must satisfy 0 < min < max, got [%d, %d)", r.LengthMin, r.LengthMax)
	check(r.OpacityMin >= 0 && r.OpacityMin < r.OpacityMax && r.OpacityMax <= 1, "rain opacity range must lie in [0, 1] with min < max, got [%v, %v)", r.OpacityMin, r.OpacityMax)
	glyphs := []rune(r.Glyphs)
	check(len(glyphs) == 2, "rain.glyphs must hold exactly two symbols, got %q", r.Glyphs)
	for _, g := range glyphs {
		check(runewidth.RuneWidth(g) == 1, "rain.glyphs symbol %q must be single-width", g)
	}
	check(r.SparkleCount > 0, "rain.sparkle_count must be positive, got %d", r.SparkleCount)
	check(r.SparklePeriod > 0, "rain.sparkle_period must be positive, got %d", r.SparklePeriod)
	check(r.RippleCap > 0, "rain.ripple_cap must be positive, got %d", r.RippleCap)
	check(r.RippleMaxRadius > 0, "rain.ripple_max_radius must be positive, got %v", r.RippleMaxRadius)
	check(r.RippleMaxLife > 0, "rain.ripple_max_life must be positive, got %d", r.RippleMaxLife)

	p := c.Ripple
	check(p.InitialRadius > 0, "ripple.initial_radius must be positive, got %v", p.InitialRadius)
	check(p.MaxRadiusFraction > 0 && p.MaxRadiusFraction <= 1, "ripple.max_radius_fraction must be in (0, 1], got %v", p.MaxRadiusFraction)
	check(p.Opacity >= 0 && p.Opacity <= 1, "ripple.opacity must be in [0, 1], got %v", p.Opacity)
	check(p.OpacityMin >= 0 && p.OpacityMin < p.OpacityMax && p.OpacityMax <= 1, "ripple opacity range must lie in [0, 1] with min < max, got [%v, %v)", p.OpacityMin, p.OpacityMax)
	check(p.Speed > 0 && p.Speed <= 10, "ripple.speed must be in (0, 10], got %v", p.Speed)
	check(p.SpawnInterval > 0, "ripple.spawn_interval must be positive, got %v", p.SpawnInterval)
	check(p.InitialDelay >= 0 && p.InitialDelay <= p.SpawnInterval, "ripple.initial_delay must be in [0, spawn_interval], got %v", p.InitialDelay)
	check(p.BurstBase > 0, "ripple.burst_base must be positive, got %d", p.BurstBase)
	check(p.BurstExtra >= 0, "ripple.burst_extra must not be negative, got %d", p.BurstExtra)
	check(p.AvoidMin >= 0 && p.AvoidMin < p.AvoidMax && p.AvoidMax <= 1, "ripple avoid box must lie in [0, 1] with min < max, got [%v, %v]", p.AvoidMin, p.AvoidMax)
	check(p.MaxSamples > 0, "ripple.max_samples must be positive, got %d", p.MaxSamples)
	check(p.ContractRatio > 0 && p.ContractRatio < 1, "ripple.contract_ratio must be in (0, 1), got %v", p.ContractRatio)
	check(p.ContractFactor > 0, "ripple.contract_factor must be positive, got %v", p.ContractFactor)
	check(p.FadeFactor > 0, "ripple.fade_factor must be positive, got %v", p.FadeFactor)
	check(p.MinRadius > 0, "ripple.min_radius must be positive, got %v", p.MinRadius)
	check(p.MinFadeRadius > 0, "ripple.min_fade_radius must be positive, got %v", p.MinFadeRadius)
	check(p.InitialRadius > p.MinRadius, "ripple.initial_radius must exceed ripple.min_radius, got %v <= %v", p.InitialRadius, p.MinRadius)

	return errors.Join(errs...)
}

// RainGlyphs returns the two alternating column symbols
func (c *Config) RainGlyphs() []rune {
	return []rune(c.Rain.Glyphs)
}

// AdjustSpeed nudges the live ripple speed, clamped to the documented range
func (c *Config) AdjustSpeed(delta float64) float64 {
	s := c.Ripple.Speed + delta
	s = max(constants.RippleSpeedMin, min(constants.RippleSpeedMax, s))
	c.Ripple.Speed = s
	return s
}
