package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/backdrop/components"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/render"
)

// Inputs is the subset of host flags the ripple field reads
type Inputs interface {
	Frozen() bool
}

// RippleField is the light-theme effect: phased gradient ripples spawned in
// timed bursts away from the center and on click
type RippleField struct {
	surface render.Surface
	inputs  Inputs
	cfg     *config.Config
	rng     *rand.Rand
	sound   Sound

	width, height int

	ripples   components.Transients
	painter   transientPainter
	lastSpawn time.Time
	now       time.Time // Last processed frame time, stamps click ripples
}

// NewRippleField creates an empty ripple field mounted at now
// The first burst fires once the initial delay has elapsed
func NewRippleField(surface render.Surface, inputs Inputs, cfg *config.Config, rng *rand.Rand, now time.Time) *RippleField {
	f := &RippleField{
		surface: surface,
		inputs:  inputs,
		cfg:     cfg,
		rng:     rng,
		sound:   silentSound{},
		painter: transientPainter{color: render.RgbRippleTint},
	}
	f.ripples.Policy = f.policy()
	f.width, f.height = surface.Size()
	f.now = now
	f.lastSpawn = now.Add(cfg.Ripple.InitialDelay - cfg.Ripple.SpawnInterval)
	return f
}

// SetSound attaches click and burst cues, nil silences them
func (f *RippleField) SetSound(s Sound) {
	f.sound = soundOrSilent(s)
}

func (f *RippleField) policy() components.ThreePhase {
	p := f.cfg.Ripple
	return components.ThreePhase{
		ContractRatio:  p.ContractRatio,
		ContractFactor: p.ContractFactor,
		FadeFactor:     p.FadeFactor,
		MinRadius:      p.MinRadius,
		MinFadeRadius:  p.MinFadeRadius,
	}
}

func (f *RippleField) newRipple(x, y float64, now time.Time) components.Transient {
	p := f.cfg.Ripple
	return components.Transient{
		X:         x,
		Y:         y,
		Radius:    p.InitialRadius,
		MaxRadius: p.MaxRadiusFraction * float64(max(f.width, f.height)),
		Phase:     components.PhaseExpand,
		Opacity:   p.OpacityMin + f.rng.Float64()*(p.OpacityMax-p.OpacityMin),
		StartedAt: now,
	}
}

// OnClick adds exactly one expanding ripple centered on the click
func (f *RippleField) OnClick(x, y float64) {
	f.ripples.Add(f.newRipple(x, y, f.now))
	f.sound.PlayClick()
}

// SpawnRandom adds one ripple at a position biased away from the center box
// Returns the number of samples drawn
func (f *RippleField) SpawnRandom(now time.Time) int {
	x, y, samples := f.samplePosition()
	f.ripples.Add(f.newRipple(x, y, now))
	return samples
}

// samplePosition draws uniform points until one falls outside the center box
// The last sample is accepted after MaxSamples attempts
func (f *RippleField) samplePosition() (x, y float64, samples int) {
	p := f.cfg.Ripple
	w, h := float64(f.width), float64(f.height)
	for samples = 1; ; samples++ {
		x = f.rng.Float64() * w
		y = f.rng.Float64() * h
		inside := x >= p.AvoidMin*w && x <= p.AvoidMax*w &&
			y >= p.AvoidMin*h && y <= p.AvoidMax*h
		if !inside || samples >= p.MaxSamples {
			return x, y, samples
		}
	}
}

// Step advances every ripple by the live speed, prunes, and fires due bursts
func (f *RippleField) Step(now time.Time) {
	f.now = now
	f.ripples.Policy = f.policy()
	f.ripples.Step(f.cfg.Ripple.Speed)

	p := f.cfg.Ripple
	// lastSpawn is seeded one interval before the initial delay, so >= lands the first burst on it
	if now.Sub(f.lastSpawn) >= p.SpawnInterval {
		n := p.BurstBase
		if p.BurstExtra > 0 {
			n += f.rng.Intn(p.BurstExtra + 1)
		}
		for i := 0; i < n; i++ {
			f.SpawnRandom(now)
		}
		f.lastSpawn = now
		f.sound.PlayBurst()
		log.Printf("ripple: burst of %d, population %d", n, f.ripples.Len())
	}
}

// Render clears the surface and draws every ripple as a gradient ring
// Alpha is the phase alpha scaled by the live global opacity
func (f *RippleField) Render() {
	f.surface.Clear(render.RgbRippleBackground)
	f.painter.paint(f.surface, &f.ripples, f.cfg.Ripple.Opacity)
}

// Resize tracks the new surface size; live ripples keep their max radius
func (f *RippleField) Resize(width, height int) {
	f.width, f.height = width, height
}

// Animating is false while frozen so ripples hold still but stay visible
func (f *RippleField) Animating() bool {
	return f.inputs == nil || !f.inputs.Frozen()
}

func (f *RippleField) Name() string { return "ripple" }

// Ripples exposes the population for inspection
func (f *RippleField) Ripples() []components.Transient { return f.ripples.Items }

// Alpha returns the draw alpha of ripple i before global opacity
func (f *RippleField) Alpha(i int) float64 {
	return f.ripples.Policy.Alpha(&f.ripples.Items[i])
}
