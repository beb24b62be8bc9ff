// Package audio plays short synthesized cues for ripple events.
// Audio is optional: every call is a no-op until Initialize succeeds.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/backdrop/constants"
)

const sampleRate = beep.SampleRate(constants.ChimeSampleRate)

// Chime mixes click and burst cues into the speaker
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates an uninitialized chime
func NewChime() *Chime {
	return &Chime{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker; failure leaves the chime silent
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.ChimeBufferSize)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup drops queued cues and marks the chime silent
func (c *Chime) Cleanup() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	// beep has no speaker close; clearing the mixer stops output
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// PlayClick queues a short bell tone
func (c *Chime) PlayClick() {
	c.play(clickStream)
}

// PlayBurst queues a soft two-note pad
func (c *Chime) PlayBurst() {
	c.play(burstStream)
}

func (c *Chime) play(build func() beep.Streamer) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(build())
	speaker.Unlock()
}

func clickStream() beep.Streamer {
	tone := newSine(constants.ClickFrequency, constants.ClickDuration, sampleRate)
	shaped := newEnvelope(tone, constants.ClickDuration, constants.ClickAttack, constants.ClickRelease, sampleRate)
	return newVolume(shaped, constants.ClickVolume)
}

func burstStream() beep.Streamer {
	low := newEnvelope(newSine(constants.BurstFrequencyLow, constants.BurstDuration, sampleRate),
		constants.BurstDuration, constants.BurstAttack, constants.BurstRelease, sampleRate)
	high := newEnvelope(newSine(constants.BurstFrequencyHigh, constants.BurstDuration, sampleRate),
		constants.BurstDuration, constants.BurstAttack, constants.BurstRelease, sampleRate)
	mixed := beep.Mix(newVolume(low, 0.6), newVolume(high, 0.4))
	return newVolume(mixed, constants.BurstVolume)
}
