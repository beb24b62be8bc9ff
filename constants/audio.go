package constants

import "time"

// Chime Output
const (
	ChimeSampleRate = 48000
	ChimeBufferSize = 100 * time.Millisecond
)

// Click Chime
const (
	ClickFrequency = 880.0 // A5
	ClickDuration  = 180 * time.Millisecond
	ClickAttack    = 4 * time.Millisecond
	ClickRelease   = 150 * time.Millisecond
	ClickVolume    = 0.25
)

// Burst Chime
const (
	BurstFrequencyLow  = 329.63 // E4
	BurstFrequencyHigh = 493.88 // B4
	BurstDuration      = 600 * time.Millisecond
	BurstAttack        = 60 * time.Millisecond
	BurstRelease       = 450 * time.Millisecond
	BurstVolume        = 0.12
)
