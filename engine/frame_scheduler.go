package engine

import "time"

// FrameScheduler drives a step function from host frame callbacks
// Frames closer than the gate to the last processed frame are skipped without side effects
type FrameScheduler struct {
	host Host
	gate time.Duration
	step FrameCallback

	handle        FrameHandle
	running       bool
	lastProcessed time.Time
	processed     bool

	frames  uint64
	skipped uint64
}

// NewFrameScheduler creates a stopped scheduler
func NewFrameScheduler(host Host, gate time.Duration, step FrameCallback) *FrameScheduler {
	return &FrameScheduler{
		host: host,
		gate: gate,
		step: step,
	}
}

// Start requests the first frame, no-op when already running
func (s *FrameScheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.handle = s.host.RequestFrame(s.tick)
}

// Stop cancels the pending frame, safe to call repeatedly
func (s *FrameScheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.host.CancelFrame(s.handle)
	s.handle = 0
}

// Running reports whether a frame request is outstanding
func (s *FrameScheduler) Running() bool {
	return s.running
}

// Frames returns the number of processed frames
func (s *FrameScheduler) Frames() uint64 {
	return s.frames
}

// Skipped returns the number of gated frames
func (s *FrameScheduler) Skipped() uint64 {
	return s.skipped
}

func (s *FrameScheduler) tick(now time.Time) {
	if !s.running {
		return
	}

	if s.processed && now.Sub(s.lastProcessed) < s.gate {
		s.skipped++
		s.handle = s.host.RequestFrame(s.tick)
		return
	}

	s.processed = true
	s.lastProcessed = now
	s.frames++
	s.step(now)

	// Step may have stopped the scheduler
	if s.running {
		s.handle = s.host.RequestFrame(s.tick)
	}
}
