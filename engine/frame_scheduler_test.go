package engine

import (
	"testing"
	"time"
)

func TestFrameSchedulerGate(t *testing.T) {
	host := NewLoopHost()
	clock := NewMockClock(time.Unix(1000, 0))

	steps := 0
	sched := NewFrameScheduler(host, 16*time.Millisecond, func(time.Time) { steps++ })
	sched.Start()

	// First callback always processes
	host.RunFrame(clock.Now())
	if steps != 1 {
		t.Fatalf("Expected first frame processed, got %d steps", steps)
	}

	tests := []struct {
		advance time.Duration
		want    int
	}{
		{8 * time.Millisecond, 1},  // 8ms since last: gated
		{7 * time.Millisecond, 1},  // 15ms: gated
		{1 * time.Millisecond, 2},  // 16ms: processed
		{15 * time.Millisecond, 2}, // gated
		{20 * time.Millisecond, 3}, // processed
	}

	for i, tt := range tests {
		host.RunFrame(clock.Advance(tt.advance))
		if steps != tt.want {
			t.Errorf("Frame %d (+%v): expected %d steps, got %d", i, tt.advance, tt.want, steps)
		}
	}

	if sched.Frames() != 3 {
		t.Errorf("Expected 3 processed frames, got %d", sched.Frames())
	}
	if sched.Skipped() != 3 {
		t.Errorf("Expected 3 skipped frames, got %d", sched.Skipped())
	}
	if host.Pending() != 1 {
		t.Errorf("Expected exactly one outstanding request, got %d", host.Pending())
	}
}

func TestFrameSchedulerStopIdempotent(t *testing.T) {
	host := NewLoopHost()
	steps := 0
	sched := NewFrameScheduler(host, 16*time.Millisecond, func(time.Time) { steps++ })

	sched.Stop() // stopping a stopped scheduler is a no-op
	sched.Start()
	sched.Start() // double start must not double-request
	if host.Pending() != 1 {
		t.Fatalf("Expected one request after double start, got %d", host.Pending())
	}

	sched.Stop()
	sched.Stop()
	if host.Pending() != 0 {
		t.Errorf("Expected no pending requests after stop, got %d", host.Pending())
	}

	host.RunFrame(time.Unix(0, 0))
	if steps != 0 {
		t.Errorf("Expected no steps after stop, got %d", steps)
	}
	if sched.Running() {
		t.Error("Expected scheduler stopped")
	}
}

func TestFrameSchedulerStopFromStep(t *testing.T) {
	host := NewLoopHost()
	var sched *FrameScheduler
	sched = NewFrameScheduler(host, 16*time.Millisecond, func(time.Time) { sched.Stop() })
	sched.Start()

	host.RunFrame(time.Unix(0, 0))
	if host.Pending() != 0 {
		t.Errorf("Expected no reschedule after stop inside step, got %d pending", host.Pending())
	}
}

func TestFrameSchedulerRestart(t *testing.T) {
	host := NewLoopHost()
	clock := NewMockClock(time.Unix(0, 0))
	steps := 0
	sched := NewFrameScheduler(host, 16*time.Millisecond, func(time.Time) { steps++ })

	sched.Start()
	host.RunFrame(clock.Now())
	sched.Stop()
	sched.Start()

	// Gate still measured from the last processed frame
	host.RunFrame(clock.Advance(5 * time.Millisecond))
	if steps != 1 {
		t.Errorf("Expected gated frame after restart, got %d steps", steps)
	}
}
