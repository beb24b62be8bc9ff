package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies frame timestamps
type TimeProvider interface {
	Now() time.Time
}

// SystemClock provides the real system time with monotonic clock readings
type SystemClock struct{}

// NewSystemClock creates a monotonic time provider
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a virtual clock that only moves when advanced.
// Offscreen hosts and tests drive a LoopHost with it.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock creates a virtual clock at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the virtual time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock by d and returns the new time
func (m *MockClock) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Pump runs host frames spaced by step until done reports true.
// Returns false if a frame ran no callbacks, which means nothing will
// ever request another one.
func (m *MockClock) Pump(host *LoopHost, step time.Duration, done func() bool) bool {
	for !done() {
		if host.RunFrame(m.Advance(step)) == 0 {
			return false
		}
	}
	return true
}
