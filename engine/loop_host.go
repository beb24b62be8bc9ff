package engine

import "time"

// FrameCallback receives the timestamp of the host refresh
type FrameCallback func(now time.Time)

// FrameHandle identifies a pending frame request, zero is never issued
type FrameHandle uint64

// Host schedules animation frame callbacks
type Host interface {
	RequestFrame(cb FrameCallback) FrameHandle
	CancelFrame(h FrameHandle)
}

type pendingFrame struct {
	handle FrameHandle
	cb     FrameCallback
}

// LoopHost is a cooperative frame queue driven by the owning loop
// Callbacks requested while a frame runs are deferred to the next RunFrame
type LoopHost struct {
	next    FrameHandle
	pending []pendingFrame
	running []pendingFrame
}

// NewLoopHost creates an empty frame queue
func NewLoopHost() *LoopHost {
	return &LoopHost{}
}

func (h *LoopHost) RequestFrame(cb FrameCallback) FrameHandle {
	h.next++
	h.pending = append(h.pending, pendingFrame{handle: h.next, cb: cb})
	return h.next
}

// CancelFrame removes a pending request; unknown or already-run handles are ignored
func (h *LoopHost) CancelFrame(handle FrameHandle) {
	for i, p := range h.pending {
		if p.handle == handle {
			h.pending = append(h.pending[:i], h.pending[i+1:]...)
			return
		}
	}
	// Cancelling a sibling from inside the current frame
	for i, p := range h.running {
		if p.handle == handle {
			h.running[i].cb = nil
			return
		}
	}
}

// RunFrame invokes every callback queued before the call, in request order
// Returns the number of callbacks invoked
func (h *LoopHost) RunFrame(now time.Time) int {
	h.running, h.pending = h.pending, h.running[:0]
	n := 0
	for i := range h.running {
		if cb := h.running[i].cb; cb != nil {
			cb(now)
			n++
		}
	}
	h.running = h.running[:0]
	return n
}

// Pending returns the number of queued requests
func (h *LoopHost) Pending() int {
	return len(h.pending)
}
