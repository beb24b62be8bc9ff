package engine

import (
	"time"

	"github.com/lixenwraith/backdrop/render"
)

// Field is an animated effect that owns its entity population
// All methods run on the frame loop goroutine
type Field interface {
	// Step advances entities by one processed frame
	Step(now time.Time)

	// Render draws the current state; called every processed frame, including frozen ones
	Render()

	// OnClick receives a pointer click in surface pixels
	OnClick(x, y float64)

	// Resize is called with the new backing size after every viewport change
	Resize(width, height int)

	// Animating reports whether Step should run this frame
	Animating() bool

	Name() string
}

// FieldFactory constructs a field for a mounted surface
// Returning nil leaves the stage inert
type FieldFactory func(surface render.Surface, inputs Inputs, now time.Time) Field
