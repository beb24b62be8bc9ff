package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Surface is the drawing half of a canvas
// Coordinates are surface pixels with the origin at the top-left corner
type Surface interface {
	// Size returns the backing-store dimensions
	Size() (width, height int)

	// SetSize reallocates the backing store
	SetSize(width, height int)

	Clear(bg colorful.Color)

	// DrawGlyph draws a monospace glyph whose cell top-left is (x, y)
	DrawGlyph(r rune, x, y float64, fg colorful.Color, alpha float64)

	StrokeCircle(x, y, radius, lineWidth float64, c colorful.Color, alpha float64)
	FillRect(x, y, w, h float64, c colorful.Color, alpha float64)

	// FillRing fills a disk with a radial alpha gradient defined by stops
	FillRing(x, y, radius float64, c colorful.Color, stops []RingStop)

	// Present flushes the frame to the host
	Present() error
}

// Viewport is the host half of a canvas: the window the surface fills
type Viewport interface {
	// ViewportSize returns the current host viewport in surface pixels
	ViewportSize() (width, height int)

	// Origin returns the top-left of the surface in host pointer coordinates
	Origin() (x, y float64)

	// Scale converts host pointer units to surface pixels
	Scale() (sx, sy float64)

	AddResizeListener(fn func()) int
	RemoveResizeListener(id int)
}

// RingStop is one alpha stop of a radial ring, Offset in [0, 1] from the center
type RingStop struct {
	Offset float64
	Alpha  float64
}

// RingAlpha interpolates the stop alpha at normalized distance t
func RingAlpha(stops []RingStop, t float64) float64 {
	if len(stops) == 0 {
		return 0
	}
	if t <= stops[0].Offset {
		return stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			prev := stops[i-1]
			span := stops[i].Offset - prev.Offset
			if span <= 0 {
				return stops[i].Alpha
			}
			f := (t - prev.Offset) / span
			return prev.Alpha + (stops[i].Alpha-prev.Alpha)*f
		}
	}
	return stops[len(stops)-1].Alpha
}

// resizeListeners is the listener registry shared by viewport implementations
type resizeListeners struct {
	next int
	fns  map[int]func()
}

func (l *resizeListeners) AddResizeListener(fn func()) int {
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	l.next++
	l.fns[l.next] = fn
	return l.next
}

func (l *resizeListeners) RemoveResizeListener(id int) {
	delete(l.fns, id)
}

// ListenerCount returns the number of registered resize listeners
func (l *resizeListeners) ListenerCount() int {
	return len(l.fns)
}

// NotifyResize runs every registered listener synchronously
func (l *resizeListeners) NotifyResize() {
	for _, fn := range l.fns {
		fn()
	}
}
