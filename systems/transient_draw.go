package systems

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/backdrop/components"
	"github.com/lixenwraith/backdrop/render"
)

// Gradient ring profile: transparent center rising toward the rim
const (
	ringInnerOffset = 0.7
	ringInnerAlpha  = 0.35
)

// ringStops fills buf with the ring profile scaled to alpha
func ringStops(buf *[3]render.RingStop, alpha float64) []render.RingStop {
	buf[0] = render.RingStop{Offset: 0, Alpha: 0}
	buf[1] = render.RingStop{Offset: ringInnerOffset, Alpha: ringInnerAlpha * alpha}
	buf[2] = render.RingStop{Offset: 1, Alpha: alpha}
	return buf[:]
}

// transientPainter draws a transient population in the style of its policy
type transientPainter struct {
	color     colorful.Color
	lineWidth float64
	stops     [3]render.RingStop
}

// paint draws every live transient with alpha scaled by opacity
func (p *transientPainter) paint(s render.Surface, pop *components.Transients, opacity float64) {
	if pop.Policy == nil {
		return
	}
	kind := pop.Policy.Kind()
	for i := range pop.Items {
		t := &pop.Items[i]
		alpha := pop.Policy.Alpha(t) * opacity
		if alpha <= 0 || t.Radius <= 0 {
			continue
		}
		switch kind {
		case components.KindLinear:
			s.StrokeCircle(t.X, t.Y, t.Radius, p.lineWidth, p.color, alpha)
		case components.KindPhased:
			s.FillRing(t.X, t.Y, t.Radius, p.color, ringStops(&p.stops, alpha))
		}
	}
}
