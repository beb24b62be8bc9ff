package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// OpKind identifies a recorded drawing operation
type OpKind uint8

const (
	OpClear OpKind = iota
	OpGlyph
	OpStrokeCircle
	OpFillRect
	OpFillRing
)

// Op is one recorded drawing call
type Op struct {
	Kind   OpKind
	Rune   rune
	X, Y   float64
	W, H   float64
	Radius float64
	Color  colorful.Color
	Alpha  float64
	Stops  []RingStop
}

// RecordingSurface logs drawing calls of the current frame
// It is the test double for field rendering; Present starts a new frame
type RecordingSurface struct {
	resizeListeners

	width, height int
	viewW, viewH  int

	Ops      []Op
	LastOps  []Op
	Presents int
}

// NewRecordingSurface creates a recorder whose viewport and backing store are width x height
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{width: width, height: height, viewW: width, viewH: height}
}

func (s *RecordingSurface) Size() (int, int) { return s.width, s.height }

func (s *RecordingSurface) SetSize(width, height int) {
	s.width, s.height = width, height
}

// SetViewport changes the host viewport and fires resize listeners
func (s *RecordingSurface) SetViewport(width, height int) {
	s.viewW, s.viewH = width, height
	s.NotifyResize()
}

func (s *RecordingSurface) ViewportSize() (int, int)   { return s.viewW, s.viewH }
func (s *RecordingSurface) Origin() (float64, float64) { return 0, 0 }
func (s *RecordingSurface) Scale() (float64, float64)  { return 1, 1 }

func (s *RecordingSurface) Clear(bg colorful.Color) {
	s.Ops = append(s.Ops[:0], Op{Kind: OpClear, Color: bg, Alpha: 1})
}

func (s *RecordingSurface) DrawGlyph(r rune, x, y float64, fg colorful.Color, alpha float64) {
	s.Ops = append(s.Ops, Op{Kind: OpGlyph, Rune: r, X: x, Y: y, Color: fg, Alpha: alpha})
}

func (s *RecordingSurface) StrokeCircle(x, y, radius, lineWidth float64, c colorful.Color, alpha float64) {
	s.Ops = append(s.Ops, Op{Kind: OpStrokeCircle, X: x, Y: y, Radius: radius, W: lineWidth, Color: c, Alpha: alpha})
}

func (s *RecordingSurface) FillRect(x, y, w, h float64, c colorful.Color, alpha float64) {
	s.Ops = append(s.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c, Alpha: alpha})
}

func (s *RecordingSurface) FillRing(x, y, radius float64, c colorful.Color, stops []RingStop) {
	cp := make([]RingStop, len(stops))
	copy(cp, stops)
	s.Ops = append(s.Ops, Op{Kind: OpFillRing, X: x, Y: y, Radius: radius, Color: c, Stops: cp})
}

// Present snapshots the frame into LastOps
func (s *RecordingSurface) Present() error {
	s.LastOps = append(s.LastOps[:0], s.Ops...)
	s.Presents++
	return nil
}

// Count returns how many ops of kind the current frame holds
func (s *RecordingSurface) Count(kind OpKind) int {
	n := 0
	for _, op := range s.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
