package render

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/gomono"
)

// RasterSurface draws into an offscreen gg context
// It backs PNG snapshots and the window host; the viewport size is set by the host
type RasterSurface struct {
	resizeListeners

	dc        *gg.Context
	source    *text.FontSource
	face      text.Face
	glyphSize float64
	ascent    float64

	viewW, viewH int
	err          error
}

// NewRasterSurface creates a surface whose viewport starts at width x height
// glyphSize is the monospace glyph cell height in pixels
func NewRasterSurface(width, height int, glyphSize float64) (*RasterSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}
	source, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	face := source.Face(glyphSize)
	return &RasterSurface{
		dc:        gg.NewContext(width, height),
		source:    source,
		face:      face,
		glyphSize: glyphSize,
		ascent:    face.Metrics().Ascent,
		viewW:     width,
		viewH:     height,
	}, nil
}

func (s *RasterSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *RasterSurface) SetSize(width, height int) {
	if err := s.dc.Resize(width, height); err != nil {
		s.record(err)
	}
}

// SetViewport changes the host viewport and fires resize listeners
func (s *RasterSurface) SetViewport(width, height int) {
	if width == s.viewW && height == s.viewH {
		return
	}
	s.viewW, s.viewH = width, height
	s.NotifyResize()
}

func (s *RasterSurface) ViewportSize() (int, int) {
	return s.viewW, s.viewH
}

func (s *RasterSurface) Origin() (float64, float64) {
	return 0, 0
}

func (s *RasterSurface) Scale() (float64, float64) {
	return 1, 1
}

func (s *RasterSurface) Clear(bg colorful.Color) {
	s.dc.ClearWithColor(toRGBA(bg, 1))
}

func (s *RasterSurface) DrawGlyph(r rune, x, y float64, fg colorful.Color, alpha float64) {
	s.dc.SetFont(s.face)
	s.dc.SetFillBrush(gg.Solid(toRGBA(fg, alpha)))
	s.dc.DrawString(string(r), x, y+s.ascent)
}

func (s *RasterSurface) StrokeCircle(x, y, radius, lineWidth float64, c colorful.Color, alpha float64) {
	s.dc.SetStrokeBrush(gg.Solid(toRGBA(c, alpha)))
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawCircle(x, y, radius)
	s.record(s.dc.Stroke())
}

func (s *RasterSurface) FillRect(x, y, w, h float64, c colorful.Color, alpha float64) {
	s.dc.SetFillBrush(gg.Solid(toRGBA(c, alpha)))
	s.dc.DrawRectangle(x, y, w, h)
	s.record(s.dc.Fill())
}

func (s *RasterSurface) FillRing(x, y, radius float64, c colorful.Color, stops []RingStop) {
	if radius <= 0 {
		return
	}
	grad := gg.NewRadialGradientBrush(x, y, 0, radius)
	for _, stop := range stops {
		grad.AddColorStop(stop.Offset, toRGBA(c, stop.Alpha))
	}
	s.dc.SetFillBrush(grad)
	s.dc.DrawCircle(x, y, radius)
	s.record(s.dc.Fill())
}

// Present returns the first drawing error since the previous frame
func (s *RasterSurface) Present() error {
	err := s.err
	s.err = nil
	return err
}

// Image returns a copy of the current frame
func (s *RasterSurface) Image() image.Image {
	return s.dc.Image()
}

// Pixels returns the current frame as RGBA bytes for host blits
func (s *RasterSurface) Pixels() []byte {
	if img, ok := s.dc.Image().(*image.RGBA); ok {
		return img.Pix
	}
	return nil
}

func (s *RasterSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases the drawing context and the font source
func (s *RasterSurface) Close() error {
	return errors.Join(s.dc.Close(), s.source.Close())
}

func (s *RasterSurface) record(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func toRGBA(c colorful.Color, alpha float64) gg.RGBA {
	c = c.Clamped()
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: clamp01(alpha)}
}
