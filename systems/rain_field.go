package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/backdrop/components"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/constants"
	"github.com/lixenwraith/backdrop/render"
)

// RainField is the dark-theme effect: falling glyph columns, click ripples and a cycling sparkle
type RainField struct {
	surface render.Surface
	cfg     *config.Config
	rng     *rand.Rand
	sound   Sound

	width, height int
	glyphs        []rune

	columns  []components.RainColumn
	sparkles components.SparkleSet
	ripples  components.Transients
	painter  transientPainter

	frames int
}

// NewRainField creates a rain field sized to the surface
func NewRainField(surface render.Surface, cfg *config.Config, rng *rand.Rand) *RainField {
	f := &RainField{
		surface: surface,
		cfg:     cfg,
		rng:     rng,
		sound:   silentSound{},
		glyphs:  cfg.RainGlyphs(),
		ripples: components.Transients{
			Policy: components.LinearDecay{},
			Cap:    cfg.Rain.RippleCap,
		},
		painter: transientPainter{
			color:     render.RgbRainRipple,
			lineWidth: constants.SimpleRippleLineWidth,
		},
		sparkles: components.SparkleSet{Active: -1},
	}
	w, h := surface.Size()
	f.Resize(w, h)
	return f
}

// SetSound attaches click cues, nil silences them
func (f *RainField) SetSound(s Sound) {
	f.sound = soundOrSilent(s)
}

// Init rebuilds one column per spacing slot and regenerates the sparkle set
func (f *RainField) Init(width int) {
	r := f.cfg.Rain
	count := int(math.Floor(float64(width) / r.ColumnSpacing))
	if count < 0 {
		count = 0
	}

	f.columns = f.columns[:0]
	for i := 0; i < count; i++ {
		col := components.RainColumn{
			X:          float64(i) * r.ColumnSpacing,
			Speed:      r.SpeedMin + f.rng.Float64()*(r.SpeedMax-r.SpeedMin),
			Length:     r.LengthMin + f.rng.Intn(r.LengthMax-r.LengthMin),
			Opacity:    r.OpacityMin + f.rng.Float64()*(r.OpacityMax-r.OpacityMin),
			GridOffset: f.rng.Intn(2),
		}
		col.FillChars(f.glyphs)
		// Stagger heads above the top edge so columns enter at different times
		col.Y = -f.rng.Float64() * float64(f.height)
		f.columns = append(f.columns, col)
	}

	f.sparkles.Points = f.sparkles.Points[:0]
	for i := 0; i < r.SparkleCount; i++ {
		f.sparkles.Points = append(f.sparkles.Points, components.Point{
			X: f.rng.Float64() * float64(width),
			Y: f.rng.Float64() * float64(f.height),
		})
	}
	f.sparkles.Active = -1
}

// Resize re-initializes columns and sparkles for the new surface size
// Live click ripples are kept
func (f *RainField) Resize(width, height int) {
	f.width, f.height = width, height
	f.Init(width)
}

// OnClick adds a simple ripple unless the population cap is reached
func (f *RainField) OnClick(x, y float64) {
	added := f.ripples.Add(components.Transient{
		X:         x,
		Y:         y,
		MaxRadius: f.cfg.Rain.RippleMaxRadius,
		MaxLife:   f.cfg.Rain.RippleMaxLife,
		Opacity:   1,
	})
	if added {
		f.sound.PlayClick()
	}
}

// Step advances ripples, columns and the sparkle highlight by one processed frame
func (f *RainField) Step(_ time.Time) {
	f.ripples.Step(0)

	cell := f.cfg.Rain.CellSize
	for i := range f.columns {
		col := &f.columns[i]
		col.Y += col.Speed
		if col.Y > float64(f.height)+float64(col.Length)*cell {
			f.respawn(col)
		}
	}

	f.frames++
	f.sparkles.Active = -1
	if n := len(f.sparkles.Points); n > 0 && f.frames%f.cfg.Rain.SparklePeriod == 0 {
		f.sparkles.Active = f.rng.Intn(n)
	}
}

// respawn recycles a column that left the bottom edge into a random slot above the top
func (f *RainField) respawn(col *components.RainColumn) {
	r := f.cfg.Rain
	if slots := int(float64(f.width) / r.ColumnSpacing); slots > 0 {
		col.X = float64(f.rng.Intn(slots)) * r.ColumnSpacing
	}
	col.Opacity = r.OpacityMin + f.rng.Float64()*(r.OpacityMax-r.OpacityMin)
	col.GridOffset = f.rng.Intn(2)
	col.FillChars(f.glyphs)
	col.Y = -float64(col.Length) * r.CellSize
}

// Render clears the surface and draws columns, ripples and the active sparkle
func (f *RainField) Render() {
	s := f.surface
	s.Clear(render.RgbRainBackground)

	cell := f.cfg.Rain.CellSize
	top, bottom := -cell, float64(f.height)
	for i := range f.columns {
		col := &f.columns[i]
		n := len(col.Chars)
		for j, r := range col.Chars {
			// Head is the last glyph, at Y
			y := col.Y - float64(n-1-j)*cell
			if y < top || y >= bottom {
				continue
			}
			alpha := col.Opacity * float64(j+1) / float64(n)
			s.DrawGlyph(r, col.X, y, render.RgbRainGlyph, alpha)
		}
	}

	f.painter.paint(s, &f.ripples, 1)

	if p, ok := f.sparkles.Current(); ok {
		s.FillRect(p.X, p.Y, constants.SparkleSize, constants.SparkleSize, render.RgbSparkle, 1)
	}
}

// Animating is always true; rain has no freeze input
func (f *RainField) Animating() bool { return true }

func (f *RainField) Name() string { return "rain" }

// Columns exposes the column population for inspection
func (f *RainField) Columns() []components.RainColumn { return f.columns }

// Ripples exposes the click ripple population for inspection
func (f *RainField) Ripples() []components.Transient { return f.ripples.Items }

// Sparkles exposes the sparkle set for inspection
func (f *RainField) Sparkles() *components.SparkleSet { return &f.sparkles }
