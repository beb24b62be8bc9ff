package components

// Point is a surface position in pixels
type Point struct {
	X, Y float64
}

// RainColumn is a vertical stream of falling glyphs
// Y is the head position; the tail extends Length cells upward
// Invariant: len(Chars) == Length
type RainColumn struct {
	X          float64
	Y          float64
	Speed      float64
	Length     int
	Chars      []rune
	Opacity    float64
	GridOffset int // Alternation phase of the two glyphs, 0 or 1
}

// FillChars regenerates the glyph sequence for the current length and offset
// Reuses the backing array when it is large enough
func (c *RainColumn) FillChars(glyphs []rune) {
	if cap(c.Chars) < c.Length {
		c.Chars = make([]rune, c.Length)
	} else {
		c.Chars = c.Chars[:c.Length]
	}
	if len(glyphs) == 0 {
		return
	}
	for i := range c.Chars {
		c.Chars[i] = glyphs[(i+c.GridOffset)%len(glyphs)]
	}
}

// SparkleSet is a fixed array of precomputed points read cyclically
// Active is the index highlighted this frame, -1 for none
type SparkleSet struct {
	Points []Point
	Active int
}

// Current returns the highlighted point, if any
func (s *SparkleSet) Current() (Point, bool) {
	if s.Active < 0 || s.Active >= len(s.Points) {
		return Point{}, false
	}
	return s.Points[s.Active], true
}
