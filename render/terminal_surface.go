package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/backdrop/constants"
)

// termCell is one composited terminal cell
type termCell struct {
	r  rune
	fg colorful.Color
	bg colorful.Color
}

// TerminalSurface draws into a tcell screen
// One cell spans CellWidth x CellHeight surface pixels; shapes are rasterized at cell centers
type TerminalSurface struct {
	resizeListeners

	screen tcell.Screen
	cols   int
	rows   int
	cells  []termCell
}

// NewTerminalSurface wraps an initialized screen; the backing store is empty until SetSize
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{screen: screen}
}

// Size returns the backing store in surface pixels
func (s *TerminalSurface) Size() (int, int) {
	return s.cols * constants.CellWidth, s.rows * constants.CellHeight
}

// SetSize reallocates the cell buffer, reusing capacity
func (s *TerminalSurface) SetSize(width, height int) {
	cols := max(0, width/constants.CellWidth)
	rows := max(0, height/constants.CellHeight)
	size := cols * rows
	if cap(s.cells) < size {
		s.cells = make([]termCell, size)
	} else {
		s.cells = s.cells[:size]
	}
	s.cols, s.rows = cols, rows
}

// ViewportSize returns the current screen in surface pixels
func (s *TerminalSurface) ViewportSize() (int, int) {
	cols, rows := s.screen.Size()
	return cols * constants.CellWidth, rows * constants.CellHeight
}

// Origin places pointer cells at their centers
func (s *TerminalSurface) Origin() (float64, float64) {
	return -0.5, -0.5
}

// Scale converts pointer cells to surface pixels
func (s *TerminalSurface) Scale() (float64, float64) {
	return constants.CellWidth, constants.CellHeight
}

func (s *TerminalSurface) Clear(bg colorful.Color) {
	if len(s.cells) == 0 {
		return
	}
	s.cells[0] = termCell{r: ' ', fg: bg, bg: bg}
	for filled := 1; filled < len(s.cells); filled *= 2 {
		copy(s.cells[filled:], s.cells[:filled])
	}
}

// cellIndex maps a surface pixel to a cell index
func (s *TerminalSurface) cellIndex(x, y float64) (int, bool) {
	cx := int(math.Floor(x / constants.CellWidth))
	cy := int(math.Floor(y / constants.CellHeight))
	if cx < 0 || cx >= s.cols || cy < 0 || cy >= s.rows {
		return 0, false
	}
	return cy*s.cols + cx, true
}

func (s *TerminalSurface) DrawGlyph(r rune, x, y float64, fg colorful.Color, alpha float64) {
	// Sample the glyph at its cell center
	idx, ok := s.cellIndex(x+constants.CellWidth/2, y+constants.CellHeight/2)
	if !ok {
		return
	}
	width := runewidth.RuneWidth(r)
	if width == 0 {
		return
	}
	cell := &s.cells[idx]
	cell.r = r
	cell.fg = cell.bg.BlendRgb(fg, clamp01(alpha))

	// Wide glyph claims the next cell as continuation
	if width == 2 && (idx+1)%s.cols != 0 {
		s.cells[idx+1].r = 0
	}
}

// blendBg composites c over the cell background
func (s *TerminalSurface) blendBg(idx int, c colorful.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	cell := &s.cells[idx]
	cell.bg = cell.bg.BlendRgb(c, clamp01(alpha))
	if cell.r == ' ' {
		cell.fg = cell.bg
	}
}

// cellRange returns the cell bounds covering a pixel box, clipped to the screen
func (s *TerminalSurface) cellRange(x0, y0, x1, y1 float64) (cx0, cy0, cx1, cy1 int) {
	cx0 = max(0, int(math.Floor(x0/constants.CellWidth)))
	cy0 = max(0, int(math.Floor(y0/constants.CellHeight)))
	cx1 = min(s.cols-1, int(math.Floor(x1/constants.CellWidth)))
	cy1 = min(s.rows-1, int(math.Floor(y1/constants.CellHeight)))
	return
}

// forCells visits every cell whose center lies inside the circle bounding box
func (s *TerminalSurface) forCells(x, y, reach float64, fn func(idx int, dist float64)) {
	cx0, cy0, cx1, cy1 := s.cellRange(x-reach, y-reach, x+reach, y+reach)
	for cy := cy0; cy <= cy1; cy++ {
		py := float64(cy)*constants.CellHeight + constants.CellHeight/2
		for cx := cx0; cx <= cx1; cx++ {
			px := float64(cx)*constants.CellWidth + constants.CellWidth/2
			fn(cy*s.cols+cx, math.Hypot(px-x, py-y))
		}
	}
}

func (s *TerminalSurface) StrokeCircle(x, y, radius, lineWidth float64, c colorful.Color, alpha float64) {
	// Band at least half a cell wide so thin strokes stay visible
	band := max(lineWidth/2, constants.CellWidth/2)
	s.forCells(x, y, radius+band, func(idx int, dist float64) {
		if math.Abs(dist-radius) <= band {
			s.blendBg(idx, c, alpha)
		}
	})
}

func (s *TerminalSurface) FillRect(x, y, w, h float64, c colorful.Color, alpha float64) {
	cx0, cy0, cx1, cy1 := s.cellRange(x, y, x+w, y+h)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			s.blendBg(cy*s.cols+cx, c, alpha)
		}
	}
}

func (s *TerminalSurface) FillRing(x, y, radius float64, c colorful.Color, stops []RingStop) {
	if radius <= 0 {
		return
	}
	s.forCells(x, y, radius, func(idx int, dist float64) {
		if dist <= radius {
			s.blendBg(idx, c, RingAlpha(stops, dist/radius))
		}
	})
}

// Present writes the composited cells to the screen
func (s *TerminalSurface) Present() error {
	for cy := 0; cy < s.rows; cy++ {
		for cx := 0; cx < s.cols; cx++ {
			cell := s.cells[cy*s.cols+cx]
			if cell.r == 0 {
				continue
			}
			style := tcell.StyleDefault.Foreground(ToTcell(cell.fg)).Background(ToTcell(cell.bg))
			s.screen.SetContent(cx, cy, cell.r, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// CellAt returns the composited cell for tests and diagnostics
func (s *TerminalSurface) CellAt(cx, cy int) (r rune, fg, bg colorful.Color, ok bool) {
	if cx < 0 || cx >= s.cols || cy < 0 || cy >= s.rows {
		return 0, colorful.Color{}, colorful.Color{}, false
	}
	cell := s.cells[cy*s.cols+cx]
	return cell.r, cell.fg, cell.bg, true
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
