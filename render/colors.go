package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Dark theme (rain field)
var (
	RgbRainBackground = mustHex("#0b0f14") // Near-black slate
	RgbRainGlyph      = mustHex("#39ff88") // Phosphor green
	RgbRainRipple     = mustHex("#7fffd4") // Aquamarine
	RgbSparkle        = mustHex("#ffffff") // White
)

// Light theme (ripple field)
var (
	RgbRippleBackground = mustHex("#f5f7fa") // Paper white
	RgbRippleTint       = mustHex("#3b82f6") // Soft blue
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad palette color " + s)
	}
	return c
}

// ToTcell converts an engine color to a terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
