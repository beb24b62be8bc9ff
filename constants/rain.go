package constants

// Rain Column Ranges
// Speed, length and opacity are half-open ranges [min, max)
const (
	RainColumnSpacing = 16
	RainCellSize      = 16

	RainSpeedMin = 0.5
	RainSpeedMax = 1.3

	RainLengthMin = 12
	RainLengthMax = 20

	RainOpacityMin = 0.3
	RainOpacityMax = 1.0
)

// Sparkle Set
const (
	// SparkleCount is the fixed number of precomputed sparkle points
	SparkleCount = 20

	// SparklePeriod is the number of processed frames between highlights
	SparklePeriod = 30

	// SparkleSize is the side of the highlight square in pixels
	SparkleSize = 2
)

// Simple Ripple
const (
	// SimpleRippleCap is the hard population cap for click ripples in the rain field
	SimpleRippleCap = 5

	SimpleRippleMaxRadius = 100.0
	SimpleRippleMaxLife   = 40
	SimpleRippleLineWidth = 1.5
)

// RainGlyphs are the two alternating symbols of each column
var RainGlyphs = []rune{'0', '1'}
