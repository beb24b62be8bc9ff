package constants

import "time"

// Phased Ripple Geometry
const (
	// RippleInitialRadius is the starting radius of every phased ripple
	RippleInitialRadius = 20.0

	// RippleMaxRadiusFraction is the max radius as a fraction of max(width, height)
	RippleMaxRadiusFraction = 0.25
)

// Phased Ripple Motion
const (
	// RippleSpeed is the default per-frame expansion in pixels (documented range 1.0-1.5)
	RippleSpeed    = 1.2
	RippleSpeedMin = 1.0
	RippleSpeedMax = 1.5

	// RippleContractRatio is the fraction of the contract start radius that ends contraction
	RippleContractRatio = 0.3

	// RippleContractFactor and RippleFadeFactor scale speed in the later phases
	RippleContractFactor = 0.67
	RippleFadeFactor     = 0.42

	// RippleMinRadius prunes non-fade ripples, RippleMinFadeRadius prunes fading ones
	RippleMinRadius     = 5.0
	RippleMinFadeRadius = 2.0
)

// Phased Ripple Opacity
const (
	// RippleOpacity is the global scale applied to every ripple baseline
	RippleOpacity = 0.8

	// RippleOpacityMin and RippleOpacityMax bound the random per-ripple baseline
	RippleOpacityMin = 0.6
	RippleOpacityMax = 1.0
)

// Spawn Scheduling
const (
	RippleSpawnInterval = 7 * time.Second
	RippleInitialDelay  = 2 * time.Second

	// RippleBurstBase plus random(0..RippleBurstExtra) ripples per burst
	RippleBurstBase  = 4
	RippleBurstExtra = 2
)

// Center-Avoidance Box
const (
	RippleAvoidMin = 0.3
	RippleAvoidMax = 0.7

	// RippleMaxSamples bounds spawn position resampling
	RippleMaxSamples = 10
)
