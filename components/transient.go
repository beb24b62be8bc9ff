package components

import "time"

// Phase is a lifecycle stage of a phased ripple
// Transitions only move forward: expand, contract, fade, removed
type Phase uint8

const (
	PhaseExpand Phase = iota
	PhaseContract
	PhaseFade
)

func (p Phase) String() string {
	switch p {
	case PhaseExpand:
		return "expand"
	case PhaseContract:
		return "contract"
	case PhaseFade:
		return "fade"
	default:
		return "unknown"
	}
}

// Transient is a short-lived radial effect centered on a point
// Life/MaxLife drive linear decay; Phase and the recorded radii drive the three-phase policy
type Transient struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64

	Phase               Phase
	ContractStartRadius float64
	FadeStartRadius     float64

	Life    int
	MaxLife int

	// Opacity is the per-entity baseline in [0, 1]
	Opacity   float64
	StartedAt time.Time
}

// PolicyKind selects how a transient population is drawn
type PolicyKind uint8

const (
	// KindLinear draws a stroked circle
	KindLinear PolicyKind = iota
	// KindPhased draws a gradient ring
	KindPhased
)

// Policy advances and shades transients of one variant
type Policy interface {
	Kind() PolicyKind

	// Advance moves t one processed frame forward; false means remove
	Advance(t *Transient, speed float64) bool

	// Alpha returns the draw alpha from the current state
	Alpha(t *Transient) float64
}

// LinearDecay grows the radius by MaxRadius/MaxLife per frame and fades linearly with life
type LinearDecay struct{}

func (LinearDecay) Kind() PolicyKind { return KindLinear }

func (LinearDecay) Advance(t *Transient, _ float64) bool {
	if t.MaxLife <= 0 {
		return false
	}
	t.Radius += t.MaxRadius / float64(t.MaxLife)
	t.Life++
	return t.Life < t.MaxLife
}

func (LinearDecay) Alpha(t *Transient) float64 {
	if t.MaxLife <= 0 {
		return 0
	}
	return t.Opacity * clamp01(1-float64(t.Life)/float64(t.MaxLife))
}

// ThreePhase expands to MaxRadius, contracts to ContractRatio of that, then fades out
type ThreePhase struct {
	ContractRatio  float64
	ContractFactor float64
	FadeFactor     float64
	MinRadius      float64
	MinFadeRadius  float64
}

func (ThreePhase) Kind() PolicyKind { return KindPhased }

func (p ThreePhase) Advance(t *Transient, speed float64) bool {
	switch t.Phase {
	case PhaseExpand:
		if t.Radius >= t.MaxRadius {
			t.Phase = PhaseContract
			t.ContractStartRadius = t.Radius
		}
	case PhaseContract:
		if t.Radius <= t.ContractStartRadius*p.ContractRatio {
			t.Phase = PhaseFade
			t.FadeStartRadius = t.Radius
		}
	}

	switch t.Phase {
	case PhaseExpand:
		t.Radius += speed
	case PhaseContract:
		t.Radius -= speed * p.ContractFactor
	case PhaseFade:
		t.Radius -= speed * p.FadeFactor
	}

	if t.Phase == PhaseFade {
		return t.Radius >= p.MinFadeRadius
	}
	return t.Radius >= p.MinRadius
}

// Alpha is continuous across phases: expand dims to 0.7, contract recovers to 1, fade drops to 0
func (p ThreePhase) Alpha(t *Transient) float64 {
	switch t.Phase {
	case PhaseExpand:
		progress := 0.0
		if t.MaxRadius > 0 {
			progress = clamp01(t.Radius / t.MaxRadius)
		}
		return t.Opacity * (1 - progress*0.3)
	case PhaseContract:
		span := t.ContractStartRadius * (1 - p.ContractRatio)
		progress := 0.0
		if span > 0 {
			progress = clamp01((t.ContractStartRadius - t.Radius) / span)
		}
		return t.Opacity * (0.7 + progress*0.3)
	case PhaseFade:
		span := t.FadeStartRadius - p.MinFadeRadius
		progress := 1.0
		if span > 0 {
			progress = clamp01((t.FadeStartRadius - t.Radius) / span)
		}
		return t.Opacity * (1 - progress)
	default:
		return 0
	}
}

// Transients is a population of one transient variant owned by a single field
type Transients struct {
	Items  []Transient
	Policy Policy
	Cap    int // Hard population cap, 0 for unbounded
}

// Add appends t unless the cap is reached
func (p *Transients) Add(t Transient) bool {
	if p.Cap > 0 && len(p.Items) >= p.Cap {
		return false
	}
	p.Items = append(p.Items, t)
	return true
}

// Step advances every transient and compacts out removed ones in place
// Returns the number removed
func (p *Transients) Step(speed float64) int {
	kept := p.Items[:0]
	for i := range p.Items {
		t := p.Items[i]
		if p.Policy.Advance(&t, speed) {
			kept = append(kept, t)
		}
	}
	removed := len(p.Items) - len(kept)
	// Zero the dropped tail
	clear(p.Items[len(kept):])
	p.Items = kept
	return removed
}

// Len returns the live population
func (p *Transients) Len() int {
	return len(p.Items)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
