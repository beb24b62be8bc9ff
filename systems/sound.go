package systems

// Sound receives cues from field events
// Implementations must not block the frame loop
type Sound interface {
	PlayClick()
	PlayBurst()
}

type silentSound struct{}

func (silentSound) PlayClick() {}
func (silentSound) PlayBurst() {}

func soundOrSilent(s Sound) Sound {
	if s == nil {
		return silentSound{}
	}
	return s
}
