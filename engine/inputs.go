package engine

// Inputs are the external flags the engine reads but never writes
type Inputs interface {
	DarkMode() bool
	Frozen() bool
}

// State is the host-owned Inputs implementation
type State struct {
	dark   bool
	frozen bool
}

// NewState creates inputs with the given initial flags
func NewState(dark, frozen bool) *State {
	return &State{dark: dark, frozen: frozen}
}

func (s *State) DarkMode() bool { return s.dark }
func (s *State) Frozen() bool   { return s.frozen }

func (s *State) SetDarkMode(dark bool) { s.dark = dark }
func (s *State) SetFrozen(frozen bool) { s.frozen = frozen }

// ToggleDarkMode flips the theme and returns the new value
func (s *State) ToggleDarkMode() bool {
	s.dark = !s.dark
	return s.dark
}

// ToggleFrozen flips the freeze flag and returns the new value
func (s *State) ToggleFrozen() bool {
	s.frozen = !s.frozen
	return s.frozen
}
