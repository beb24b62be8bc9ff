package engine

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/backdrop/render"
)

// StageConfig wires a stage to its host and field factories
type StageConfig struct {
	Canvas *render.Canvas
	Host   Host
	Inputs Inputs
	Gate   time.Duration

	// Dark is mounted when Inputs.DarkMode is true, Light otherwise
	Dark  FieldFactory
	Light FieldFactory
}

// Stage mounts exactly one field at a time according to the theme flag
// A theme change tears the mounted field down completely before the other is built
type Stage struct {
	cfg StageConfig

	field     Field
	scheduler *FrameScheduler
	mounted   bool
	dark      bool
	mountID   uuid.UUID
	closed    bool
}

// NewStage creates a stage with nothing mounted; call Sync to mount
func NewStage(cfg StageConfig) *Stage {
	return &Stage{cfg: cfg}
}

// Sync mounts the field selected by the theme flag, replacing a mismatched one
func (s *Stage) Sync(now time.Time) {
	if s.closed {
		return
	}
	dark := s.cfg.Inputs.DarkMode()
	if s.mounted && s.dark == dark {
		return
	}
	s.unmount()
	s.mount(dark, now)
}

func (s *Stage) mount(dark bool, now time.Time) {
	factory := s.cfg.Light
	if dark {
		factory = s.cfg.Dark
	}
	if factory == nil || s.cfg.Canvas == nil {
		return
	}

	if !s.cfg.Canvas.Mount(s.resize) {
		log.Printf("stage: no usable canvas, staying inert")
		return
	}

	field := factory(s.cfg.Canvas.Surface(), s.cfg.Inputs, now)
	if field == nil {
		s.cfg.Canvas.Teardown()
		return
	}

	s.field = field
	s.dark = dark
	s.mounted = true
	s.mountID = newMountID()
	s.scheduler = NewFrameScheduler(s.cfg.Host, s.cfg.Gate, s.frame)
	s.scheduler.Start()

	w, h := s.cfg.Canvas.Size()
	log.Printf("stage: mounted %s field id=%s size=%dx%d", field.Name(), s.mountID, w, h)
}

func (s *Stage) unmount() {
	if !s.mounted {
		return
	}
	s.scheduler.Stop()
	s.cfg.Canvas.Teardown()
	log.Printf("stage: unmounted %s field id=%s frames=%d", s.field.Name(), s.mountID, s.scheduler.Frames())

	s.field = nil
	s.scheduler = nil
	s.mounted = false
	s.mountID = uuid.Nil
}

func (s *Stage) frame(now time.Time) {
	if s.field.Animating() {
		s.field.Step(now)
	}
	s.field.Render()
	if err := s.cfg.Canvas.Surface().Present(); err != nil {
		log.Printf("stage: present failed, frame dropped: %v", err)
	}
}

func (s *Stage) resize(width, height int) {
	if s.field != nil {
		s.field.Resize(width, height)
	}
}

// Click routes a host pointer click to the mounted field
func (s *Stage) Click(clientX, clientY float64) {
	if s.field == nil {
		return
	}
	x, y, ok := s.cfg.Canvas.ToLocal(clientX, clientY)
	if !ok {
		return
	}
	s.field.OnClick(x, y)
}

// Teardown releases the mounted field and stops accepting Sync, safe to call repeatedly
func (s *Stage) Teardown() {
	s.unmount()
	s.closed = true
}

// Field returns the mounted field, nil when inert
func (s *Stage) Field() Field {
	return s.field
}

// Scheduler returns the scheduler of the mounted field, nil when inert
func (s *Stage) Scheduler() *FrameScheduler {
	return s.scheduler
}

// MountID identifies the current mount in log lines
func (s *Stage) MountID() uuid.UUID {
	return s.mountID
}

func newMountID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
