package systems

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/backdrop/components"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/render"
)

var mountTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type frozenFlag struct{ frozen bool }

func (f *frozenFlag) Frozen() bool { return f.frozen }

func newTestRipple(t *testing.T, width, height int, seed int64) (*RippleField, *render.RecordingSurface, *frozenFlag) {
	t.Helper()
	rec := render.NewRecordingSurface(width, height)
	flag := &frozenFlag{}
	f := NewRippleField(rec, flag, config.Default(), rand.New(rand.NewSource(seed)), mountTime)
	return f, rec, flag
}

func inCenterBox(cfg *config.Config, x, y float64, w, h int) bool {
	p := cfg.Ripple
	return x >= p.AvoidMin*float64(w) && x <= p.AvoidMax*float64(w) &&
		y >= p.AvoidMin*float64(h) && y <= p.AvoidMax*float64(h)
}

func TestRippleClickCreatesOne(t *testing.T) {
	f, _, _ := newTestRipple(t, 800, 600, 1)
	sound := &countingSound{}
	f.SetSound(sound)

	f.OnClick(123, 45)

	items := f.Ripples()
	if len(items) != 1 {
		t.Fatalf("Expected exactly one ripple, got %d", len(items))
	}
	r := items[0]
	if r.X != 123 || r.Y != 45 {
		t.Errorf("Expected ripple at (123,45), got (%v,%v)", r.X, r.Y)
	}
	if r.Phase != components.PhaseExpand || r.Radius != 20 {
		t.Errorf("Expected expand at radius 20, got %s at %v", r.Phase, r.Radius)
	}
	if r.MaxRadius != 200 {
		t.Errorf("Expected max radius 25%% of 800, got %v", r.MaxRadius)
	}
	if r.Opacity < 0.6 || r.Opacity >= 1.0 {
		t.Errorf("Baseline opacity %v outside [0.6, 1.0)", r.Opacity)
	}
	if !r.StartedAt.Equal(mountTime) {
		t.Errorf("Expected click stamped with last frame time, got %v", r.StartedAt)
	}
	if sound.clicks != 1 {
		t.Errorf("Expected one click cue, got %d", sound.clicks)
	}
}

func TestRippleSpawnRandomBounded(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		avoidMin      float64
		avoidMax      float64
		wantSamples   int // 0 means any value in [1, 10]
	}{
		{"default box", 1280, 720, 0.3, 0.7, 0},
		{"box covers canvas", 1280, 720, 0, 1, 10},
		{"empty canvas", 0, 0, 0.3, 0.7, 10},
		{"tiny canvas", 1, 1, 0.3, 0.7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _, _ := newTestRipple(t, tt.width, tt.height, 11)
			f.cfg.Ripple.AvoidMin = tt.avoidMin
			f.cfg.Ripple.AvoidMax = tt.avoidMax

			for i := 0; i < 200; i++ {
				samples := f.SpawnRandom(mountTime)
				if samples < 1 || samples > 10 {
					t.Fatalf("Spawn drew %d samples", samples)
				}
				if tt.wantSamples > 0 && samples != tt.wantSamples {
					t.Fatalf("Expected %d samples, got %d", tt.wantSamples, samples)
				}
			}
			if got := len(f.Ripples()); got != 200 {
				t.Errorf("Expected 200 ripples, got %d", got)
			}
		})
	}
}

func TestRippleSpawnAvoidsCenter(t *testing.T) {
	f, _, _ := newTestRipple(t, 1280, 720, 5)
	for i := 0; i < 500; i++ {
		f.SpawnRandom(mountTime)
	}

	inside := 0
	for _, r := range f.Ripples() {
		if r.X < 0 || r.X >= 1280 || r.Y < 0 || r.Y >= 720 {
			t.Fatalf("Spawn (%v,%v) outside canvas", r.X, r.Y)
		}
		if inCenterBox(f.cfg, r.X, r.Y, 1280, 720) {
			inside++
		}
	}
	if inside > 2 {
		t.Errorf("Expected center box to be avoided, %d of 500 inside", inside)
	}
}

func TestRipplePhaseMonotonic(t *testing.T) {
	f, _, _ := newTestRipple(t, 400, 300, 1)
	f.OnClick(200, 150)

	prev := f.Ripples()[0]
	contractSeen, fadeSeen := false, false
	for step := 0; step < 10000 && len(f.Ripples()) > 0; step++ {
		// Holding now at mount time keeps the spawn timer idle
		f.Step(mountTime)
		if len(f.Ripples()) == 0 {
			break
		}
		cur := f.Ripples()[0]

		if cur.Phase < prev.Phase {
			t.Fatalf("Phase moved backward from %s to %s", prev.Phase, cur.Phase)
		}
		if cur.Phase == prev.Phase {
			switch cur.Phase {
			case components.PhaseExpand:
				if cur.Radius < prev.Radius {
					t.Fatalf("Radius shrank during expand: %v -> %v", prev.Radius, cur.Radius)
				}
			default:
				if cur.Radius > prev.Radius {
					t.Fatalf("Radius grew during %s: %v -> %v", cur.Phase, prev.Radius, cur.Radius)
				}
			}
		}
		if cur.Phase == components.PhaseContract && !contractSeen {
			contractSeen = true
			if cur.ContractStartRadius < cur.MaxRadius {
				t.Errorf("Contract started at %v below max %v", cur.ContractStartRadius, cur.MaxRadius)
			}
		}
		if cur.Phase == components.PhaseFade && !fadeSeen {
			fadeSeen = true
			if cur.FadeStartRadius > cur.ContractStartRadius*0.3 {
				t.Errorf("Fade started at %v above 30%% of %v", cur.FadeStartRadius, cur.ContractStartRadius)
			}
		}
		prev = cur
	}

	if !contractSeen || !fadeSeen {
		t.Errorf("Expected all phases, contract=%v fade=%v", contractSeen, fadeSeen)
	}
	if len(f.Ripples()) != 0 {
		t.Error("Expected ripple removed after fading")
	}
	if prev.Radius >= f.cfg.Ripple.MinFadeRadius+f.cfg.Ripple.Speed*f.cfg.Ripple.FadeFactor {
		t.Errorf("Ripple removed early at radius %v", prev.Radius)
	}
}

func TestRippleLiveSpeed(t *testing.T) {
	f, _, _ := newTestRipple(t, 800, 600, 1)
	f.OnClick(10, 10)

	f.Step(mountTime)
	if got := f.Ripples()[0].Radius; math.Abs(got-21.2) > 1e-9 {
		t.Errorf("Expected radius 21.2, got %v", got)
	}

	f.cfg.AdjustSpeed(1)
	f.Step(mountTime)
	if got := f.Ripples()[0].Radius; math.Abs(got-22.7) > 1e-9 {
		t.Errorf("Expected radius 22.7 after speed change, got %v", got)
	}
}

func TestRippleRenderRings(t *testing.T) {
	f, rec, _ := newTestRipple(t, 800, 600, 3)
	f.OnClick(100, 100)
	f.OnClick(300, 200)
	f.Step(mountTime)

	f.Render()

	if rec.Ops[0].Kind != render.OpClear || rec.Ops[0].Color != render.RgbRippleBackground {
		t.Fatalf("Expected frame to start with a clear, got %+v", rec.Ops[0])
	}
	if n := rec.Count(render.OpFillRing); n != 2 {
		t.Fatalf("Expected 2 rings, got %d", n)
	}

	ring := 0
	for _, op := range rec.Ops {
		if op.Kind != render.OpFillRing {
			continue
		}
		want := f.Alpha(ring) * f.cfg.Ripple.Opacity
		if len(op.Stops) != 3 {
			t.Fatalf("Expected 3 stops, got %d", len(op.Stops))
		}
		if op.Stops[0].Alpha != 0 {
			t.Errorf("Expected transparent center, got %v", op.Stops[0].Alpha)
		}
		if op.Stops[1].Offset != 0.7 || op.Stops[1].Alpha != 0.35*want {
			t.Errorf("Unexpected inner stop %+v", op.Stops[1])
		}
		if op.Stops[2].Offset != 1 || op.Stops[2].Alpha != want {
			t.Errorf("Expected rim alpha %v, got %+v", want, op.Stops[2])
		}
		if op.Radius != f.Ripples()[ring].Radius {
			t.Errorf("Ring radius %v does not match ripple %v", op.Radius, f.Ripples()[ring].Radius)
		}
		ring++
	}
}

func TestRippleAnimatingFollowsFreeze(t *testing.T) {
	f, _, flag := newTestRipple(t, 100, 100, 1)
	if !f.Animating() {
		t.Error("Expected animating when not frozen")
	}
	flag.frozen = true
	if f.Animating() {
		t.Error("Expected not animating when frozen")
	}
}

// rippleStage mounts a ripple field through the engine the way a host does
type rippleStage struct {
	rec   *render.RecordingSurface
	host  *engine.LoopHost
	clock *engine.MockClock
	state *engine.State
	stage *engine.Stage
	field *RippleField
	sound *countingSound
}

func newRippleStage(t *testing.T, width, height int, seed int64) *rippleStage {
	t.Helper()
	cfg := config.Default()
	rs := &rippleStage{
		rec:   render.NewRecordingSurface(width, height),
		host:  engine.NewLoopHost(),
		clock: engine.NewMockClock(mountTime),
		state: engine.NewState(false, false),
		sound: &countingSound{},
	}
	rng := rand.New(rand.NewSource(seed))
	rs.stage = engine.NewStage(engine.StageConfig{
		Canvas: render.NewCanvas(rs.rec, rs.rec),
		Host:   rs.host,
		Inputs: rs.state,
		Gate:   cfg.Frame.Gate,
		Light: func(s render.Surface, in engine.Inputs, now time.Time) engine.Field {
			rs.field = NewRippleField(s, in, cfg, rng, now)
			rs.field.SetSound(rs.sound)
			return rs.field
		},
	})
	rs.stage.Sync(rs.clock.Now())
	if rs.field == nil {
		t.Fatal("Expected ripple field mounted")
	}
	return rs
}

func (rs *rippleStage) frame(d time.Duration) time.Duration {
	now := rs.clock.Advance(d)
	rs.host.RunFrame(now)
	return now.Sub(mountTime)
}

func TestRippleBurstCycle(t *testing.T) {
	rs := newRippleStage(t, 320, 200, 42)
	interval := 7000 * time.Millisecond

	var elapsed time.Duration
	for elapsed < 2000*time.Millisecond {
		elapsed = rs.frame(16 * time.Millisecond)
		if elapsed < 2000*time.Millisecond && len(rs.field.Ripples()) != 0 {
			t.Fatalf("Unexpected spawn at %v", elapsed)
		}
	}

	burst := rs.field.Ripples()
	if n := len(burst); n < 4 || n > 6 {
		t.Fatalf("Expected burst of 4-6 at %v, got %d", elapsed, n)
	}
	for _, r := range burst {
		if r.Radius != 20 || r.Phase != components.PhaseExpand {
			t.Errorf("Expected fresh ripple at radius 20 expand, got %v %s", r.Radius, r.Phase)
		}
	}
	if rs.sound.bursts != 1 {
		t.Errorf("Expected one burst cue, got %d", rs.sound.bursts)
	}

	var emptyAt time.Duration
	for elapsed < 30*time.Second {
		elapsed = rs.frame(16 * time.Millisecond)
		if len(rs.field.Ripples()) == 0 {
			emptyAt = elapsed
			break
		}
	}
	if emptyAt == 0 {
		t.Fatal("Burst never faded out")
	}

	for elapsed < emptyAt+interval+time.Second {
		elapsed = rs.frame(16 * time.Millisecond)
		if len(rs.field.Ripples()) > 0 {
			break
		}
	}
	if n := len(rs.field.Ripples()); n < 4 || n > 6 {
		t.Fatalf("Expected a new burst after emptying at %v, got %d ripples at %v", emptyAt, n, elapsed)
	}
	if elapsed-emptyAt > interval {
		t.Errorf("New burst at %v more than one interval after empty at %v", elapsed, emptyAt)
	}
}

func TestRippleFreezeHoldsState(t *testing.T) {
	rs := newRippleStage(t, 320, 200, 7)
	for i := 0; i < 140; i++ {
		rs.frame(16 * time.Millisecond)
	}
	if len(rs.field.Ripples()) == 0 {
		t.Fatal("Expected ripples before freezing")
	}

	rs.state.SetFrozen(true)
	rs.frame(16 * time.Millisecond)

	type snapshot struct {
		radius float64
		phase  components.Phase
		alpha  float64
	}
	take := func() []snapshot {
		var out []snapshot
		for i, r := range rs.field.Ripples() {
			out = append(out, snapshot{r.Radius, r.Phase, rs.field.Alpha(i)})
		}
		return out
	}
	before := take()
	presents := rs.rec.Presents

	for i := 0; i < 600; i++ {
		rs.frame(16 * time.Millisecond)
	}

	after := take()
	if len(after) != len(before) {
		t.Fatalf("Population changed while frozen: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Ripple %d changed while frozen: %+v -> %+v", i, before[i], after[i])
		}
	}
	if rs.rec.Presents-presents != 600 {
		t.Errorf("Expected rendering to continue, got %d presents", rs.rec.Presents-presents)
	}
	rings := 0
	for _, op := range rs.rec.LastOps {
		if op.Kind == render.OpFillRing {
			rings++
		}
	}
	if rings != len(before) {
		t.Errorf("Expected %d visible rings while frozen, got %d", len(before), rings)
	}

	rs.state.SetFrozen(false)
	rs.frame(16 * time.Millisecond)
	if rs.field.Ripples()[0].Radius == before[0].radius {
		t.Error("Expected motion to resume after unfreezing")
	}
}

func TestRippleFrameGate(t *testing.T) {
	rs := newRippleStage(t, 320, 200, 1)
	rs.stage.Click(160, 100)

	radius := rs.field.Ripples()[0].Radius
	for i := 1; i <= 20; i++ {
		rs.frame(8 * time.Millisecond)
		cur := rs.field.Ripples()[0].Radius
		processed := i%2 == 1
		if processed && cur == radius {
			t.Errorf("frame %d at %dms: expected one update", i, i*8)
		}
		if !processed && cur != radius {
			t.Errorf("frame %d at %dms: state changed inside the gate", i, i*8)
		}
		if processed && cur-radius > 1.2+1e-9 {
			t.Errorf("frame %d: more than one update, %v -> %v", i, radius, cur)
		}
		radius = cur
	}
}
