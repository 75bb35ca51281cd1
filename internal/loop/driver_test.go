package loop

import (
	"slices"
	"testing"

	"boids/internal/core"
	"boids/internal/input"
	"boids/internal/logging"
	"boids/internal/render"
)

type traceScene struct {
	log    *[]string
	frames []core.Frame
	closed bool
}

func (s *traceScene) Name() string { return "trace" }

func (s *traceScene) Update(f *core.Frame) {
	*s.log = append(*s.log, "update")
	s.frames = append(s.frames, *f)
}

func (s *traceScene) Draw(r render.Surface) {
	*s.log = append(*s.log, "draw")
	r.Clear(render.Black)
}

func (s *traceScene) Close() { s.closed = true }

type traceListener struct {
	input.NopListener
	log *[]string
}

func (l *traceListener) OnKeyDown(k input.Key, _ input.Mod) {
	*l.log = append(*l.log, "key:"+k.String())
}

func newTestDriver(t *testing.T, src input.Source, surface render.Surface) (*Driver, *traceScene, *[]string) {
	t.Helper()
	var log []string
	clock, err := core.NewClock(1000)
	if err != nil {
		t.Fatal(err)
	}
	events := input.NewBroadcaster(src)
	events.Subscribe(&traceListener{log: &log})
	scene := &traceScene{log: &log}
	return NewDriver(clock, events, scene, surface, logging.Discard()), scene, &log
}

func TestFrameOrder(t *testing.T) {
	src := input.NewScript(
		[]input.Event{input.KeyDown(input.KeyW, 0)},
		nil,
		[]input.Event{input.KeyDown(input.KeyS, 0), input.Quit()},
	)
	rec := render.NewRecorder(100, 100)
	d, _, log := newTestDriver(t, src, rec)

	d.Run()

	want := []string{
		"key:w", "update", "draw",
		"update", "draw",
		"key:s", "update", "draw",
	}
	if !slices.Equal(*log, want) {
		t.Fatalf("frame trace = %v, want %v", *log, want)
	}
	if d.State() != Stopped {
		t.Fatalf("state = %v, want stopped", d.State())
	}
	if d.Frames() != 3 {
		t.Fatalf("frames = %d, want 3", d.Frames())
	}
	if rec.Presents != 3 {
		t.Fatalf("presents = %d, want 3", rec.Presents)
	}
}

func TestFrameRequiresActivation(t *testing.T) {
	d, scene, log := newTestDriver(t, input.NewScript(), nil)
	if d.State() != Inactive {
		t.Fatalf("initial state = %v", d.State())
	}
	if d.Frame() {
		t.Fatal("Frame on an inactive driver reported running")
	}
	if len(*log) != 0 || len(scene.frames) != 0 {
		t.Fatalf("inactive driver ran a frame: %v", *log)
	}

	d.Activate()
	if !d.Running() {
		t.Fatalf("state after Activate = %v", d.State())
	}
	if !d.Frame() {
		t.Fatal("frame without quit should keep running")
	}
}

func TestUpdateSeesHeldKeysAndDt(t *testing.T) {
	src := input.NewScript(
		[]input.Event{input.KeyDown(input.KeyD, 0)},
		nil,
	)
	src.QuitAtEnd = true
	d, scene, _ := newTestDriver(t, src, nil)
	d.Run()

	if len(scene.frames) != 3 {
		t.Fatalf("scene saw %d frames, want 3", len(scene.frames))
	}
	first := scene.frames[0]
	if first.Dt != 1 {
		t.Fatalf("first frame dt = %v, want 1", first.Dt)
	}
	if !first.Keys.Pressed(input.KeyD) {
		t.Fatal("key pressed this frame not visible to update")
	}
	for i, f := range scene.frames {
		if f.Index != uint64(i) {
			t.Fatalf("frame %d has index %d", i, f.Index)
		}
		if f.Dt < 0 {
			t.Fatalf("frame %d dt %v negative", i, f.Dt)
		}
	}
	// Pacing sleeps at least the target, so the measured ratio is >= 1.
	if d.Dt() < 1 {
		t.Fatalf("dt after paced frames = %v, want >= 1", d.Dt())
	}
}

func TestStopEndsAfterCurrentFrame(t *testing.T) {
	d, scene, _ := newTestDriver(t, input.NewScript(), nil)
	d.Activate()
	d.Frame()
	d.Stop()
	if d.Frame() {
		t.Fatal("driver still running after Stop")
	}
	if len(scene.frames) != 2 {
		t.Fatalf("scene saw %d frames, want 2", len(scene.frames))
	}
	d.Activate()
	if d.State() != Stopped {
		t.Fatal("a stopped driver must not be reactivated")
	}
}

func TestAltF4Terminates(t *testing.T) {
	src := input.NewScript([]input.Event{input.KeyDown(input.KeyF4, input.ModAlt)})
	d, _, _ := newTestDriver(t, src, nil)
	d.Run()
	if d.Frames() != 1 {
		t.Fatalf("frames = %d, want 1", d.Frames())
	}
}

func TestDriversAreIndependent(t *testing.T) {
	a, _, _ := newTestDriver(t, input.NewScript([]input.Event{input.Quit()}), nil)
	b, _, _ := newTestDriver(t, input.NewScript([]input.Event{input.KeyDown(input.KeyW, 0)}), nil)
	a.Activate()
	b.Activate()

	a.Frame()
	b.Frame()

	if a.Running() {
		t.Fatal("driver a should have stopped on quit")
	}
	if !b.Running() {
		t.Fatal("quit in driver a leaked into driver b")
	}
	if a.events.Keys().Pressed(input.KeyW) {
		t.Fatal("key state leaked between drivers")
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	clock, err := core.NewClock(1000)
	if err != nil {
		t.Fatal(err)
	}
	var log []string
	events := input.NewBroadcaster(input.NewScript([]input.Event{input.Quit()}))
	d := NewDriver(clock, events, &traceScene{log: &log}, nil, nil)

	d.Run()

	if d.State() != Stopped || d.Frames() != 1 {
		t.Fatalf("state %v after %d frames, want stopped after 1", d.State(), d.Frames())
	}
}
