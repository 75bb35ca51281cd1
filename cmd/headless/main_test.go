package main

import (
	"bytes"
	"io"
	"slices"
	"strings"
	"testing"

	"boids/internal/config"
	"boids/internal/input"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BOIDS_TARGET_FPS", "BOIDS_SCENE", "BOIDS_LOG_LEVEL", "BOIDS_SEED"} {
		t.Setenv(key, "")
	}
}

func TestIdleRunPrintsStartingGrid(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--frames", "5", "--fps", "1000", "--idle", "--param", "cols=2", "--param", "rows=1"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "scene boids: 6 frames, 6 presented") {
		t.Fatalf("summary missing from output:\n%s", got)
	}
	for _, want := range []string{"   0    40    40", "   1    60    40"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRejectsNonPositiveFrames(t *testing.T) {
	clearEnv(t)
	cmd := newRootCmd(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--frames", "0"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for --frames 0")
	}
}

// tracingSource records every event it hands out.
type tracingSource struct {
	src   input.Source
	trace []input.Event
}

func (s *tracingSource) Poll(dst []input.Event) []input.Event {
	n := len(dst)
	dst = s.src.Poll(dst)
	s.trace = append(s.trace, dst[n:]...)
	return dst
}

func TestSeedReplaysSameInput(t *testing.T) {
	cfg := config.Default()
	cfg.TargetFPS = 1000
	cfg.Logging.Level = "error"

	a := &tracingSource{src: input.RandomScript(7, 40)}
	ra, err := run(cfg, a, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	b := &tracingSource{src: input.RandomScript(7, 40)}
	rb, err := run(cfg, b, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.trace) == 0 {
		t.Fatal("random script produced no events")
	}
	if !slices.Equal(a.trace, b.trace) {
		t.Fatalf("runs with the same seed saw different input:\n%v\n%v", a.trace, b.trace)
	}
	if ra.frames != 41 || ra.draws != 41 || rb.frames != 41 {
		t.Fatalf("ran %d and %d frames with %d presents, want 41", ra.frames, rb.frames, ra.draws)
	}
	if len(ra.centers) != 25 || len(rb.centers) != 25 {
		t.Fatalf("centers = %d and %d, want 25", len(ra.centers), len(rb.centers))
	}
}
