package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/engine"
	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/pad"
)

const demo = `
name: demo
description: tap, drag and reset
steps:
  - action: tap
    at: {x: 0, y: 0}
  - action: drag
    path:
      - {x: 0, y: 0}
      - {x: 16, y: 16}
      - {x: 32, y: 32}
  - action: moveto
    col: 11
    row: 1
  - action: reset
`

func startRuntime(t *testing.T) *engine.Runtime {
	t.Helper()
	rt, err := engine.New(engine.Config{
		Spec:     geom.NewGridSpec(11, 10, 5, true, false),
		Initial:  geom.Cell{Col: 3, Row: 3},
		Platform: pad.Pointer,
		Anim:     anim.DefaultConfig(),
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	go rt.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-rt.Stopped()
	})
	return rt
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := os.WriteFile(path, []byte(demo), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "demo" || len(sc.Steps) != 4 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	if len(sc.Steps[1].Path) != 3 {
		t.Errorf("expected three drag points, got %d", len(sc.Steps[1].Path))
	}
}

func TestRunScenario(t *testing.T) {
	rt := startRuntime(t)
	initial := rt.Coordinate()

	sc, err := ParseScenario([]byte(demo))
	if err != nil {
		t.Fatal(err)
	}

	var seen int
	results, err := Run(context.Background(), rt, sc, func(Result) { seen++ })
	if err != nil {
		t.Fatal(err)
	}
	if seen != len(sc.Steps) || len(results) != len(sc.Steps) {
		t.Fatalf("expected one result per step, got %d/%d", seen, len(results))
	}

	want := []geom.Cell{
		{Col: 1, Row: 1},
		{Col: 4, Row: 4},
		{Col: 11, Row: 1},
		{Col: 9, Row: 3},
	}
	for i, res := range results {
		if res.Cell != want[i] {
			t.Errorf("step %d (%s): expected %+v, got %+v", res.Index, res.Action, want[i], res.Cell)
		}
	}
	if results[3].Coordinate != initial {
		t.Errorf("expected reset to restore %+v, got %+v", initial, results[3].Coordinate)
	}
}

func TestStepErrors(t *testing.T) {
	tests := []struct {
		step   Step
		target error
	}{
		{Step{Action: "wiggle"}, ErrUnknownStep},
		{Step{Action: "tap"}, ErrInvalidStep},
		{Step{Action: "drag", Path: []Point{{X: 1, Y: 1}}}, ErrInvalidStep},
	}
	for _, tt := range tests {
		if _, err := tt.step.Commands(); !errors.Is(err, tt.target) {
			t.Errorf("%s: expected %v, got %v", tt.step.Action, tt.target, err)
		}
	}

	if _, err := ParseScenario([]byte("steps:\n  - action: hop\n")); !errors.Is(err, ErrUnknownStep) {
		t.Errorf("expected parse to reject unknown step, got %v", err)
	}
}
