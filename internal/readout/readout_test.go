package readout

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/gridpad/internal/pad"
)

func TestValue(t *testing.T) {
	temp := Temperature()
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0.1},
		{0.5, 1.05},
		{1, 2.0},
	}
	for _, tt := range tests {
		if got := temp.Value(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Value(%f) = %f, want %f", tt.t, got, tt.want)
		}
	}
}

func TestRead(t *testing.T) {
	c := pad.Coordinate{X: 0.2, Y: 0.7}
	if got := Temperature().Read(c); got != "0.48" {
		t.Errorf("expected temperature 0.48, got %s", got)
	}
	if got := MaxTokens().Read(c); got != "365" {
		t.Errorf("expected max tokens 365, got %s", got)
	}
	if got := MaxTokens().Read(pad.Coordinate{X: 1, Y: 0}); got != "50" {
		t.Errorf("expected max tokens 50 at the bottom, got %s", got)
	}
}

func TestLabel(t *testing.T) {
	if got := MaxTokens().Label(); got != "MAX TOKENS" {
		t.Errorf("expected uppercase label, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	for _, r := range Defaults() {
		if err := r.Validate(); err != nil {
			t.Errorf("default %q invalid: %v", r.Title, err)
		}
	}
	bad := Range{Title: "z", Axis: "z"}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}
