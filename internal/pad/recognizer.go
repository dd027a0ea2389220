package pad

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/san-kum/gridpad/internal/geom"
)

// Platform selects how the pan recognizer disambiguates taps from drags.
type Platform int

const (
	// Pointer platforms deliver precise pre-movement events, so a drag
	// only begins after the pointer travels MinDistance.
	Pointer Platform = iota
	// Touch platforms begin a drag on press and let the tap win on a
	// release without movement.
	Touch
)

const DefaultMinDistance = 1.0

var ErrUnknownPlatform = errors.New("pad: unknown input platform")

func (p Platform) String() string {
	switch p {
	case Pointer:
		return "pointer"
	case Touch:
		return "touch"
	default:
		return "unknown"
	}
}

func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pointer", "mouse":
		return Pointer, nil
	case "touch":
		return Touch, nil
	default:
		return Pointer, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
}

// MinDistance is the drag travel threshold for the platform.
func (p Platform) MinDistance() float64 {
	if p == Touch {
		return 0
	}
	return DefaultMinDistance
}

// Recognizer turns raw pointer events into tap and pan gestures. Event
// coordinates are local to the lattice, before the offset adjustment the
// controller applies while dragging.
type Recognizer struct {
	target      Gestures
	platform    Platform
	minDistance float64

	down    bool
	moved   bool
	panning bool
	origin  geom.Point
}

func NewRecognizer(target Gestures, platform Platform) *Recognizer {
	return &Recognizer{
		target:      target,
		platform:    platform,
		minDistance: platform.MinDistance(),
	}
}

func (r *Recognizer) Platform() Platform { return r.platform }

// Panning reports whether a pan gesture is in flight.
func (r *Recognizer) Panning() bool { return r.panning }

func (r *Recognizer) Down(e geom.Point) {
	r.down = true
	r.moved = false
	r.origin = e
	if r.platform == Touch {
		r.begin()
	}
}

func (r *Recognizer) Move(e geom.Point) {
	if !r.down {
		return
	}
	if !r.panning {
		if math.Hypot(e.X-r.origin.X, e.Y-r.origin.Y) < r.minDistance {
			return
		}
		r.begin()
	}
	r.moved = true
	r.target.UpdateDrag(e)
}

func (r *Recognizer) Up(e geom.Point) {
	if !r.down {
		return
	}
	r.down = false

	switch {
	case r.panning && r.moved:
		r.panning = false
		Logger().Debug("gesture resolved", slog.String("kind", "pan"))
		r.target.EndDrag()
	default:
		// A touch pan that never moved loses to the tap.
		r.panning = false
		Logger().Debug("gesture resolved", slog.String("kind", "tap"),
			slog.Float64("x", e.X), slog.Float64("y", e.Y))
		r.target.Tap(e)
	}
}

// Cancel ends any in-flight gesture as if the pointer had been released
// where it last was. A press that never became a pan is dropped.
func (r *Recognizer) Cancel() {
	if !r.down {
		return
	}
	r.down = false
	if r.panning {
		r.panning = false
		Logger().Debug("gesture cancelled", slog.String("kind", "pan"))
		r.target.EndDrag()
	}
}

func (r *Recognizer) begin() {
	r.panning = true
	r.target.BeginDrag()
}
