package anim

import (
	"math"
	"sync/atomic"

	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/pad"
	"github.com/san-kum/gridpad/internal/physics"
)

// SettleEpsilon is the distance and speed, in pixels, below which the
// marker snaps onto its target and stops.
const SettleEpsilon = 0.01

// Frame is the marker state published for renderers.
type Frame struct {
	Position geom.Point
	// Velocity is in pixels per second.
	Velocity geom.Point
	Dragging bool
	Settled  bool
}

// Source is where the animator reads the committed position from.
type Source interface {
	Load() pad.Snapshot
}

type Config struct {
	Method string
	FPS    int
	Spring physics.SpringParams
}

func DefaultConfig() Config {
	return Config{
		Method: MethodAnalytic,
		FPS:    DefaultFPS,
		Spring: physics.DefaultSpringParams(),
	}
}

// Animator owns the visible marker. Advance must be called from a single
// goroutine; Frame may be read from anywhere.
type Animator struct {
	source Source
	x, y   Stepper

	ready bool
	pos   geom.Point
	vel   geom.Point

	frame atomic.Pointer[Frame]
}

func New(source Source, cfg Config) (*Animator, error) {
	x, err := NewStepper(cfg.Method, cfg.Spring, cfg.FPS)
	if err != nil {
		return nil, err
	}
	y, err := NewStepper(cfg.Method, cfg.Spring, cfg.FPS)
	if err != nil {
		return nil, err
	}
	return NewWithSteppers(source, x, y), nil
}

func NewWithSteppers(source Source, x, y Stepper) *Animator {
	return &Animator{source: source, x: x, y: y}
}

// Frame returns the last published frame. ok is false until the source has
// committed its first position.
func (a *Animator) Frame() (Frame, bool) {
	f := a.frame.Load()
	if f == nil {
		return Frame{}, false
	}
	return *f, true
}

// Velocity is the marker's current speed per axis, in pixels per second.
// Call it from the goroutine that calls Advance.
func (a *Animator) Velocity() geom.Point {
	return a.vel
}

// Advance reads the latest snapshot and moves the marker by one frame.
func (a *Animator) Advance() (Frame, bool) {
	snap := a.source.Load()
	if !snap.Ready() {
		return Frame{}, false
	}
	if !a.ready {
		a.ready = true
		a.pos = snap.Position
		a.vel = geom.Point{}
	}

	f := Frame{Dragging: snap.Dragging}
	target := snap.Position
	switch {
	case snap.Dragging:
		a.pos = target
		a.vel = geom.Point{}
		f.Settled = true
	case settled(a.pos, a.vel, target):
		a.pos = target
		a.vel = geom.Point{}
		f.Settled = true
	default:
		a.pos.X, a.vel.X = a.x.Step(a.pos.X, a.vel.X, target.X)
		a.pos.Y, a.vel.Y = a.y.Step(a.pos.Y, a.vel.Y, target.Y)
		if settled(a.pos, a.vel, target) {
			a.pos = target
			a.vel = geom.Point{}
			f.Settled = true
		}
	}
	f.Position = a.pos
	f.Velocity = a.vel
	a.frame.Store(&f)
	return f, true
}

func settled(pos, vel, target geom.Point) bool {
	return math.Abs(pos.X-target.X) < SettleEpsilon &&
		math.Abs(pos.Y-target.Y) < SettleEpsilon &&
		math.Abs(vel.X) < SettleEpsilon &&
		math.Abs(vel.Y) < SettleEpsilon
}
