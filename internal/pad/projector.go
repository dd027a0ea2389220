package pad

import (
	"log/slog"
	"sync/atomic"

	"github.com/san-kum/gridpad/internal/geom"
)

// Coordinate is the normalized selection, each axis in [0, 1]. Y grows
// upward.
type Coordinate struct {
	X, Y float64
}

func (c Coordinate) InRange() bool {
	return c.X >= 0 && c.X <= 1 && c.Y >= 0 && c.Y <= 1
}

// Project maps a position to its normalized coordinate. The result is not
// clamped.
func Project(spec geom.GridSpec, p geom.Point) Coordinate {
	rng := spec.Range()
	dotOffset := spec.Offset + spec.Spacing/2
	return Coordinate{
		X: (p.X - dotOffset) / rng,
		Y: 1 - (p.Y-dotOffset)/rng,
	}
}

// Projector keeps the normalized coordinate in step with a controller's
// commits and fans it out to its own subscribers.
type Projector struct {
	spec    geom.GridSpec
	current atomic.Pointer[Coordinate]
	subs    subscribers[Coordinate]
	cancel  func()
}

func NewProjector(ctrl *Controller) *Projector {
	p := &Projector{spec: ctrl.Spec()}
	p.update(ctrl.Snapshot())
	p.cancel = ctrl.Subscribe(p.update)
	return p
}

func (p *Projector) Coordinate() Coordinate {
	return *p.current.Load()
}

func (p *Projector) Subscribe(fn func(Coordinate)) func() {
	return p.subs.add(fn)
}

// Close detaches the projector from its controller.
func (p *Projector) Close() {
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *Projector) update(s Snapshot) {
	c := Project(p.spec, s.Position)
	if !c.InRange() {
		Logger().Error("coordinate out of range",
			slog.Float64("x", c.X),
			slog.Float64("y", c.Y),
			slog.Float64("px", s.Position.X),
			slog.Float64("py", s.Position.Y),
			slog.Uint64("seq", s.Seq),
		)
	}
	p.current.Store(&c)
	p.subs.publish(c)
}
