package metrics

import (
	"math"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/geom"
)

// Overshoot is the farthest the marker travelled past its target, in
// pixels, measured along the line from the origin. Without Begin the first
// observed position is the origin.
type Overshoot struct {
	name    string
	started bool
	start   geom.Point
	max     float64
}

func NewOvershoot() *Overshoot {
	return &Overshoot{name: "overshoot_px"}
}

func (o *Overshoot) Name() string { return o.name }

func (o *Overshoot) Begin(origin geom.Point) {
	o.Reset()
	o.started = true
	o.start = origin
}

func (o *Overshoot) Observe(f anim.Frame, target geom.Point) {
	if !o.started {
		o.started = true
		o.start = f.Position
		return
	}
	travel := target.Sub(o.start)
	length := math.Hypot(travel.X, travel.Y)
	if length == 0 {
		return
	}
	d := f.Position.Sub(o.start)
	along := (d.X*travel.X + d.Y*travel.Y) / length
	if past := along - length; past > o.max {
		o.max = past
	}
}

func (o *Overshoot) Value() float64 {
	return o.max
}

func (o *Overshoot) Reset() {
	o.started = false
	o.start = geom.Point{}
	o.max = 0
}
