// Package metrics summarizes a marker trajectory as it settles onto a cell.
package metrics

import (
	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/physics"
)

// Metric accumulates over the frames of one settle. Begin marks where the
// marker was when the target changed; Observe sees every frame after that.
type Metric interface {
	Name() string
	Begin(origin geom.Point)
	Observe(f anim.Frame, target geom.Point)
	Value() float64
	Reset()
}

// Defaults returns the metrics the settle report prints, in order.
func Defaults(p physics.SpringParams) []Metric {
	return []Metric{
		NewSettleTime(),
		NewOvershoot(),
		NewPathLength(),
		NewEnergy(physics.NewSpring(p)),
	}
}

func BeginAll(ms []Metric, origin geom.Point) {
	for _, m := range ms {
		m.Begin(origin)
	}
}

func ObserveAll(ms []Metric, f anim.Frame, target geom.Point) {
	for _, m := range ms {
		m.Observe(f, target)
	}
}
