package metrics

import (
	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/dynamo"
	"github.com/san-kum/gridpad/internal/geom"
)

// Energy is the spring energy left in the marker at the last observed
// frame, summed over both axes and measured relative to the target.
type Energy struct {
	name   string
	spring dynamo.Hamiltonian
	value  float64
}

func NewEnergy(spring dynamo.Hamiltonian) *Energy {
	return &Energy{name: "residual_energy", spring: spring}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Begin(origin geom.Point) { e.Reset() }

func (e *Energy) Observe(f anim.Frame, target geom.Point) {
	d := f.Position.Sub(target)
	e.value = e.spring.Energy(dynamo.State{d.X, f.Velocity.X}) +
		e.spring.Energy(dynamo.State{d.Y, f.Velocity.Y})
}

func (e *Energy) Value() float64 {
	return e.value
}

func (e *Energy) Reset() {
	e.value = 0
}
