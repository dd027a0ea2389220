package integrators

import "github.com/san-kum/gridpad/internal/dynamo"

// Euler is the semi-implicit (symplectic) Euler method: velocities are updated
// first and the new velocities move the positions. State layout is
// [positions..., velocities...].
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2
	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, n)
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + dt*dx[half+i]
		result[i] = x[i] + dt*result[half+i]
	}
	return result
}
