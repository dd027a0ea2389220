// Package dynamo provides the primitives the settle animation integrates.
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator
//
// # Example
//
//	spring := physics.NewSpring(physics.DefaultSpringParams())
//	integ := integrators.NewRK4()
//	x := integ.Step(spring, dynamo.State{pos, vel}, dynamo.Control{target}, 0, dt)
//
// # Thread Safety
//
// Integrators keep scratch buffers and are NOT safe for concurrent use. Each
// animated axis owns its own integrator.
package dynamo
