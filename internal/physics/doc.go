// Package physics provides the damped spring the settle animation follows.
//
// [Spring] implements [dynamo.System] with state [position, velocity] and a
// single control input, the equilibrium (target) position. It also implements
// [dynamo.Hamiltonian]; the settle report uses it for the energy left in the
// marker.
package physics
