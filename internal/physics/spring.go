package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/gridpad/internal/dynamo"
)

const (
	DefaultDamping   = 20.0
	DefaultStiffness = 240.0
	DefaultMass      = 0.5
)

// SpringParams are the physical constants of the settle spring.
type SpringParams struct {
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
	Mass      float64 `yaml:"mass"`
}

func DefaultSpringParams() SpringParams {
	return SpringParams{
		Damping:   DefaultDamping,
		Stiffness: DefaultStiffness,
		Mass:      DefaultMass,
	}
}

func (p SpringParams) Validate() error {
	if p.Mass <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %f", dynamo.ErrParameterBounds, p.Mass)
	}
	if p.Stiffness <= 0 {
		return fmt.Errorf("%w: stiffness must be positive, got %f", dynamo.ErrParameterBounds, p.Stiffness)
	}
	if p.Damping < 0 {
		return fmt.Errorf("%w: damping must not be negative, got %f", dynamo.ErrParameterBounds, p.Damping)
	}
	return nil
}

// AngularFrequency is the undamped natural frequency sqrt(k/m).
func (p SpringParams) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)); below 1 the spring overshoots.
func (p SpringParams) DampingRatio() float64 {
	return p.Damping / (2 * math.Sqrt(p.Stiffness*p.Mass))
}

type Spring struct {
	Params SpringParams
}

func NewSpring(p SpringParams) *Spring {
	return &Spring{Params: p}
}

func (s *Spring) StateDim() int   { return 2 }
func (s *Spring) ControlDim() int { return 1 }

// Derive returns [v, a] for a mass pulled toward u[0].
func (s *Spring) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	target := 0.0
	if len(u) > 0 {
		target = u[0]
	}
	pos, vel := x[0], x[1]
	force := -s.Params.Stiffness*(pos-target) - s.Params.Damping*vel
	return dynamo.State{vel, force / s.Params.Mass}
}

// Energy is measured relative to the zero equilibrium.
func (s *Spring) Energy(x dynamo.State) float64 {
	pos, vel := x[0], x[1]
	return 0.5*s.Params.Mass*vel*vel + 0.5*s.Params.Stiffness*pos*pos
}
