package anim

import (
	"log/slog"

	"github.com/charmbracelet/harmonica"

	"github.com/san-kum/gridpad/internal/dynamo"
	"github.com/san-kum/gridpad/internal/pad"
	"github.com/san-kum/gridpad/internal/physics"
)

// Stepper advances one axis of the marker by a single frame.
type Stepper interface {
	Step(pos, vel, target float64) (float64, float64)
}

// analytic uses the closed-form damped oscillator solution.
type analytic struct {
	spring harmonica.Spring
}

func newAnalytic(p physics.SpringParams, fps int) *analytic {
	return &analytic{
		spring: harmonica.NewSpring(harmonica.FPS(fps), p.AngularFrequency(), p.DampingRatio()),
	}
}

func (a *analytic) Step(pos, vel, target float64) (float64, float64) {
	return a.spring.Update(pos, vel, target)
}

// integrated advances physics.Spring with a numerical integrator. The
// integrator's scratch buffers are reused, so one integrated stepper serves
// one goroutine.
type integrated struct {
	system *physics.Spring
	integ  dynamo.Integrator
	dt     float64
	state  dynamo.State
	ctrl   dynamo.Control
}

func newIntegrated(p physics.SpringParams, fps int, integ dynamo.Integrator) *integrated {
	return &integrated{
		system: physics.NewSpring(p),
		integ:  integ,
		dt:     1 / float64(fps),
		state:  make(dynamo.State, 2),
		ctrl:   make(dynamo.Control, 1),
	}
}

func (s *integrated) Step(pos, vel, target float64) (float64, float64) {
	s.state[0], s.state[1] = pos, vel
	s.ctrl[0] = target
	next := s.integ.Step(s.system, s.state, s.ctrl, 0, s.dt)
	if !next.IsValid() {
		pad.Logger().Warn("settle step diverged",
			slog.Any("err", dynamo.ErrInvalidState),
			slog.Float64("target", target),
		)
		return target, 0
	}
	return next[0], next[1]
}
