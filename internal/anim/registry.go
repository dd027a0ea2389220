package anim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/gridpad/internal/integrators"
	"github.com/san-kum/gridpad/internal/physics"
)

const (
	MethodAnalytic = "analytic"
	MethodRK4      = "rk4"
	MethodVerlet   = "verlet"
	MethodEuler    = "euler"

	DefaultFPS = 60
)

var ErrUnknownMethod = errors.New("anim: unknown settle method")

var methods = map[string]func(physics.SpringParams, int) Stepper{
	MethodAnalytic: func(p physics.SpringParams, fps int) Stepper { return newAnalytic(p, fps) },
	MethodRK4: func(p physics.SpringParams, fps int) Stepper {
		return newIntegrated(p, fps, integrators.NewRK4())
	},
	MethodVerlet: func(p physics.SpringParams, fps int) Stepper {
		return newIntegrated(p, fps, integrators.NewVerlet())
	},
	MethodEuler: func(p physics.SpringParams, fps int) Stepper {
		return newIntegrated(p, fps, integrators.NewEuler())
	},
}

// NewStepper builds the named stepper for the given spring and frame rate.
func NewStepper(method string, p physics.SpringParams, fps int) (Stepper, error) {
	fn, ok := methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("settle spring: %w", err)
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	return fn(p, fps), nil
}

func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
