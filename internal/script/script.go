// Package script replays YAML gesture scenarios against a pad runtime.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gridpad/internal/engine"
	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/pad"
)

var (
	ErrUnknownStep = errors.New("script: unknown step action")
	ErrInvalidStep = errors.New("script: invalid step")
)

// Scenario defines a scripted gesture sequence
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Point is a local pointer position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) toGeom() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

// Step is a single gesture. At is used by tap, down, move and up; Path by
// drag; Col, Row and Flip by moveto.
type Step struct {
	Action string  `yaml:"action"`
	At     *Point  `yaml:"at,omitempty"`
	Path   []Point `yaml:"path,omitempty"`
	Col    int     `yaml:"col,omitempty"`
	Row    int     `yaml:"row,omitempty"`
	Flip   bool    `yaml:"flip,omitempty"`
}

// Result is the pad state observed after a step.
type Result struct {
	Index      int
	Action     string
	Cell       geom.Cell
	Coordinate pad.Coordinate
}

// Runner is the part of engine.Runtime a scenario drives.
type Runner interface {
	Do(ctx context.Context, cmd engine.Command) error
	Cell() geom.Cell
	Coordinate() pad.Coordinate
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	for i, step := range scenario.Steps {
		if _, err := step.Commands(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &scenario, nil
}

// Commands expands a step into the runtime commands it stands for.
func (s Step) Commands() ([]engine.Command, error) {
	at := func() (geom.Point, error) {
		if s.At == nil {
			return geom.Point{}, fmt.Errorf("%w: %s needs at", ErrInvalidStep, s.Action)
		}
		return s.At.toGeom(), nil
	}

	switch s.Action {
	case "tap":
		p, err := at()
		if err != nil {
			return nil, err
		}
		return []engine.Command{engine.Down(p), engine.Up(p)}, nil
	case "drag":
		if len(s.Path) < 2 {
			return nil, fmt.Errorf("%w: drag needs at least two points", ErrInvalidStep)
		}
		cmds := make([]engine.Command, 0, len(s.Path)+1)
		cmds = append(cmds, engine.Down(s.Path[0].toGeom()))
		for _, p := range s.Path[1:] {
			cmds = append(cmds, engine.Move(p.toGeom()))
		}
		return append(cmds, engine.Up(s.Path[len(s.Path)-1].toGeom())), nil
	case "down", "move", "up":
		p, err := at()
		if err != nil {
			return nil, err
		}
		switch s.Action {
		case "down":
			return []engine.Command{engine.Down(p)}, nil
		case "move":
			return []engine.Command{engine.Move(p)}, nil
		}
		return []engine.Command{engine.Up(p)}, nil
	case "cancel":
		return []engine.Command{engine.Cancel()}, nil
	case "moveto":
		return []engine.Command{engine.MoveTo(s.Col, s.Row, s.Flip)}, nil
	case "reset":
		return []engine.Command{engine.Reset()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, s.Action)
	}
}

// Run applies every step in order, waiting for each command to land, and
// reports the state after each step to observe (which may be nil).
func Run(ctx context.Context, r Runner, sc *Scenario, observe func(Result)) ([]Result, error) {
	results := make([]Result, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		cmds, err := step.Commands()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		for _, cmd := range cmds {
			if err := r.Do(ctx, cmd); err != nil {
				return results, fmt.Errorf("step %d %s: %w", i+1, cmd.Kind, err)
			}
		}
		res := Result{
			Index:      i + 1,
			Action:     step.Action,
			Cell:       r.Cell(),
			Coordinate: r.Coordinate(),
		}
		results = append(results, res)
		if observe != nil {
			observe(res)
		}
	}
	return results, nil
}
