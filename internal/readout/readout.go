// Package readout turns the pad's normalized coordinate into the numeric
// values shown next to it.
package readout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/gridpad/internal/pad"
)

type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

var ErrInvalidRange = errors.New("readout: invalid range")

// Range maps one axis of the coordinate linearly onto [Min, Max].
type Range struct {
	Title    string  `yaml:"title"`
	Axis     Axis    `yaml:"axis"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Decimals int     `yaml:"decimals"`
}

func Temperature() Range {
	return Range{Title: "Temperature", Axis: AxisX, Min: 0.1, Max: 2.0, Decimals: 2}
}

func MaxTokens() Range {
	return Range{Title: "Max Tokens", Axis: AxisY, Min: 50, Max: 500, Decimals: 0}
}

func Defaults() []Range {
	return []Range{Temperature(), MaxTokens()}
}

func (r Range) Validate() error {
	if r.Axis != AxisX && r.Axis != AxisY {
		return fmt.Errorf("%w: %q: axis must be x or y, got %q", ErrInvalidRange, r.Title, r.Axis)
	}
	if r.Decimals < 0 {
		return fmt.Errorf("%w: %q: negative decimals", ErrInvalidRange, r.Title)
	}
	return nil
}

func (r Range) Progress(c pad.Coordinate) float64 {
	if r.Axis == AxisY {
		return c.Y
	}
	return c.X
}

// Value is Min + t*(Max-Min) for progress t.
func (r Range) Value(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

func (r Range) Format(t float64) string {
	return strconv.FormatFloat(r.Value(t), 'f', r.Decimals, 64)
}

// Read formats the value this range reports for c.
func (r Range) Read(c pad.Coordinate) string {
	return r.Format(r.Progress(c))
}

// Label is the title as the readout bar shows it.
func (r Range) Label() string {
	return strings.ToUpper(r.Title)
}
