// Package export renders a still image of the pad at a given selection.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/gridpad/internal/geom"
	"github.com/san-kum/gridpad/internal/pad"
	"github.com/san-kum/gridpad/internal/viz"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"

	gradientFrom = "#00000020"
	gradientTo   = "#ffffff40"
	borderAlpha  = 0x12
	faintOpacity = 0.5
	cornerRadius = 12.0
	borderWidth  = 1.0
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Scene is everything needed to draw one frame of the pad.
type Scene struct {
	Spec     geom.GridSpec
	Density  geom.Density
	Position geom.Point
	Theme    viz.Theme
	Scale    float64
}

// NewScene places the marker on the given 1-indexed cell, flip not applied.
func NewScene(d geom.Density, spec geom.GridSpec, cell geom.Cell, theme viz.Theme, scale float64) Scene {
	if scale <= 0 {
		scale = 1
	}
	return Scene{
		Spec:     spec,
		Density:  d,
		Position: spec.CellToPixel(cell, false),
		Theme:    theme,
		Scale:    scale,
	}
}

// Size is the output size in pixels.
func (s Scene) Size() float64 {
	return s.Spec.Extent() * s.Scale
}

// mark is a resolved dot or marker, in local pixel units.
type mark struct {
	center  geom.Point
	radius  float64
	opacity float64
	stroked bool
}

func (s Scene) marks() []mark {
	field := pad.NewDotField(s.Spec)
	frame := field.Frame(pad.Snapshot{Position: s.Position, Seq: 1})
	out := make([]mark, 0, len(frame)+1)
	for _, ds := range frame {
		m := mark{center: ds.Center, radius: s.Density.Radius(), opacity: 1}
		if !ds.Emphasized {
			m.opacity = faintOpacity
		}
		if ds.IsCenter {
			m.radius = s.Density.CenterRadius()
			m.stroked = true
		}
		out = append(out, m)
	}
	return append(out, mark{
		center:  s.Spec.MarkerCenter(s.Position),
		radius:  s.Density.FocusedRadius(),
		opacity: 1,
	})
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// Write renders s to path in the given format; an empty format is taken
// from the extension.
func Write(path, format string, s Scene) error {
	if format == "" {
		format = FormatFromPath(path)
	}
	switch format {
	case FormatPNG:
		return SavePNG(path, s)
	case FormatSVG:
		if err := os.WriteFile(path, []byte(SVG(s)), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
