package tui

import (
	"math"

	"github.com/san-kum/gridpad/internal/geom"
)

const (
	DefaultStrideX = 4
	DefaultStrideY = 2
)

// Layout maps between terminal cells and the pad's local pixel space. Dot
// (i, j) is drawn StrideX columns and StrideY rows apart, starting at
// (OriginX, OriginY).
type Layout struct {
	Spec    geom.GridSpec
	StrideX int
	StrideY int
	OriginX int
	OriginY int
}

func NewLayout(spec geom.GridSpec, originX, originY int) Layout {
	return Layout{
		Spec:    spec,
		StrideX: DefaultStrideX,
		StrideY: DefaultStrideY,
		OriginX: originX,
		OriginY: originY,
	}
}

func (l Layout) Width() int  { return (l.Spec.Size-1)*l.StrideX + 1 }
func (l Layout) Height() int { return (l.Spec.Size-1)*l.StrideY + 1 }

// ToLocal converts a terminal cell to a local pointer position: the pixel
// under the middle of that cell, with dot i drawn at DotCenter(i). A tap
// and a pan released on the same dot both select that dot.
func (l Layout) ToLocal(x, y int) geom.Point {
	return geom.Point{
		X: l.axisToLocal(x-l.OriginX, l.StrideX),
		Y: l.axisToLocal(y-l.OriginY, l.StrideY),
	}
}

func (l Layout) axisToLocal(d, stride int) float64 {
	return l.Spec.Offset + (float64(d)+0.5)*l.Spec.Spacing/float64(stride)
}


// DotCell is the canvas cell of a 0-indexed dot.
func (l Layout) DotCell(col, row int) (int, int) {
	return col * l.StrideX, row * l.StrideY
}

// MarkerCell is the canvas cell nearest to where the marker for position p
// is drawn, kept inside the canvas.
func (l Layout) MarkerCell(p geom.Point) (int, int) {
	m := l.Spec.MarkerCenter(p)
	x := int(math.Round((m.X - l.Spec.Offset) / l.Spec.Spacing * float64(l.StrideX)))
	y := int(math.Round((m.Y - l.Spec.Offset) / l.Spec.Spacing * float64(l.StrideY)))
	return clampInt(x, 0, l.Width()-1), clampInt(y, 0, l.Height()-1)
}

// CanvasCell converts a terminal cell to the nearest canvas cell.
func (l Layout) CanvasCell(x, y int) (int, int) {
	return clampInt(x-l.OriginX, 0, l.Width()-1), clampInt(y-l.OriginY, 0, l.Height()-1)
}

// Contains reports whether a terminal cell falls on the canvas.
func (l Layout) Contains(x, y int) bool {
	return x >= l.OriginX && x < l.OriginX+l.Width() &&
		y >= l.OriginY && y < l.OriginY+l.Height()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
