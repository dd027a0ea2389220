package pad

import "github.com/san-kum/gridpad/internal/geom"

// Dot is one reference point of the lattice, addressed by 0-indexed
// column and row.
type Dot struct {
	Col, Row int
	Center   geom.Point
	IsCenter bool
}

type DotState struct {
	Dot
	Emphasized bool
}

// DotField is the static lattice of reference dots.
type DotField struct {
	spec geom.GridSpec
	dots []Dot
}

// NewDotField lays the dots out column by column.
func NewDotField(spec geom.GridSpec) *DotField {
	center := spec.Center()
	dots := make([]Dot, 0, spec.Size*spec.Size)
	for col := 0; col < spec.Size; col++ {
		for row := 0; row < spec.Size; row++ {
			dots = append(dots, Dot{
				Col:      col,
				Row:      row,
				Center:   spec.DotCenter(col, row),
				IsCenter: col == center.Col && row == center.Row,
			})
		}
	}
	return &DotField{spec: spec, dots: dots}
}

func (f *DotField) Spec() geom.GridSpec { return f.spec }

func (f *DotField) Dots() []Dot { return f.dots }

// At returns the dot at a 0-indexed column and row.
func (f *DotField) At(col, row int) (Dot, bool) {
	if col < 0 || row < 0 || col >= f.spec.Size || row >= f.spec.Size {
		return Dot{}, false
	}
	return f.dots[col*f.spec.Size+row], true
}

// Emphasis flags every dot sharing a column or row with active.
func (f *DotField) Emphasis(active geom.Indices) []bool {
	out := make([]bool, len(f.dots))
	for i, d := range f.dots {
		out[i] = d.Col == active.Col || d.Row == active.Row
	}
	return out
}

// Frame computes the dot states for the raw position in s, so the
// crosshair follows a drag between cells.
func (f *DotField) Frame(s Snapshot) []DotState {
	active := f.spec.PixelToIndices(s.Position)
	out := make([]DotState, len(f.dots))
	for i, d := range f.dots {
		out[i] = DotState{Dot: d, Emphasized: d.Col == active.Col || d.Row == active.Row}
	}
	return out
}
