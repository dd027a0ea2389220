package geom

import "math"

const MinSize = 3

// Point is a position in the widget's local pixel space.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point      { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point      { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Offset(d float64) Point { return Point{p.X + d, p.Y + d} }

// Cell is a 1-indexed logical grid address.
type Cell struct {
	Col, Row int
}

// Indices is the 0-indexed column/row of a position, used for highlight comparisons.
type Indices struct {
	Col, Row int
}

type GridSpec struct {
	Size    int
	Spacing float64
	Offset  float64
	FlipX   bool
	FlipY   bool
}

// NewGridSpec builds a spec with size coerced to an odd value of at least MinSize.
func NewGridSpec(size int, spacing, offset float64, flipX, flipY bool) GridSpec {
	return GridSpec{
		Size:    EnsureOdd(size),
		Spacing: spacing,
		Offset:  offset,
		FlipX:   flipX,
		FlipY:   flipY,
	}
}

func EnsureOdd(n int) int {
	if n < MinSize {
		n = MinSize
	}
	if n%2 == 0 {
		return n + 1
	}
	return n
}

func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
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

// Extent is the rendered width (and height) of the lattice in pixels.
func (g GridSpec) Extent() float64 {
	return float64(g.Size-1)*g.Spacing + 2*g.Offset
}

// Range is the pixel distance between the first and last cell centers.
func (g GridSpec) Range() float64 {
	return float64(g.Size-1) * g.Spacing
}

func (g GridSpec) MinPosition() float64 {
	return g.Offset + g.Spacing/2
}

func (g GridSpec) MaxPosition() float64 {
	return g.Extent() - g.Offset + g.Spacing/2
}

// Snap moves v to the center of its enclosing cell. The cell index is taken
// with floor, so a value exactly on a cell edge belongs to the cell starting there.
func (g GridSpec) Snap(v float64) float64 {
	return math.Floor((v-g.Offset)/g.Spacing)*g.Spacing + g.Offset + g.Spacing/2
}

func (g GridSpec) SnapPoint(p Point) Point {
	return Point{g.Snap(p.X), g.Snap(p.Y)}
}

// ClampPoint bounds p to the reachable position range on both axes.
func (g GridSpec) ClampPoint(p Point) Point {
	lo, hi := g.MinPosition(), g.MaxPosition()
	return Point{Clamp(p.X, lo, hi), Clamp(p.Y, lo, hi)}
}

// Contains reports whether p is inside the reachable position range.
func (g GridSpec) Contains(p Point) bool {
	lo, hi := g.MinPosition(), g.MaxPosition()
	return p.X >= lo && p.X <= hi && p.Y >= lo && p.Y <= hi
}

func (g GridSpec) flip(i int, enabled bool) int {
	if enabled {
		return g.Size - i + 1
	}
	return i
}

// Flip applies the per-axis flip policy to a logical cell.
func (g GridSpec) Flip(c Cell) Cell {
	return Cell{g.flip(c.Col, g.FlipX), g.flip(c.Row, g.FlipY)}
}

// CellToPixel returns the center pixel of a 1-indexed cell. The flip policy is
// applied before clamping the cell to [1, Size].
func (g GridSpec) CellToPixel(c Cell, applyFlip bool) Point {
	if applyFlip {
		c = g.Flip(c)
	}
	col := clampInt(c.Col, 1, g.Size)
	row := clampInt(c.Row, 1, g.Size)
	return Point{
		X: float64(col-1)*g.Spacing + g.Offset + g.Spacing/2,
		Y: float64(row-1)*g.Spacing + g.Offset + g.Spacing/2,
	}
}

func (g GridSpec) PixelToIndices(p Point) Indices {
	return Indices{
		Col: int(math.Floor((p.X - g.Offset) / g.Spacing)),
		Row: int(math.Floor((p.Y - g.Offset) / g.Spacing)),
	}
}

func (g GridSpec) PixelToCell(p Point) Cell {
	idx := g.PixelToIndices(p)
	return Cell{idx.Col + 1, idx.Row + 1}
}

// DotCenter is where the reference dot for a 0-indexed column/row is drawn.
func (g GridSpec) DotCenter(col, row int) Point {
	return Point{
		X: float64(col)*g.Spacing + g.Offset,
		Y: float64(row)*g.Spacing + g.Offset,
	}
}

// MarkerCenter converts a position into the dot-aligned point the marker is drawn at.
func (g GridSpec) MarkerCenter(p Point) Point {
	return p.Offset(-g.Spacing / 2)
}

func (g GridSpec) Center() Indices {
	return Indices{g.Size / 2, g.Size / 2}
}
