package metrics

import (
	"math"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/geom"
)

// PathLength is the total distance the marker moved from the origin across
// all frames. Without Begin it starts at the first observed position.
type PathLength struct {
	name    string
	started bool
	last    geom.Point
	total   float64
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_px"}
}

func (p *PathLength) Name() string { return p.name }

func (p *PathLength) Begin(origin geom.Point) {
	p.Reset()
	p.started = true
	p.last = origin
}

func (p *PathLength) Observe(f anim.Frame, target geom.Point) {
	if p.started {
		d := f.Position.Sub(p.last)
		p.total += math.Hypot(d.X, d.Y)
	}
	p.started = true
	p.last = f.Position
}

func (p *PathLength) Value() float64 {
	return p.total
}

func (p *PathLength) Reset() {
	p.started = false
	p.last = geom.Point{}
	p.total = 0
}
