package metrics

import (
	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/geom"
)

// SettleTime is the 1-based frame at which the marker first came to rest,
// or 0 while it is still moving.
type SettleTime struct {
	name    string
	samples int
	at      int
}

func NewSettleTime() *SettleTime {
	return &SettleTime{name: "settle_frames"}
}

func (s *SettleTime) Name() string { return s.name }

func (s *SettleTime) Begin(origin geom.Point) { s.Reset() }

func (s *SettleTime) Observe(f anim.Frame, target geom.Point) {
	s.samples++
	if s.at == 0 && f.Settled {
		s.at = s.samples
	}
}

func (s *SettleTime) Settled() bool { return s.at > 0 }

func (s *SettleTime) Value() float64 {
	return float64(s.at)
}

func (s *SettleTime) Reset() {
	s.samples = 0
	s.at = 0
}
