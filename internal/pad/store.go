package pad

import (
	"sync/atomic"

	"github.com/san-kum/gridpad/internal/geom"
)

// Snapshot is the interaction state shared between the control and render
// contexts. It is immutable once published.
type Snapshot struct {
	Position geom.Point
	Dragging bool
	// Seq counts commits; zero means no position has been committed yet.
	Seq uint64
}

// Ready reports whether a position has been committed.
func (s Snapshot) Ready() bool { return s.Seq > 0 }

// Store publishes snapshots with whole-record replacement. It has a single
// writer (the controller) and any number of concurrent readers.
type Store struct {
	current atomic.Pointer[Snapshot]
	subs    subscribers[Snapshot]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{})
	return s
}

func (s *Store) Load() Snapshot {
	return *s.current.Load()
}

// Subscribe registers fn to be called after every commit. The returned
// function cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	return s.subs.add(fn)
}

func (s *Store) commit(pos geom.Point, dragging bool) Snapshot {
	prev := s.current.Load()
	next := &Snapshot{Position: pos, Dragging: dragging, Seq: prev.Seq + 1}
	s.current.Store(next)
	s.subs.publish(*next)
	return *next
}
