package pad

import "sync"

// subscribers is a registry of synchronous observers. Callbacks run on the
// goroutine that publishes, outside the registry lock.
type subscribers[T any] struct {
	mu     sync.Mutex
	nextID uint64
	fns    []subscriber[T]
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

func (s *subscribers[T]) add(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.fns = append(s.fns, subscriber[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *subscribers[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.fns {
		if sub.id == id {
			s.fns = append(s.fns[:i:i], s.fns[i+1:]...)
			return
		}
	}
}

func (s *subscribers[T]) publish(v T) {
	s.mu.Lock()
	fns := make([]func(T), len(s.fns))
	for i, sub := range s.fns {
		fns[i] = sub.fn
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

func (s *subscribers[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fns)
}
