package loop

import (
	"sync"

	"github.com/gogpu/gesture"
)

// Source is a gesture.TouchSource fed from any goroutine. Events are
// delivered to subscribers on the loop goroutine in dispatch order.
type Source struct {
	loop *Loop

	mu   sync.Mutex
	next int
	subs map[int]func(gesture.TouchEvent)
}

// NewSource returns a touch source bound to the loop.
func (l *Loop) NewSource() *Source {
	return &Source{loop: l, subs: make(map[int]func(gesture.TouchEvent))}
}

// Subscribe implements gesture.TouchSource.
func (s *Source) Subscribe(fn func(gesture.TouchEvent)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Source) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Dispatch queues ev for delivery. The contact slice is copied, so the
// caller may reuse it.
func (s *Source) Dispatch(ev gesture.TouchEvent) error {
	ev.Contacts = append([]gesture.Contact(nil), ev.Contacts...)
	return s.loop.Post(func() {
		s.mu.Lock()
		fns := make([]func(gesture.TouchEvent), 0, len(s.subs))
		for _, fn := range s.subs {
			fns = append(fns, fn)
		}
		s.mu.Unlock()
		for _, fn := range fns {
			fn(ev)
		}
	})
}
