package event

import "sync"

// Subscription represents one handler registered on an event.
type Subscription struct {
	event  string
	cancel func() bool

	mu     sync.Mutex
	closed bool
}

// Event returns the name of the event the subscription belongs to.
func (s *Subscription) Event() string {
	return s.event
}

// Unsubscribe removes the handler from its event. It is safe to call more
// than once; only the first call has an effect.
func (s *Subscription) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.cancel()
	s.closed = true
}

// IsClosed reports whether Unsubscribe has been called.
func (s *Subscription) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Group collects subscriptions so they can be released together, e.g. when
// a presenter is torn down.
type Group struct {
	mu   sync.Mutex
	subs []*Subscription
}

// Add records subscriptions in the group.
func (g *Group) Add(subs ...*Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs = append(g.subs, subs...)
}

// Len returns the number of subscriptions held.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subs)
}

// Close unsubscribes every subscription in the group.
func (g *Group) Close() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
}
