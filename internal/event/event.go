// Package event provides the publish/subscribe primitive that decouples
// models, presenters and views.
//
// An Event is owned by the component that declares it. Other components
// subscribe handlers; the owner fires it. Dispatch is synchronous, on the
// calling goroutine, in subscription order.
//
// Fault policy: Fire does not isolate handlers. If a handler panics,
// delivery stops at that handler and the panic propagates to the caller
// of Fire; later subscribers are not invoked for that fire. Callers must
// not rely on every subscriber running when one of them fails.
//
// There is no re-entrancy guard. A handler may fire further events (or the
// same event) and those are dispatched depth-first before Fire returns.
package event

import (
	"sync"
	"time"
)

// Handler processes the payload of a fired event.
type Handler[T any] func(T)

// Metrics tracks dispatch counters for a single event.
type Metrics struct {
	Name                string
	TotalSubscriptions  int
	ActiveSubscriptions int
	EventsFired         int64
	HandlersInvoked     int64
	LastFired           time.Time
}

type subscriber[T any] struct {
	id      uint64
	handler Handler[T]
}

// Event is a named, ordered list of subscribers plus a fire operation.
// The zero value is not usable; create events with New.
type Event[T any] struct {
	name string

	mu          sync.Mutex
	subscribers []subscriber[T]
	nextID      uint64
	metrics     Metrics
}

// Signal is an event without a payload.
type Signal = Event[struct{}]

// New creates an event with the given name.
func New[T any](name string) *Event[T] {
	return &Event[T]{
		name:    name,
		metrics: Metrics{Name: name},
	}
}

// NewSignal creates a payload-less event.
func NewSignal(name string) *Signal {
	return New[struct{}](name)
}

// Name returns the event's name.
func (e *Event[T]) Name() string {
	return e.name
}

// Subscribe appends handler to the subscriber list. Subsequent fires include it.
func (e *Event[T]) Subscribe(handler Handler[T]) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.subscribers = append(e.subscribers, subscriber[T]{id: id, handler: handler})
	e.metrics.TotalSubscriptions++
	e.metrics.ActiveSubscriptions++

	return &Subscription{event: e.name, cancel: func() bool { return e.remove(id) }}
}

func (e *Event[T]) remove(id uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, s := range e.subscribers {
		if s.id != id {
			continue
		}
		// Copy instead of shifting in place so snapshots held by an
		// in-flight Fire keep their view of the list.
		next := make([]subscriber[T], 0, len(e.subscribers)-1)
		next = append(next, e.subscribers[:i]...)
		next = append(next, e.subscribers[i+1:]...)
		e.subscribers = next
		e.metrics.ActiveSubscriptions--
		return true
	}
	return false
}

// Fire invokes every current subscriber with payload, in subscription order.
// The subscriber list is snapshotted first: handlers added or removed while
// Fire is running take effect from the next Fire.
func (e *Event[T]) Fire(payload T) {
	e.mu.Lock()
	snapshot := e.subscribers[:len(e.subscribers):len(e.subscribers)]
	e.metrics.EventsFired++
	e.metrics.LastFired = time.Now()
	e.mu.Unlock()

	for _, s := range snapshot {
		s.handler(payload)
		e.mu.Lock()
		e.metrics.HandlersInvoked++
		e.mu.Unlock()
	}
}

// Len returns the number of active subscribers.
func (e *Event[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subscribers)
}

// Metrics returns a copy of the event's dispatch counters.
func (e *Event[T]) Metrics() Metrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.metrics
}

// Emit fires a payload-less event.
func Emit(s *Signal) {
	s.Fire(struct{}{})
}
