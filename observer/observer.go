// Package observer lets a subject publish state changes to subscribed
// observers. Every subject owns its own observer set.
package observer

import (
	"sync"

	goerrors "github.com/goliatone/go-errors"
)

// ErrUnknownObserver is returned when detaching an observer that was never
// attached.
var ErrUnknownObserver = goerrors.New("observer: observer is not attached", goerrors.CategoryNotFound).
	WithTextCode("UNKNOWN_OBSERVER")

// Observer receives updates from a subject of type S.
// Implementations must be comparable, pointers are the usual choice.
type Observer[S any] interface {
	Update(subject S)
}

// Subject keeps the set of observers for one publisher. The zero value is
// not usable; create one with NewSubject.
type Subject[S any] struct {
	mu        sync.RWMutex
	observers map[Observer[S]]struct{}
}

// NewSubject creates a subject with an empty observer set.
func NewSubject[S any]() *Subject[S] {
	return &Subject[S]{observers: make(map[Observer[S]]struct{})}
}

// Attach adds an observer. Attaching twice has no effect.
func (s *Subject[S]) Attach(o Observer[S]) {
	s.mu.Lock()
	s.observers[o] = struct{}{}
	s.mu.Unlock()
}

// Detach removes an observer.
func (s *Subject[S]) Detach(o Observer[S]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.observers[o]; !ok {
		return ErrUnknownObserver
	}
	delete(s.observers, o)
	return nil
}

// Notify calls Update on every observer except modifier, which may be nil.
// Observers are called outside the lock so they may attach or detach.
func (s *Subject[S]) Notify(source S, modifier Observer[S]) {
	for _, o := range s.Observers() {
		if modifier != nil && o == modifier {
			continue
		}
		o.Update(source)
	}
}

// Observers returns a snapshot of the attached observers.
func (s *Subject[S]) Observers() []Observer[S] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Observer[S], 0, len(s.observers))
	for o := range s.observers {
		out = append(out, o)
	}
	return out
}

// Len returns the number of attached observers.
func (s *Subject[S]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}
