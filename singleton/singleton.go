// Package singleton provides a lazily constructed, process wide instance.
package singleton

import "sync"

// Singleton builds its value on the first Get and returns that same value
// from then on. It is safe for concurrent use.
type Singleton[T any] struct {
	once  sync.Once
	build func() T
	value T
}

// New returns a Singleton that calls build at most once.
func New[T any](build func() T) *Singleton[T] {
	if build == nil {
		panic("singleton: nil constructor")
	}
	return &Singleton[T]{build: build}
}

// Get returns the instance, building it on first use.
func (s *Singleton[T]) Get() T {
	s.once.Do(func() {
		s.value = s.build()
		s.build = nil
	})
	return s.value
}
