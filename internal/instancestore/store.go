package instancestore

import (
	"slices"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/puzpuzpuz/xsync/v3"
)

// Config holds the configuration for the instance store.
type Config struct {
	// SizeHint pre-sizes the underlying map so the first inserts do not
	// trigger table growth. Zero uses the xsync default.
	SizeHint int

	// GrowOnly keeps the table from shrinking. Entries are never removed,
	// so this is the default.
	GrowOnly bool
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		SizeHint: 0,
		GrowOnly: true,
	}
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if c.SizeHint < 0 {
		return &ConfigError{Field: "SizeHint", Message: "must be non-negative"}
	}
	return nil
}

func (c Config) options() []func(*xsync.MapConfig) {
	var options []func(*xsync.MapConfig)

	if c.SizeHint > 0 {
		options = append(options, xsync.WithPresize(c.SizeHint))
	}

	if c.GrowOnly {
		options = append(options, xsync.WithGrowOnly())
	}

	return options
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "instancestore: config error in field " + e.Field + ": " + e.Message
}

// Stats is a point in time snapshot of store counters.
type Stats struct {
	Hits          uint64
	Misses        uint64
	Constructions uint64
	Size          int
}

// entry pairs a value with the arguments it was built from. Keys made from
// addresses stay valid only while pins keeps those objects reachable.
type entry[V any] struct {
	value V
	pins  []any
}

// Store is an append-only, concurrency safe mapping from a canonical key to
// the single value constructed for it. Values are never replaced or removed.
type Store[V any] struct {
	entries       *xsync.MapOf[string, entry[V]]
	hits          atomic.Uint64
	misses        atomic.Uint64
	constructions atomic.Uint64
}

// New creates a store using the given configuration.
func New[V any](cfg Config) (*Store[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Store[V]{
		entries: xsync.NewMapOfWithHasher[string, entry[V]](hashKey, cfg.options()...),
	}, nil
}

// hashKey spreads canonical keys with xxhash; seed is per map instance.
func hashKey(key string, seed uint64) uint64 {
	return xxhash.Sum64String(key) ^ seed
}

// GetOrCreate returns the value stored under key. On a miss create runs
// exactly once for that key, even when several goroutines miss together;
// the losers block on the bucket and observe the winner's value.
//
// If create fails nothing is stored and the error is returned, so a later
// call for the same key will try again. The bool result reports whether
// this call constructed the value.
//
// A copy of pins is held by the new entry for as long as the store lives.
// Pass the objects whose addresses appear in key.
//
// create runs while the key's bucket is locked: it must not call back into
// the same store.
func (s *Store[V]) GetOrCreate(key string, pins []any, create func() (V, error)) (V, bool, error) {
	if e, ok := s.entries.Load(key); ok {
		s.hits.Add(1)
		return e.value, false, nil
	}

	var (
		created   bool
		createErr error
	)

	actual, _ := s.entries.Compute(key, func(old entry[V], loaded bool) (entry[V], bool) {
		if loaded {
			return old, false
		}

		v, err := create()
		if err != nil {
			createErr = err
			// delete on a missing key leaves the map untouched
			return entry[V]{}, true
		}

		created = true
		return entry[V]{value: v, pins: slices.Clone(pins)}, false
	})

	if createErr != nil {
		s.misses.Add(1)
		var zero V
		return zero, false, createErr
	}

	if created {
		s.misses.Add(1)
		s.constructions.Add(1)
	} else {
		s.hits.Add(1)
	}

	return actual.value, created, nil
}

// Load returns the value stored under key, if any.
func (s *Store[V]) Load(key string) (V, bool) {
	e, ok := s.entries.Load(key)
	return e.value, ok
}

// Len returns the number of stored values.
func (s *Store[V]) Len() int {
	return s.entries.Size()
}

// Keys returns every stored key in no particular order.
func (s *Store[V]) Keys() []string {
	keys := make([]string, 0, s.entries.Size())
	s.entries.Range(func(key string, _ entry[V]) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Stats returns the current counters.
func (s *Store[V]) Stats() Stats {
	return Stats{
		Hits:          s.hits.Load(),
		Misses:        s.misses.Load(),
		Constructions: s.constructions.Load(),
		Size:          s.entries.Size(),
	}
}
