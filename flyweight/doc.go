// Package flyweight provides a keyed object cache that hands out one shared
// instance per distinct set of construction arguments.
//
// # Overview
//
// A Factory wraps a Constructor. The first GetInstance call for a given
// argument tuple runs the constructor and stores the result; every later
// call with an equal tuple returns that exact instance without running the
// constructor again:
//
//	cards := flyweight.New(flyweight.Of2(deck.NewCard))
//	a, _ := cards.GetInstance("Ace", "spades")
//	b, _ := cards.GetInstance("Ace", "spades")
//	// a == b, NewCard ran once
//
// The decorator form returns a constructor with the same signature backed
// by its own private cache:
//
//	newCard := flyweight.Wrap(flyweight.Of2(deck.NewCard))
//	a, _ := newCard("Ace", "spades")
//
// # Keys
//
// The key is the positional arguments in call order followed by keyword
// arguments sorted by name. Keyword arguments are passed with Kw:
//
//	f.GetInstance("Ace", flyweight.Kw("suit", "spades"), flyweight.Kw("deck", 36))
//	f.GetInstance("Ace", flyweight.Kw("deck", 36), flyweight.Kw("suit", "spades")) // same key
//
// Keys follow the language's equality rules for comparable values:
//
//   - Values are tagged with their type, so 1, int64(1) and "1" differ
//   - Pointers and channels are compared by address, not by what they point to
//   - Structs and arrays are compared field by field, unexported fields included
//   - Slices, maps and funcs are not hashable and fail with *UnhashableKeyError
//
// # Concurrency
//
// A Factory may be shared between goroutines. Concurrent first requests
// for the same key construct exactly one instance; the other callers wait
// for it and receive the same value. The constructor runs while the key's
// shard is locked, so it must not call back into the same Factory.
//
// # Lifecycle
//
// Entries are never evicted, replaced or expired. A Factory grows with
// the number of distinct keys it has seen and is released with it.
package flyweight
