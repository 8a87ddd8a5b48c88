package flyweight

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/goliatone/go-patterns/internal/instancestore"
	"github.com/goliatone/go-patterns/internal/logging"
	"github.com/google/uuid"
)

// Constructor builds a value from construction arguments. Arguments of type
// Named are keyword arguments; use Split or Lookup to read them.
type Constructor[V any] func(args ...any) (V, error)

// Stats is a snapshot of a factory's counters.
type Stats = instancestore.Stats

// Option configures a Factory.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	keys     KeySerializer
	sizeHint int
}

// WithLogger sets the logger used for construction and lookup records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKeySerializer replaces the default reflection based key serializer.
func WithKeySerializer(keys KeySerializer) Option {
	return func(o *options) {
		if keys != nil {
			o.keys = keys
		}
	}
}

// WithSizeHint pre-sizes the cache for roughly n distinct keys.
func WithSizeHint(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.sizeHint = n
		}
	}
}

// Factory hands out one shared instance per distinct argument tuple.
// Each Factory owns its cache; two factories never share entries, even
// over the same constructor. A Factory is safe for concurrent use.
type Factory[V any] struct {
	id     string
	ctor   Constructor[V]
	keys   KeySerializer
	store  *instancestore.Store[V]
	logger *slog.Logger
}

// New creates a Factory around ctor. It panics if ctor is nil.
func New[V any](ctor Constructor[V], opts ...Option) *Factory[V] {
	if ctor == nil {
		panic("flyweight: nil constructor")
	}

	o := options{keys: NewDefaultKeySerializer()}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := instancestore.DefaultConfig()
	cfg.SizeHint = o.sizeHint

	// options only ever produce a valid config
	store, err := instancestore.New[V](cfg)
	if err != nil {
		panic(fmt.Sprintf("flyweight: %v", err))
	}

	id := uuid.NewString()
	return &Factory[V]{
		id:     id,
		ctor:   ctor,
		keys:   o.keys,
		store:  store,
		logger: logging.OrNop(o.logger).With("factory_id", id),
	}
}

// GetInstance returns the canonical instance for args, invoking the
// constructor only the first time a given key is seen.
//
// Arguments must be hashable: slices, maps and funcs (directly or nested in
// a struct, array or interface) fail with *UnhashableKeyError before the
// constructor runs. If the constructor fails its error is returned and
// nothing is cached.
//
// The constructor must not call GetInstance on the same Factory.
func (f *Factory[V]) GetInstance(args ...any) (V, error) {
	key, err := f.keys.SerializeKey(args...)
	if err != nil {
		var zero V
		f.logger.Debug("flyweight key rejected", "error", err)
		return zero, err
	}

	// the entry keeps args reachable so address based keys cannot be reused
	v, created, err := f.store.GetOrCreate(key, args, func() (V, error) {
		return f.ctor(args...)
	})
	if err != nil {
		f.logger.Debug("flyweight construction failed", "key", key, "error", err)
		return v, fmt.Errorf("flyweight: construct %s: %w", key, err)
	}

	if created {
		f.logger.Debug("flyweight instance constructed", "key", key, "size", f.store.Len())
	}

	return v, nil
}

// MustGetInstance is like GetInstance but panics on error. It is meant for
// arguments known to be hashable, such as literal strings.
func (f *Factory[V]) MustGetInstance(args ...any) V {
	v, err := f.GetInstance(args...)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of cached instances.
func (f *Factory[V]) Len() int {
	return f.store.Len()
}

// Keys returns the keys of every cached instance in no particular order.
func (f *Factory[V]) Keys() []string {
	return f.store.Keys()
}

// Stats returns hit, miss and construction counters.
func (f *Factory[V]) Stats() Stats {
	return f.store.Stats()
}

// ID returns the unique identifier of this cache instance.
func (f *Factory[V]) ID() string {
	return f.id
}

// Wrap is the decorator form: it returns a constructor with the same
// signature whose results are cached in a private Factory.
func Wrap[V any](ctor Constructor[V], opts ...Option) Constructor[V] {
	return New(ctor, opts...).GetInstance
}

// Of adapts a constructor that cannot fail.
func Of[V any](fn func(args ...any) V) Constructor[V] {
	return func(args ...any) (V, error) {
		return fn(args...), nil
	}
}

// Of1 adapts a one argument function. Keyword arguments are ignored.
func Of1[A, V any](fn func(A) V) Constructor[V] {
	return func(args ...any) (V, error) {
		var zero V
		positional, _ := Split(args)
		if len(positional) != 1 {
			return zero, &ArgumentError{Want: 1, Got: len(positional)}
		}
		a, err := argAs[A](positional, 0)
		if err != nil {
			return zero, err
		}
		return fn(a), nil
	}
}

// Of2 adapts a two argument function such as NewCard(value, suit).
// Keyword arguments are ignored.
func Of2[A, B, V any](fn func(A, B) V) Constructor[V] {
	return func(args ...any) (V, error) {
		var zero V
		positional, _ := Split(args)
		if len(positional) != 2 {
			return zero, &ArgumentError{Want: 2, Got: len(positional)}
		}
		a, err := argAs[A](positional, 0)
		if err != nil {
			return zero, err
		}
		b, err := argAs[B](positional, 1)
		if err != nil {
			return zero, err
		}
		return fn(a, b), nil
	}
}

func argAs[T any](args []any, i int) (T, error) {
	if v, ok := args[i].(T); ok {
		return v, nil
	}

	var zero T
	return zero, &ArgumentError{
		Index:   i,
		Type:    reflect.TypeOf((*T)(nil)).Elem().String(),
		Wrapped: fmt.Sprintf("%T", args[i]),
	}
}
