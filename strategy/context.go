package strategy

import (
	"cmp"
	"log/slog"
	"sort"

	"github.com/goliatone/go-patterns/internal/logging"
)

// wrapperName is reported by UnsupportedOperationError.
const wrapperName = "Context"

// Option configures a Context.
type Option func(*contextOptions)

type contextOptions struct {
	config Config
	logger *slog.Logger
}

// WithConfig sets the selection configuration used by the Auto variant.
func WithConfig(cfg Config) Option {
	return func(o *contextOptions) {
		o.config = cfg
	}
}

// WithThreshold is shorthand for overriding Config.Threshold.
func WithThreshold(n int) Option {
	return func(o *contextOptions) {
		o.config.Threshold = n
	}
}

// WithLogger sets the logger used to record algorithm selection.
func WithLogger(logger *slog.Logger) Option {
	return func(o *contextOptions) {
		o.logger = logger
	}
}

// Context binds one algorithm at construction time and exposes it through
// a uniform interface. The binding cannot change afterwards.
type Context[T any] struct {
	algorithm Algorithm[T]
	requested Variant
	surface   map[string]func() []T
}

var _ Algorithm[int] = (*Context[int])(nil)

// NewContext copies seq and binds the algorithm named by v. v is read like
// ParseVariant, so aliases and any letter case are accepted. Unknown
// variants fail here, before any sorting is attempted.
func NewContext[T cmp.Ordered](seq []T, v Variant, opts ...Option) (*Context[T], error) {
	return NewContextFunc(seq, v, cmp.Compare[T], opts...)
}

// NewContextFunc is NewContext for element types ordered by compare.
// compare must return a negative number when a < b, zero when they are
// equal and a positive number when a > b.
func NewContextFunc[T any](seq []T, v Variant, compare func(a, b T) int, opts ...Option) (*Context[T], error) {
	o := contextOptions{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.OrNop(o.logger)

	requested, err := ParseVariant(string(v))
	if err != nil {
		logger.Debug("strategy rejected", "variant", string(v))
		return nil, err
	}

	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	resolved := resolve(requested, len(seq), o.config)

	var algorithm Algorithm[T]
	switch resolved {
	case Insertion:
		algorithm = NewInsertionFunc(seq, compare)
	case Library:
		algorithm = NewLibraryFunc(seq, compare)
	}

	logger.Debug("strategy selected",
		"requested", string(requested),
		"variant", string(resolved),
		"len", len(seq),
		"threshold", o.config.Threshold,
	)

	c := &Context[T]{algorithm: algorithm, requested: requested}
	c.surface = map[string]func() []T{
		"sort":         c.algorithm.Sort,
		"reverse_sort": c.algorithm.ReverseSort,
		"evens":        c.algorithm.Evens,
		"odds":         c.algorithm.Odds,
	}

	return c, nil
}

// resolve maps a valid requested variant to a concrete one.
func resolve(v Variant, n int, cfg Config) Variant {
	if v != Auto {
		return v
	}
	if n <= cfg.Threshold {
		return Insertion
	}
	return Library
}

// Name returns the concrete variant bound to this context. For Auto it is
// the variant that was selected.
func (c *Context[T]) Name() Variant { return c.algorithm.Name() }

// Requested returns the canonical form of the variant passed at
// construction.
func (c *Context[T]) Requested() Variant { return c.requested }

// Algorithm returns the bound algorithm.
func (c *Context[T]) Algorithm() Algorithm[T] { return c.algorithm }

// Sort forwards to the bound algorithm.
func (c *Context[T]) Sort() []T { return c.algorithm.Sort() }

// ReverseSort forwards to the bound algorithm.
func (c *Context[T]) ReverseSort() []T { return c.algorithm.ReverseSort() }

// Evens forwards to the bound algorithm.
func (c *Context[T]) Evens() []T { return c.algorithm.Evens() }

// Odds forwards to the bound algorithm.
func (c *Context[T]) Odds() []T { return c.algorithm.Odds() }

// Call runs a capability of the bound algorithm by name: sort,
// reverse_sort, evens or odds. Any other name fails with
// *UnsupportedOperationError.
func (c *Context[T]) Call(name string) ([]T, error) {
	op, ok := c.surface[name]
	if !ok {
		return nil, &UnsupportedOperationError{Wrapper: wrapperName, Attribute: name}
	}
	return op(), nil
}

// Capabilities lists the names accepted by Call, sorted.
func (c *Context[T]) Capabilities() []string {
	names := make([]string, 0, len(c.surface))
	for name := range c.surface {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
