package flyweight

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Sentinel errors for flyweight operations. The typed errors below unwrap
// to these so callers can match with errors.Is and read the category with
// errors.As(*goerrors.Error).
var (
	ErrUnhashableKey = goerrors.New("flyweight: argument is not hashable", goerrors.CategoryBadInput).
				WithTextCode("UNHASHABLE_KEY")

	ErrArgumentMismatch = goerrors.New("flyweight: arguments do not match constructor", goerrors.CategoryBadInput).
				WithTextCode("ARGUMENT_MISMATCH")
)

// UnhashableKeyError is returned when a construction argument cannot take
// part in a cache key. The constructor is never invoked in that case.
type UnhashableKeyError struct {
	// Position is the index of the argument in the call, counting keyword
	// arguments too.
	Position int
	// Name is set when the offending argument was passed with Kw.
	Name string
	// Type is the type of the argument as passed.
	Type string
	// Kind is the nested type that is not comparable, e.g. a slice field
	// inside a struct argument.
	Kind string
}

func (e *UnhashableKeyError) Error() string {
	where := fmt.Sprintf("argument %d", e.Position)
	if e.Name != "" {
		where = fmt.Sprintf("keyword argument %q", e.Name)
	}
	if e.Kind != "" && e.Kind != e.Type {
		return fmt.Sprintf("flyweight: %s of type %s is not hashable (contains %s)", where, e.Type, e.Kind)
	}
	return fmt.Sprintf("flyweight: %s of type %s is not hashable", where, e.Type)
}

func (e *UnhashableKeyError) Unwrap() error { return ErrUnhashableKey }

// ArgumentError is returned by the typed constructor adapters when the
// call arguments do not fit the wrapped function.
type ArgumentError struct {
	Want    int
	Got     int
	Index   int
	Type    string
	Wrapped string
}

func (e *ArgumentError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("flyweight: argument %d must be %s, got %s", e.Index, e.Type, e.Wrapped)
	}
	return fmt.Sprintf("flyweight: constructor takes %d positional arguments, got %d", e.Want, e.Got)
}

func (e *ArgumentError) Unwrap() error { return ErrArgumentMismatch }
