package strategy

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Sentinel errors for strategy operations.
var (
	ErrUnknownStrategy = goerrors.New("strategy: unknown algorithm variant", goerrors.CategoryBadInput).
				WithTextCode("UNKNOWN_STRATEGY")

	ErrUnsupportedOperation = goerrors.New("strategy: unsupported operation", goerrors.CategoryNotFound).
				WithTextCode("UNSUPPORTED_OPERATION")

	ErrInvalidConfig = goerrors.New("strategy: invalid configuration", goerrors.CategoryValidation).
				WithTextCode("INVALID_CONFIG")
)

// UnknownStrategyError is returned at construction time when the variant
// is not one of the known algorithms.
type UnknownStrategyError struct {
	Variant string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("strategy: unknown algorithm variant %q (known: %v)", e.Variant, Variants())
}

func (e *UnknownStrategyError) Unwrap() error { return ErrUnknownStrategy }

// UnsupportedOperationError is returned by Context.Call when the bound
// algorithm does not expose the requested capability.
type UnsupportedOperationError struct {
	Wrapper   string
	Attribute string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("strategy: %s has no operation %q", e.Wrapper, e.Attribute)
}

func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOperation }

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "strategy: config error in field " + e.Field + ": " + e.Message
}

// Unwrap exposes both the sentinel and the underlying validation error.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidConfig}
	}
	return []error{ErrInvalidConfig, e.Err}
}
