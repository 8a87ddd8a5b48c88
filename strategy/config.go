package strategy

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultThreshold is the largest input the Auto variant hands to the
// insertion algorithm.
const DefaultThreshold = 64

// Config exposes strategy selection options.
type Config struct {
	// Threshold is the input length up to which Auto picks Insertion.
	// Longer inputs use Library. Must be greater than 0.
	Threshold int `json:"threshold" mapstructure:"threshold"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return fromValidation(validation.ValidateStruct(&c,
		validation.Field(&c.Threshold, validation.Required, validation.Min(1)),
	))
}

// fromValidation converts ozzo validation errors into a *ConfigError naming
// the first offending field.
func fromValidation(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ConfigError{Message: err.Error(), Err: err}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	first := fields[0]
	return &ConfigError{
		Field:   first,
		Message: fieldErrs[first].Error(),
		Err:     err,
	}
}
