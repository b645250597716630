package config

import "fmt"

type InvalidConfigError struct {
	field  string
	reason string
}

func NewInvalidConfigError(field, reason string) *InvalidConfigError {
	return &InvalidConfigError{field: field, reason: reason}
}

func (e *InvalidConfigError) Field() string {
	return e.field
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.field, e.reason)
}
