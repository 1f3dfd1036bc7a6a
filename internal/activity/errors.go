package activity

import "fmt"

// ValidationError is returned when an input cannot be interpreted,
// e.g. a date that is not a real YYYY-MM-DD calendar date.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s [%s]: %s", e.Field, e.Value, e.Reason)
}
