package domain

import "fmt"

// TableLookupError reports a missing reference-table entry. It is fatal:
// the run aborts rather than falling back to a default.
type TableLookupError struct {
	Table string
	Key   string
}

func (e *TableLookupError) Error() string {
	return fmt.Sprintf("table lookup failed: no entry for %s in table %s", e.Key, e.Table)
}

// NewTableLookupError creates a new TableLookupError.
func NewTableLookupError(table, key string) error {
	return &TableLookupError{Table: table, Key: key}
}

// InvalidAgeError reports an age outside the range the mortality tables cover.
type InvalidAgeError struct {
	Age    string
	Reason string
}

func (e *InvalidAgeError) Error() string {
	return fmt.Sprintf("invalid age %s: %s", e.Age, e.Reason)
}

// NewInvalidAgeError creates a new InvalidAgeError.
func NewInvalidAgeError(age, reason string) error {
	return &InvalidAgeError{Age: age, Reason: reason}
}

// InvalidConfigError reports malformed case input, surfaced before any
// computation begins.
type InvalidConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid case config: %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid case config: %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}

// NewInvalidConfigError creates a new InvalidConfigError.
func NewInvalidConfigError(field, reason string) error {
	return &InvalidConfigError{Field: field, Reason: reason}
}
