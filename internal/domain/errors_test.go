package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableLookupError(t *testing.T) {
	err := NewTableLookupError("mortality", "female/age 150")
	assert.EqualError(t, err, "table lookup failed: no entry for female/age 150 in table mortality")

	var lookup *TableLookupError
	assert.ErrorAs(t, err, &lookup)
	assert.Equal(t, "mortality", lookup.Table)
}

func TestInvalidAgeError(t *testing.T) {
	err := NewInvalidAgeError("-3", "age must not be negative")
	assert.EqualError(t, err, "invalid age -3: age must not be negative")

	var invalidAge *InvalidAgeError
	assert.ErrorAs(t, err, &invalidAge)
}

func TestInvalidConfigError(t *testing.T) {
	err := NewInvalidConfigError("person.dob", "birth date is required")
	assert.EqualError(t, err, "invalid case config: person.dob: birth date is required")

	var invalid *InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "person.dob", invalid.Field)
}

func TestInvalidConfigErrorUnwrap(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := &InvalidConfigError{Field: "file", Reason: "parse failed", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "parse failed")
}
