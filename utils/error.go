package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

// ErrorPermissionDenied is returned when the caller's role does not allow
// the attempted operation (e.g. recording an approval without a mapped track).
var ErrorPermissionDenied = errors.New("permission denied")

// ErrorValidation marks input errors caught before any write.
// Wrap with a cause message via NewValidationError.
var ErrorValidation = errors.New("validation failed")

func NewValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrorValidation, fmt.Sprintf(format, args...))
}
