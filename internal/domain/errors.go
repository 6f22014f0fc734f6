package domain

import (
	"errors"
	"fmt"
)

// ErrManifestNotFound marks a manifest id with no backing row, as distinct
// from a store that failed to answer.
var ErrManifestNotFound = errors.New("manifest not found")

// ErrVersionConflict is returned by a compare-and-swap manifest update whose
// expected version no longer matches the stored row.
var ErrVersionConflict = errors.New("manifest version conflict")

// Caller-supplied input violated a precondition.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
