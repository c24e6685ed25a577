package todo

import (
	"errors"
	"fmt"

	"github.com/nhle/todolists/internal/store"
)

// ErrNotFound indicates a referenced list or item does not exist.
var ErrNotFound = store.ErrNotFound

// ValidationError reports a field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is matches any *ValidationError with the same field and reason, so
// sentinels compare by value rather than identity.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t != nil && *e == *t
}

const duplicateTitleReason = "a list with this title already exists"

// ErrDuplicateTitle matches, via errors.Is, the error returned when a list
// title is already taken. Returned errors are fresh *ValidationError values;
// this sentinel is only a comparison target.
var ErrDuplicateTitle error = &ValidationError{Field: "title", Reason: duplicateTitleReason}

func duplicateTitleError() *ValidationError {
	return &ValidationError{Field: "title", Reason: duplicateTitleReason}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
