// Package remote defines the uniform failure signals for operations
// against the backing data store. Every data-access call resolves to
// either a value, ErrNotFound, a FetchError, or a WriteError, so screen
// controllers can branch on failure kind without inspecting driver
// errors.
package remote

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that an identifier did not resolve to a record.
// It is a sentinel: callers check it with errors.Is. A not-found result
// is distinct from a transport or store failure.
var ErrNotFound = errors.New("record does not exist")

// FetchError wraps a failed read. A failed read yields no records,
// never a truncated list.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// WriteError wraps a failed create, update, or delete. Local state must
// not be advanced when a write fails.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// ValidationError reports input rejected locally, before any store call
// is attempted. Msg is user-facing.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsNotFound reports whether err resolves to a missing record,
// including a not-found wrapped inside a fetch or write failure.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err is a local validation rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
