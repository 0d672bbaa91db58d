package httperr

import (
	"errors"
	"fmt"
)

// Application error taxonomy. Repositories and services return these;
// the HTTP layer never invents status codes on its own (see Respond).
var (
	// ErrDuplicateEmail carries the exact message the API contract
	// promises for a repeated registration.
	ErrDuplicateEmail = errors.New("The client is already registered")

	// ErrClientNotFound is the login-time "no such email" failure. It is
	// deliberately distinguishable from ErrInvalidCredentials; the
	// resulting account-enumeration leak matches the reference behavior
	// and is an accepted tradeoff.
	ErrClientNotFound = errors.New("Client not found")

	ErrInvalidCredentials = errors.New("Incorrect password")

	// ErrNotFound is the generic row-not-found for update/delete calls
	// whose affected count came back zero.
	ErrNotFound = errors.New("Record not found")

	ErrMissingToken = errors.New("Missing authorization token")

	// ErrInvalidToken is the uniform outward signal for every token
	// failure (bad signature, expired, malformed). The distinction is
	// logged server-side only.
	ErrInvalidToken = errors.New("Invalid token")
)

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StoreError wraps a persistence failure. The underlying message is
// passed through verbatim, matching the reference behavior.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError, passing nil through untouched.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}
