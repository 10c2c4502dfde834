// Package errs defines the two error classes the application reports:
// validation failures caused by client input and persistence failures
// raised by the store. Neither is retried.
package errs

import "fmt"

// ValidationError means the client-supplied input failed a precondition.
// It maps to a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(msg string) error {
	return &ValidationError{Msg: msg}
}

// PersistenceError means a store operation failed. It maps to a 500 response
// and carries the underlying diagnostic.
type PersistenceError struct {
	Msg string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Details returns the underlying diagnostic text, safe to include in a
// response body.
func (e *PersistenceError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func Persistence(msg string, err error) error {
	return &PersistenceError{Msg: msg, Err: err}
}
