package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers connectivity problems and timeouts.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotFound marks requests referencing an unknown or deleted entity.
	ErrNotFound = errors.New("not found")
)

// Error is a rejection produced by the backend, carrying the message and
// error code from the response envelope. It unwraps to a sentinel where the
// HTTP status allows a classification.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string

	sentinel error
}

func newError(status int, code, message string) *Error {
	e := &Error{HTTPStatus: status, Code: code, Message: message}
	if status == 404 {
		e.sentinel = ErrNotFound
	}
	return e
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server rejected request (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server rejected request (http %d): %s", e.HTTPStatus, e.Message)
}

func (e *Error) Unwrap() error { return e.sentinel }
