package services

import "errors"

var (
	// ErrNoFiles rejects an upload or task creation with an empty file
	// selection before any network call is attempted.
	ErrNoFiles = errors.New("no files selected")
)
