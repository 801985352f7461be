package app

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage reports missing or malformed command-line arguments
	ErrUsage = errors.New("usage error")
	// ErrValidation reports an input that cannot be bundled
	ErrValidation = errors.New("validation error")
	// ErrNoFiles reports that nothing matched after filtering
	ErrNoFiles = errors.New("nothing to bundle")
)

// IOError wraps a failure while reading sources or preparing/writing the bundle
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// exitError marks an error that has already been reported to the user
type exitError struct {
	err error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
