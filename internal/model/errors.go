package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Handle errors
	ErrDuplicateHandle = errors.New("handle already exists")
	ErrNoHandle        = errors.New("no handle given and none derivable from name")
)

// DuplicateHandleError reports a handle that is already registered
type DuplicateHandleError struct {
	Handle string
}

// Error implements the error interface
func (e *DuplicateHandleError) Error() string {
	return fmt.Sprintf("handle %q already exists", e.Handle)
}

// Is lets errors.Is match ErrDuplicateHandle
func (e *DuplicateHandleError) Is(target error) bool {
	return target == ErrDuplicateHandle
}
