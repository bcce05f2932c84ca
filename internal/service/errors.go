package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthorizationDenied is returned when the role gate refuses a caller.
	ErrAuthorizationDenied = errors.New("authorization denied")
	// ErrFileUnavailable is returned when a material has no file to open.
	ErrFileUnavailable  = errors.New("file not available for this item")
	ErrMaterialNotFound = errors.New("material not found")
)

// FetchError reports a failed read of a collection.
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError reports a failed write. The caller's input is left untouched
// so it can be resubmitted.
type MutationError struct {
	Collection string
	Err        error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Collection, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// BestEffortFailure describes a secondary operation that failed after the
// primary action already succeeded. It is logged and never returned to clients.
type BestEffortFailure struct {
	Op  string
	Err error
}

func (e *BestEffortFailure) Error() string {
	return fmt.Sprintf("best-effort %s: %v", e.Op, e.Err)
}

func (e *BestEffortFailure) Unwrap() error { return e.Err }
