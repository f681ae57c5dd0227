package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when an operation is not legal in the
// engine's current state, e.g. starting a run while one is active.
var ErrInvalidState = errors.New("invalid state: run already in progress")

// ErrNothingSelected is returned by Start when no items are selected.
var ErrNothingSelected = errors.New("no items selected")

// PermissionError marks an item that needs elevated privileges the process
// does not hold. Reported per item; never aborts the run.
type PermissionError struct {
	Item string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s: permission denied (requires elevated privileges)", e.Item)
}

// ActionError wraps a failure from the underlying cleaning action.
type ActionError struct {
	Item string
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Item, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
