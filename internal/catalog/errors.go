package catalog

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Reason classifies why a cleaner could not remove a file.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonPermissionDenied
	ReasonLocked
	ReasonNotFound
)

func (r Reason) String() string {
	switch r {
	case ReasonPermissionDenied:
		return "permission denied"
	case ReasonLocked:
		return "file in use"
	case ReasonNotFound:
		return "not found"
	}
	return "access error"
}

// RemoveError reports a file a cleaner failed to delete, with enough
// context for the run log and the per-item failure reason.
type RemoveError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("remove %s %s: %s", e.Kind, e.Path, e.Reason())
}

func (e *RemoveError) Unwrap() error {
	return e.Err
}

// Reason derives the classification from the wrapped error.
func (e *RemoveError) Reason() Reason {
	switch {
	case errors.Is(e.Err, os.ErrPermission):
		return ReasonPermissionDenied
	case errors.Is(e.Err, syscall.EBUSY), errors.Is(e.Err, syscall.ETXTBSY):
		return ReasonLocked
	case errors.Is(e.Err, os.ErrNotExist):
		return ReasonNotFound
	}
	return ReasonUnknown
}
