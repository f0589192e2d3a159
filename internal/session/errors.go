package session

import (
	"errors"
	"fmt"
)

var ErrNoPendingLocation = errors.New("no location picked: pick a spot on the map first")

type ValidationReason string

const (
	NonNumeric  ValidationReason = "NonNumeric"
	NonPositive ValidationReason = "NonPositive"
	UnknownKind ValidationReason = "UnknownKind"
)

// ValidationError is a user input defect. It is always recoverable.
type ValidationError struct {
	Reason ValidationReason
	Field  string
	Value  string
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case NonNumeric:
		return fmt.Sprintf("%s must be a number, got %q", e.Field, e.Value)
	case NonPositive:
		return fmt.Sprintf("%s must be a positive number, got %s", e.Field, e.Value)
	case UnknownKind:
		return fmt.Sprintf("workout type must be running or cycling, got %q", e.Value)
	}
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

type PersistenceOp string

const (
	WriteFailed PersistenceOp = "WriteFailed"
	ReadFailed  PersistenceOp = "ReadFailed"
	Corrupt     PersistenceOp = "Corrupt"
)

// PersistenceError reports a durable store failure. The session keeps
// running: read failures start empty, write failures switch to memory only.
type PersistenceError struct {
	Op  PersistenceOp
	Err error
}

func (e *PersistenceError) Error() string {
	switch e.Op {
	case WriteFailed:
		return fmt.Sprintf("could not save workouts, continuing in memory only: %v", e.Err)
	case ReadFailed:
		return fmt.Sprintf("could not read saved workouts, starting empty and not saving: %v", e.Err)
	case Corrupt:
		return fmt.Sprintf("saved workouts are unreadable, starting empty: %v", e.Err)
	}
	return fmt.Sprintf("persistence error: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError with the given reason.
func IsValidation(err error, reason ValidationReason) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Reason == reason
}

// IsPersistence reports whether err is a PersistenceError for op.
func IsPersistence(err error, op PersistenceOp) bool {
	var pe *PersistenceError
	return errors.As(err, &pe) && pe.Op == op
}
