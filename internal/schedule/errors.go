package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers malformed or out-of-policy submissions: bad date
	// ordering, spans over the booking horizon, empty weekday sets, start
	// dates in the past.
	ErrValidation = errors.New("invalid submission")

	// ErrCapacityExceeded marks a single date whose slot is full. It fails
	// that date, not the submission.
	ErrCapacityExceeded = errors.New("time slot is at capacity")

	// ErrNotOwner rejects a submission for a membership the caller does not
	// hold.
	ErrNotOwner = errors.New("membership does not belong to caller")

	// ErrPersistence wraps store failures that force a full rollback.
	ErrPersistence = errors.New("persistence failure")
)

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func persistenceErr(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
