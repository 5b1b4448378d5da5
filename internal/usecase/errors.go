package usecase

import (
	"errors"
	"fmt"
)

// Caller-visible booking failures. None of them is retryable; storage errors
// surface separately as wrapped repository errors and abort the call.
var (
	ErrCapacityExceeded    = errors.New("activity capacity exceeded")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBookingCancelled    = errors.New("booking already cancelled")
)

// NotFoundError reports an entity reference that did not resolve.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
