package billing

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports caller input rejected before any write happened.
// It is surfaced to the end user verbatim and never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a failed read or write at the storage boundary.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// PartialApplicationError reports a distribution loop that failed after
// some invoices had already been allocated. The whole transaction is
// rolled back, so no allocation in Applied actually persisted; the list
// tells the caller how far the run got before it stopped.
type PartialApplicationError struct {
	Applied  []uuid.UUID
	FailedAt uuid.UUID
	Err      error
}

func (e *PartialApplicationError) Error() string {
	return fmt.Sprintf("distribution failed at invoice %s after %d allocation(s), all rolled back: %v",
		e.FailedAt, len(e.Applied), e.Err)
}

func (e *PartialApplicationError) Unwrap() error {
	return e.Err
}

// NotificationError reports a failed post-creation email dispatch. It is
// always non-fatal: the invoice it accompanies was created successfully.
type NotificationError struct {
	Recipient string
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("failed to send invoice email to %s: %v", e.Recipient, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
