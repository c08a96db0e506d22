// Package error defines domain-specific errors for the expense tracker gateway.
package error

import "errors"

// Budget alert e-mail errors.
var (
	// ErrEmailQueueFull is returned when the in-memory queue cannot accept more jobs.
	ErrEmailQueueFull = errors.New("email queue is full")

	// ErrBudgetAlertQueued is returned when an alert for the same budget and
	// month is already in the queue.
	ErrBudgetAlertQueued = errors.New("budget alert already queued")

	// ErrInvalidTemplate is returned for a job whose template is unknown.
	ErrInvalidTemplate = errors.New("invalid email template")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeEmailQueueFailed  EmailErrorCode = "EMAIL-010001"
	ErrCodeEmailQueueFull    EmailErrorCode = "EMAIL-010002"
	ErrCodeBudgetAlertQueued EmailErrorCode = "EMAIL-010003"

	// Delivery errors (02XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	// Template errors (03XXXX)
	ErrCodeInvalidTemplate EmailErrorCode = "EMAIL-030001"
)

// EmailError is a queueing or delivery failure. Permanent delivery failures
// are never retried by the worker.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// IsPermanent reports whether retrying the delivery cannot succeed.
func (e *EmailError) IsPermanent() bool {
	return e.Code == ErrCodePermanentEmailFailure
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
