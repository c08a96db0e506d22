// Package error defines domain-specific errors for the expense tracker gateway.
package error

import (
	"errors"
	"fmt"
)

// Remote data source errors.
var (
	// ErrRemoteUnauthorized is returned when the remote service rejects the caller's token.
	ErrRemoteUnauthorized = errors.New("remote service rejected credentials")

	// ErrRemoteNotFound is returned when the remote resource does not exist.
	ErrRemoteNotFound = errors.New("remote resource not found")

	// ErrRemoteRejected is returned when the remote service refuses a request.
	ErrRemoteRejected = errors.New("remote service rejected the request")

	// ErrRemoteUnavailable is returned on transport failures and 5xx responses.
	ErrRemoteUnavailable = errors.New("remote service unavailable")

	// ErrMalformedPayload is returned when a remote payload fails validation.
	ErrMalformedPayload = errors.New("malformed remote payload")

	// ErrReadOnlyDataSource is returned by data sources that cannot write.
	ErrReadOnlyDataSource = errors.New("data source is read-only")
)

// RemoteErrorCode defines error codes for remote data source errors.
// Format: RMT-XXYYYY where XX is category and YYYY is specific error.
type RemoteErrorCode string

const (
	ErrCodeRemoteUnauthorized RemoteErrorCode = "RMT-010001"
	ErrCodeRemoteNotFound     RemoteErrorCode = "RMT-010002"
	ErrCodeRemoteRejected     RemoteErrorCode = "RMT-010003"
	ErrCodeRemoteUnavailable  RemoteErrorCode = "RMT-020001"
	ErrCodeMalformedPayload   RemoteErrorCode = "RMT-020002"
	ErrCodeReadOnlyDataSource RemoteErrorCode = "RMT-030001"
)

// RemoteError describes a failed call to the remote data source.
type RemoteError struct {
	Code       RemoteErrorCode
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError creates a new RemoteError.
func NewRemoteError(code RemoteErrorCode, statusCode int, message string, err error) *RemoteError {
	return &RemoteError{
		Code:       code,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}
