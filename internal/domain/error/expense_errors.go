// Package error defines domain-specific errors for the expense tracker gateway.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned for missing, negative or non-numeric amounts.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrEmptyDescription is returned when the description is blank after trimming.
	ErrEmptyDescription = errors.New("empty description")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNoteTooLong is returned when the note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")

	// ErrMissingCategory is returned when no category is given.
	ErrMissingCategory = errors.New("missing category")

	// ErrInvalidExpenseDate is returned when the date is missing or malformed.
	ErrInvalidExpenseDate = errors.New("invalid expense date")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010001"
	ErrCodeEmptyDescription     ExpenseErrorCode = "EXP-010002"
	ErrCodeDescriptionTooLong   ExpenseErrorCode = "EXP-010003"
	ErrCodeNoteTooLong          ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingCategory      ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidExpenseDate   ExpenseErrorCode = "EXP-010006"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010007"
	ErrCodeInvalidFilter        ExpenseErrorCode = "EXP-010008"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"

	// Export errors (03XXXX)
	ErrCodeExportFailed ExpenseErrorCode = "EXP-030001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
