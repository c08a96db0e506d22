// Package expense contains expense-related use cases.
package expense

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum number of characters in a description.
	MaxDescriptionLength = 255

	// MaxNoteLength is the maximum number of characters in a note.
	MaxNoteLength = 500
)

// ExpenseInput holds the user-supplied fields of an expense.
type ExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	CategoryID  string
	Date        time.Time
	Note        string
}

// toDraft validates the input and normalizes it into a draft.
func (in ExpenseInput) toDraft() (entity.ExpenseDraft, error) {
	if in.Amount.IsNegative() {
		return entity.ExpenseDraft{}, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return entity.ExpenseDraft{}, domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyDescription,
			"description is required",
			domainerror.ErrEmptyDescription,
		)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return entity.ExpenseDraft{}, domainerror.NewExpenseError(
			domainerror.ErrCodeDescriptionTooLong,
			"description must be at most 255 characters",
			domainerror.ErrDescriptionTooLong,
		)
	}

	note := strings.TrimSpace(in.Note)
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return entity.ExpenseDraft{}, domainerror.NewExpenseError(
			domainerror.ErrCodeNoteTooLong,
			"note must be at most 500 characters",
			domainerror.ErrNoteTooLong,
		)
	}

	categoryID := strings.TrimSpace(in.CategoryID)
	if categoryID == "" {
		return entity.ExpenseDraft{}, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}

	if in.Date.IsZero() {
		return entity.ExpenseDraft{}, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	y, m, d := in.Date.Date()
	return entity.ExpenseDraft{
		Amount:      in.Amount,
		Description: description,
		CategoryID:  categoryID,
		Date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Note:        note,
	}, nil
}

// mapNotFound turns a remote 404 into an expense not found error.
func mapNotFound(err error) error {
	if errors.Is(err, domainerror.ErrRemoteNotFound) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return err
}
