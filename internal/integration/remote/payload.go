package remote

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// legacyAllCategoriesName is the category name older budgets carry to mean
// "no category restriction".
const legacyAllCategoriesName = "All Categories"

var (
	errNegativeAmount   = errors.New("amount is negative")
	errMissingAmount    = errors.New("amount is missing")
	errEmptyDescription = errors.New("description is empty")
	errBadDate          = errors.New("date is not a calendar date")
	errBadMonth         = errors.New("month is not YYYY-MM")
	errMissingID        = errors.New("id is missing")
)

// flexibleID accepts a JSON string or number and keeps its text.
type flexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexibleID(n.String())
	return nil
}

// flexibleAmount accepts a JSON number or numeric string without going
// through float64.
type flexibleAmount struct {
	Value decimal.Decimal
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexibleAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = flexibleAmount{}
		return nil
	}

	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}

	value, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("amount %q is not numeric: %w", text, err)
	}
	*f = flexibleAmount{Value: value, Set: true}
	return nil
}

// expensePayload is an expense as the remote service sends it.
type expensePayload struct {
	ID              flexibleID     `json:"id"`
	Amount          flexibleAmount `json:"amount"`
	Description     string         `json:"description"`
	CategoryID      flexibleID     `json:"categoryId"`
	CategoryIDSnake flexibleID     `json:"category_id"`
	Date            string         `json:"date"`
	CreatedAt       string         `json:"createdAt"`
	CreatedAtSnake  string         `json:"created_at"`
	Note            *string        `json:"note"`
}

func (p expensePayload) toEntity() (entity.Expense, error) {
	if p.ID == "" {
		return entity.Expense{}, errMissingID
	}
	if !p.Amount.Set {
		return entity.Expense{}, errMissingAmount
	}
	if p.Amount.Value.IsNegative() {
		return entity.Expense{}, errNegativeAmount
	}

	description := strings.TrimSpace(p.Description)
	if description == "" {
		return entity.Expense{}, errEmptyDescription
	}

	date, err := parseCalendarDate(p.Date)
	if err != nil {
		return entity.Expense{}, err
	}

	categoryID := string(p.CategoryID)
	if categoryID == "" {
		categoryID = string(p.CategoryIDSnake)
	}

	createdRaw := p.CreatedAt
	if createdRaw == "" {
		createdRaw = p.CreatedAtSnake
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, createdRaw)

	expense := entity.Expense{
		ID:          string(p.ID),
		Amount:      p.Amount.Value,
		Description: description,
		CategoryID:  categoryID,
		Date:        date,
		CreatedAt:   createdAt.UTC(),
	}
	if p.Note != nil {
		expense.Note = strings.TrimSpace(*p.Note)
	}

	return expense, nil
}

// categoryPayload is a category as the remote service sends it.
type categoryPayload struct {
	ID    flexibleID `json:"id"`
	Name  string     `json:"name"`
	Icon  string     `json:"icon"`
	Color string     `json:"color"`
}

func (p categoryPayload) toEntity() (entity.Category, error) {
	if p.ID == "" {
		return entity.Category{}, errMissingID
	}
	return entity.Category{
		ID:    string(p.ID),
		Name:  strings.TrimSpace(p.Name),
		Icon:  p.Icon,
		Color: p.Color,
	}, nil
}

// budgetPayload is a budget as the remote service sends it. The embedded
// category is only read to recognise the legacy all-categories marker.
type budgetPayload struct {
	ID              flexibleID       `json:"id"`
	Amount          flexibleAmount   `json:"amount"`
	Month           string           `json:"month"`
	CategoryID      flexibleID       `json:"categoryId"`
	CategoryIDSnake flexibleID       `json:"category_id"`
	Category        *categoryPayload `json:"category"`
	UserID          flexibleID       `json:"userId"`
	UserIDSnake     flexibleID       `json:"user_id"`
}

func (p budgetPayload) toEntity() (entity.Budget, error) {
	if p.ID == "" {
		return entity.Budget{}, errMissingID
	}
	if !p.Amount.Set {
		return entity.Budget{}, errMissingAmount
	}

	month, err := parseMonth(p.Month)
	if err != nil {
		return entity.Budget{}, err
	}

	budget := entity.Budget{
		ID:     string(p.ID),
		Amount: p.Amount.Value,
		Month:  month,
		UserID: string(p.UserID),
	}
	if budget.UserID == "" {
		budget.UserID = string(p.UserIDSnake)
	}

	categoryID := string(p.CategoryID)
	if categoryID == "" {
		categoryID = string(p.CategoryIDSnake)
	}
	if categoryID == "" && p.Category != nil {
		categoryID = string(p.Category.ID)
	}
	legacyAll := p.Category != nil && strings.EqualFold(strings.TrimSpace(p.Category.Name), legacyAllCategoriesName)
	if categoryID != "" && !legacyAll {
		budget.CategoryID = &categoryID
	}

	return budget, nil
}

// userPayload is a user profile as the remote service sends it.
type userPayload struct {
	ID       flexibleID `json:"id"`
	Email    string     `json:"email"`
	Name     string     `json:"name"`
	DarkMode bool       `json:"darkMode"`
}

func (p *userPayload) toEntity() *entity.User {
	if p == nil {
		return nil
	}
	return &entity.User{
		ID:       string(p.ID),
		Email:    p.Email,
		Name:     p.Name,
		DarkMode: p.DarkMode,
	}
}

// authResponse is returned by login and registration.
type authResponse struct {
	AccessToken      string       `json:"access_token"`
	AccessTokenCamel string       `json:"accessToken"`
	User             *userPayload `json:"user"`
}

func (r authResponse) toEntity() (*entity.AuthResult, error) {
	token := r.AccessToken
	if token == "" {
		token = r.AccessTokenCamel
	}
	if token == "" {
		return nil, errors.New("access token is missing")
	}
	return &entity.AuthResult{AccessToken: token, User: r.User.toEntity()}, nil
}

// listPayload accepts either a bare JSON array or an object wrapping it in "data".
type listPayload[T any] struct {
	Items []T
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *listPayload[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Data []T `json:"data"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		l.Items = wrapped.Data
		return nil
	}
	return json.Unmarshal(data, &l.Items)
}

// expenseRequest is the body of expense writes.
type expenseRequest struct {
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	CategoryID  string      `json:"categoryId"`
	Date        string      `json:"date"`
	Note        string      `json:"note,omitempty"`
}

func newExpenseRequest(d entity.ExpenseDraft) expenseRequest {
	return expenseRequest{
		Amount:      json.Number(d.Amount.String()),
		Description: d.Description,
		CategoryID:  d.CategoryID,
		Date:        d.Date.Format(time.DateOnly),
		Note:        d.Note,
	}
}

// budgetRequest is the body of budget writes.
type budgetRequest struct {
	Amount     json.Number `json:"amount"`
	Month      string      `json:"month"`
	CategoryID *string     `json:"categoryId"`
}

func newBudgetRequest(d entity.BudgetDraft) budgetRequest {
	return budgetRequest{
		Amount:     json.Number(d.Amount.String()),
		Month:      d.Month.String(),
		CategoryID: d.CategoryID,
	}
}

// parseCalendarDate reads the date as written, ignoring any time part.
// "2024-03-01" and "2024-03-01T23:30:00-05:00" both give March 1st.
func parseCalendarDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < len(time.DateOnly) {
		return time.Time{}, errBadDate
	}
	d, err := time.Parse(time.DateOnly, raw[:len(time.DateOnly)])
	if err != nil {
		return time.Time{}, errBadDate
	}
	return d, nil
}

// parseMonth accepts "2024-03" or any string starting with a calendar date.
func parseMonth(raw string) (entity.MonthKey, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) >= len(time.DateOnly) {
		d, err := parseCalendarDate(raw)
		if err != nil {
			return "", errBadMonth
		}
		return entity.MonthKeyOf(d), nil
	}
	month, err := entity.ParseMonthKey(raw)
	if err != nil {
		return "", errBadMonth
	}
	return month, nil
}
