package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

var (
	warningThreshold = decimal.NewFromInt(75)
	dangerThreshold  = decimal.NewFromInt(90)
)

// StatusTier maps a utilization percentage to a tier.
// Both thresholds are strict: exactly 90% is a warning, exactly 75% is good.
func StatusTier(percentage decimal.Decimal) entity.BudgetStatusTier {
	switch {
	case percentage.GreaterThan(dangerThreshold):
		return entity.BudgetStatusDanger
	case percentage.GreaterThan(warningThreshold):
		return entity.BudgetStatusWarning
	default:
		return entity.BudgetStatusGood
	}
}

// MatchesBudget reports whether an expense counts against the budget.
func MatchesBudget(b entity.Budget, e entity.Expense) bool {
	if e.Month() != b.Month {
		return false
	}
	if b.CoversAllCategories() {
		return true
	}
	return e.CategoryID == *b.CategoryID
}

// EvaluateBudget computes spending against a budget.
func EvaluateBudget(b entity.Budget, expenses []entity.Expense) (entity.BudgetStatus, error) {
	if !b.Amount.IsPositive() {
		return entity.BudgetStatus{}, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	spent := decimal.Zero
	matched := 0
	for _, e := range expenses {
		if MatchesBudget(b, e) {
			spent = spent.Add(contribution(e))
			matched++
		}
	}

	percentage := Percentage(spent, b.Amount)

	remaining := b.Amount.Sub(spent)
	overage := decimal.Zero
	if remaining.IsNegative() {
		overage = remaining.Neg()
		remaining = decimal.Zero
	}

	return entity.BudgetStatus{
		Budget:       b,
		Spent:        spent,
		Percentage:   percentage,
		Status:       StatusTier(percentage),
		Remaining:    remaining,
		Overage:      overage,
		MatchedCount: matched,
	}, nil
}

// BudgetEvaluation holds the statuses of a list of budgets.
type BudgetEvaluation struct {
	Statuses []entity.BudgetStatus
	Invalid  []string // Ids of budgets that could not be evaluated
}

// EvaluateBudgets evaluates each budget, setting aside the invalid ones.
func EvaluateBudgets(budgets []entity.Budget, expenses []entity.Expense) BudgetEvaluation {
	result := BudgetEvaluation{
		Statuses: make([]entity.BudgetStatus, 0, len(budgets)),
	}
	for _, b := range budgets {
		status, err := EvaluateBudget(b, expenses)
		if err != nil {
			result.Invalid = append(result.Invalid, b.ID)
			continue
		}
		result.Statuses = append(result.Statuses, status)
	}
	return result
}

// OverallBudget combines every budget of month into one all-category budget.
// It returns false when month has no valid budget.
func OverallBudget(budgets []entity.Budget, month entity.MonthKey) (entity.Budget, bool) {
	total := decimal.Zero
	for _, b := range budgets {
		if b.Month == month && b.Amount.IsPositive() {
			total = total.Add(b.Amount)
		}
	}
	if !total.IsPositive() {
		return entity.Budget{}, false
	}
	return entity.Budget{Amount: total, Month: month}, true
}
