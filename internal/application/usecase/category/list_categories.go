// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []CategoryOutput
	Defaults   bool // True when the built-in categories were served
}

// CategoryOutput represents a single category with display attributes resolved.
type CategoryOutput struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists the caller's categories, falling back to the built-in set
// when the data source has none.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, session entity.Session) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.List(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &ListCategoriesOutput{}
	if len(categories) == 0 {
		categories = entity.DefaultCategories()
		output.Defaults = true
	}

	output.Categories = make([]CategoryOutput, 0, len(categories))
	for _, c := range categories {
		output.Categories = append(output.Categories, ToOutput(c))
	}

	return output, nil
}

// ToOutput fills in the default icon and color.
func ToOutput(c entity.Category) CategoryOutput {
	out := CategoryOutput{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color}
	if out.Icon == "" {
		out.Icon = entity.DefaultCategoryIcon
	}
	if out.Color == "" {
		out.Color = entity.DefaultCategoryColor
	}
	return out
}
