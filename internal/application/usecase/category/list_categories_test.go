package category

import (
	"context"
	"errors"
	"testing"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

type stubCategoryRepo struct {
	categories []entity.Category
	err        error
}

func (s *stubCategoryRepo) List(ctx context.Context, session entity.Session) ([]entity.Category, error) {
	return s.categories, s.err
}

func TestListCategoriesUseCase(t *testing.T) {
	t.Run("falls back to defaults when empty", func(t *testing.T) {
		uc := NewListCategoriesUseCase(&stubCategoryRepo{})

		out, err := uc.Execute(context.Background(), entity.Session{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Defaults {
			t.Error("expected defaults flag")
		}
		if len(out.Categories) != 9 {
			t.Errorf("expected 9 default categories, got %d", len(out.Categories))
		}
	})

	t.Run("fills display defaults", func(t *testing.T) {
		uc := NewListCategoriesUseCase(&stubCategoryRepo{categories: []entity.Category{{ID: "7", Name: "Pets"}}})

		out, err := uc.Execute(context.Background(), entity.Session{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Defaults {
			t.Error("expected remote categories")
		}
		got := out.Categories[0]
		if got.Color != entity.DefaultCategoryColor || got.Icon != entity.DefaultCategoryIcon {
			t.Errorf("expected default display attributes, got %+v", got)
		}
	})

	t.Run("propagates errors", func(t *testing.T) {
		uc := NewListCategoriesUseCase(&stubCategoryRepo{err: errors.New("down")})
		if _, err := uc.Execute(context.Background(), entity.Session{}); err == nil {
			t.Error("expected an error")
		}
	})
}
