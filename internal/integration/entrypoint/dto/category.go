package dto

import (
	"github.com/expense-tracker/gateway/internal/application/usecase/category"
)

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Defaults   bool               `json:"defaults"`
}

// ToCategoryListResponse converts the use case output to a response DTO.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryResponse{
			ID:    c.ID,
			Name:  c.Name,
			Icon:  c.Icon,
			Color: c.Color,
		}
	}
	return CategoryListResponse{
		Categories: categories,
		Defaults:   output.Defaults,
	}
}
