// Package entity defines the core business entities for the domain layer.
package entity

// DefaultCategoryColor is the display color for categories without one.
const DefaultCategoryColor = "#6B7280"

// DefaultCategoryIcon is the display icon for categories without one.
const DefaultCategoryIcon = "tag"

// Category represents a user-facing classification label for expenses.
type Category struct {
	ID    string
	Name  string
	Icon  string // Optional
	Color string // Optional
}

// defaultCategories mirrors the built-in categories offered by the client.
var defaultCategories = []Category{
	{ID: "food", Name: "Food & Dining", Color: "#EF4444"},
	{ID: "transportation", Name: "Transportation", Color: "#3B82F6"},
	{ID: "shopping", Name: "Shopping", Color: "#8B5CF6"},
	{ID: "entertainment", Name: "Entertainment", Color: "#F59E0B"},
	{ID: "bills", Name: "Bills & Utilities", Color: "#10B981"},
	{ID: "healthcare", Name: "Healthcare", Color: "#EC4899"},
	{ID: "education", Name: "Education", Color: "#06B6D4"},
	{ID: "travel", Name: "Travel", Color: "#84CC16"},
	{ID: "other", Name: "Other", Color: "#6B7280"},
}

// DefaultCategories returns a fresh copy of the built-in categories.
func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// CategoryIndex resolves category ids to display attributes.
type CategoryIndex struct {
	byID map[string]Category
}

// NewCategoryIndex builds an index over the given categories, falling back to
// the built-in categories for ids the caller does not know about.
func NewCategoryIndex(categories []Category) *CategoryIndex {
	idx := &CategoryIndex{byID: make(map[string]Category, len(categories)+len(defaultCategories))}
	for _, c := range defaultCategories {
		idx.byID[c.ID] = c
	}
	for _, c := range categories {
		idx.byID[c.ID] = c
	}
	return idx
}

// Lookup returns the category for id and whether it was known.
func (i *CategoryIndex) Lookup(id string) (Category, bool) {
	c, ok := i.byID[id]
	return c, ok
}

// Name returns the display name for id, or the id itself when unknown.
func (i *CategoryIndex) Name(id string) string {
	if c, ok := i.byID[id]; ok && c.Name != "" {
		return c.Name
	}
	return id
}

// Color returns the display color for id.
func (i *CategoryIndex) Color(id string) string {
	if c, ok := i.byID[id]; ok && c.Color != "" {
		return c.Color
	}
	return DefaultCategoryColor
}

// Icon returns the display icon for id.
func (i *CategoryIndex) Icon(id string) string {
	if c, ok := i.byID[id]; ok && c.Icon != "" {
		return c.Icon
	}
	return DefaultCategoryIcon
}
