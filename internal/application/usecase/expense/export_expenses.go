// Package expense contains expense-related use cases.
package expense

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/analytics"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// ExportExpensesInput represents the input for exporting expenses.
type ExportExpensesInput struct {
	Session entity.Session
	Filter  analytics.FilterSpec
}

// ExportExpensesOutput is a rendered export ready for download.
type ExportExpensesOutput struct {
	Content     []byte
	ContentType string
	FileName    string
	Rows        int
}

// ExportExpensesUseCase renders the filtered expense list into a document.
type ExportExpensesUseCase struct {
	snapshots adapter.SnapshotLoader
	exporter  adapter.ExpenseExporter
	now       func() time.Time
}

// NewExportExpensesUseCase creates a new ExportExpensesUseCase instance.
func NewExportExpensesUseCase(snapshots adapter.SnapshotLoader, exporter adapter.ExpenseExporter) *ExportExpensesUseCase {
	return &ExportExpensesUseCase{
		snapshots: snapshots,
		exporter:  exporter,
		now:       time.Now,
	}
}

// Execute exports the expenses matching the filter, newest first.
func (uc *ExportExpensesUseCase) Execute(ctx context.Context, input ExportExpensesInput) (*ExportExpensesOutput, error) {
	if err := input.Filter.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := uc.snapshots.Execute(ctx, input.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	expenses := analytics.NewestFirst(analytics.Filter(snapshot.Expenses, input.Filter))
	index := entity.NewCategoryIndex(snapshot.Categories)

	rows := make([]adapter.ExportRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, adapter.ExportRow{
			Date:         e.Date,
			Description:  e.Description,
			CategoryName: index.Name(e.CategoryID),
			Amount:       e.Amount,
			Note:         e.Note,
		})
	}

	var buf bytes.Buffer
	if err := uc.exporter.Export(&buf, rows); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExportFailed,
			"failed to export expenses",
			err,
		)
	}

	return &ExportExpensesOutput{
		Content:     buf.Bytes(),
		ContentType: uc.exporter.ContentType(),
		FileName:    fmt.Sprintf("expenses-%s.%s", uc.now().Format("2006-01-02"), uc.exporter.FileExtension()),
		Rows:        len(rows),
	}, nil
}
