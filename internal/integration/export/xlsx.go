// Package export renders expense lists as downloadable spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/expense-tracker/gateway/internal/application/adapter"
)

const sheetName = "Expenses"

var headers = []string{"Date", "Description", "Category", "Amount", "Note"}

// XLSXExporter implements adapter.ExpenseExporter with excelize.
type XLSXExporter struct{}

// NewXLSXExporter creates a new spreadsheet exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export writes one sheet with a header row, one row per expense and a total row.
func (e *XLSXExporter) Export(w io.Writer, rows []adapter.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	total := decimal.Zero
	for i, row := range rows {
		line := i + 2
		amount, _ := row.Amount.Round(2).Float64()
		values := []interface{}{
			row.Date.Format("2006-01-02"),
			row.Description,
			row.CategoryName,
			amount,
			row.Note,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, line)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		total = total.Add(row.Amount)
	}

	totalLine := len(rows) + 2
	grandTotal, _ := total.Round(2).Float64()
	_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalLine), "Total")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalLine), grandTotal)
	if err := f.SetCellStyle(sheetName, "D2", fmt.Sprintf("D%d", totalLine), amountStyle); err != nil {
		return err
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 40)
	_ = f.SetColWidth(sheetName, "C", "C", 20)
	_ = f.SetColWidth(sheetName, "D", "D", 14)
	_ = f.SetColWidth(sheetName, "E", "E", 40)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ContentType returns the XLSX MIME type.
func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension returns "xlsx".
func (e *XLSXExporter) FileExtension() string {
	return "xlsx"
}

var _ adapter.ExpenseExporter = (*XLSXExporter)(nil)
