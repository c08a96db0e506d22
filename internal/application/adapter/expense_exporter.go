// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// ExportRow is one expense line of an export, with the category already resolved.
type ExportRow struct {
	Date         time.Time
	Description  string
	CategoryName string
	Amount       decimal.Decimal
	Note         string
}

// ExpenseExporter renders expenses into a downloadable document.
type ExpenseExporter interface {
	// Export writes rows followed by a total line to w.
	Export(w io.Writer, rows []ExportRow) error

	// ContentType returns the MIME type of the produced document.
	ContentType() string

	// FileExtension returns the extension used for download file names.
	FileExtension() string
}
