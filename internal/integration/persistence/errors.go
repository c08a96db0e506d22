// Package persistence implements repository interfaces for database operations.
package persistence

import (
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// errReadOnly is returned by every write against the expense service database.
func errReadOnly(operation string) error {
	return domainerror.NewRemoteError(
		domainerror.ErrCodeReadOnlyDataSource,
		0,
		operation+" is not available with the database data source",
		domainerror.ErrReadOnlyDataSource,
	)
}
