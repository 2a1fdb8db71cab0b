// internal/repository/entry_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"financas/internal/domain"
)

// EntryRepository defines the interface for entry data operations.
type EntryRepository interface {
	// Save inserts the entry when it has no ID and fully overwrites it otherwise.
	Save(ctx context.Context, q DBExecutor, entry *domain.Entry) error
	// Delete removes the entry by its ID.
	Delete(ctx context.Context, q DBExecutor, entry *domain.Entry) error
	// FindByID retrieves an entry by ID. Returns util.ErrNotFound when absent.
	FindByID(ctx context.Context, q DBExecutor, id int64) (*domain.Entry, error)
	// FindAll returns entries matching the filter, in repository-defined order.
	FindAll(ctx context.Context, q DBExecutor, filter domain.EntryFilter) ([]domain.Entry, error)
	// SumAmountByUserAndType aggregates amounts for a user and entry type.
	// The result is invalid (NULL) when the user has no entries of that type.
	SumAmountByUserAndType(ctx context.Context, q DBExecutor, userID int64, entryType domain.EntryType) (decimal.NullDecimal, error)
}
