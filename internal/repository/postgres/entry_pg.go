// internal/repository/postgres/entry_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"financas/internal/domain"
	"financas/internal/repository"
	"financas/internal/util"
)

// EntryRepository implements repository.EntryRepository for PostgreSQL.
type EntryRepository struct {
	// Methods receive a DBExecutor directly, so no *sqlx.DB is held here.
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(db *sqlx.DB) repository.EntryRepository {
	return &EntryRepository{}
}

// Save inserts the entry when it has no ID yet and fully overwrites the
// stored row otherwise, preserving the identifier.
func (r *EntryRepository) Save(ctx context.Context, q repository.DBExecutor, entry *domain.Entry) error {
	if entry.ID == 0 {
		query := `INSERT INTO entries (description, month, year, user_id, amount, type, status, registered_at, created_at)
	              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
		err := q.QueryRowContext(ctx, query,
			entry.Description,
			entry.Month,
			entry.Year,
			entry.UserID,
			entry.Amount,
			entry.Type,
			entry.Status,
			entry.RegisteredAt,
			entry.CreatedAt,
		).Scan(&entry.ID)
		if err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}
		return nil
	}

	query := `UPDATE entries
	          SET description = $1, month = $2, year = $3, user_id = $4, amount = $5, type = $6, status = $7, registered_at = $8
	          WHERE id = $9`
	result, err := q.ExecContext(ctx, query,
		entry.Description,
		entry.Month,
		entry.Year,
		entry.UserID,
		entry.Amount,
		entry.Type,
		entry.Status,
		entry.RegisteredAt,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %d: %w", entry.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating entry %d: %w", entry.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// Delete removes the entry by its ID using the provided DBExecutor.
func (r *EntryRepository) Delete(ctx context.Context, q repository.DBExecutor, entry *domain.Entry) error {
	result, err := q.ExecContext(ctx, `DELETE FROM entries WHERE id = $1`, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %d: %w", entry.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting entry %d: %w", entry.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// FindByID retrieves an entry by its ID using the provided DBExecutor.
func (r *EntryRepository) FindByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Entry, error) {
	var entry domain.Entry
	query := `SELECT id, description, month, year, user_id, amount, type, status, registered_at, created_at
	          FROM entries WHERE id = $1`
	err := q.GetContext(ctx, &entry, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entry by ID %d: %w", id, err)
	}
	return &entry, nil
}

// FindAll returns entries matching the filter. Each populated filter field
// contributes one predicate: a case-insensitive substring match for the
// description and an equality match for everything else. Nil fields add
// no constraint.
func (r *EntryRepository) FindAll(ctx context.Context, q repository.DBExecutor, filter domain.EntryFilter) ([]domain.Entry, error) {
	var (
		predicates []string
		args       []interface{}
	)
	addPredicate := func(condition string, value interface{}) {
		args = append(args, value)
		predicates = append(predicates, fmt.Sprintf(condition, len(args)))
	}

	if filter.Description != nil {
		addPredicate("description ILIKE '%%' || $%d || '%%'", *filter.Description)
	}
	if filter.Month != nil {
		addPredicate("month = $%d", *filter.Month)
	}
	if filter.Year != nil {
		addPredicate("year = $%d", *filter.Year)
	}
	if filter.UserID != nil {
		addPredicate("user_id = $%d", *filter.UserID)
	}
	if filter.Type != nil {
		addPredicate("type = $%d", *filter.Type)
	}
	if filter.Status != nil {
		addPredicate("status = $%d", *filter.Status)
	}

	query := `SELECT id, description, month, year, user_id, amount, type, status, registered_at, created_at FROM entries`
	if len(predicates) > 0 {
		query += " WHERE " + strings.Join(predicates, " AND ")
	}

	entries := []domain.Entry{}
	if err := q.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	return entries, nil
}

// SumAmountByUserAndType aggregates entry amounts for one user and type.
// The NullDecimal is invalid when the user has no entries of that type.
func (r *EntryRepository) SumAmountByUserAndType(ctx context.Context, q repository.DBExecutor, userID int64, entryType domain.EntryType) (decimal.NullDecimal, error) {
	var sum decimal.NullDecimal
	query := `SELECT SUM(amount) FROM entries WHERE user_id = $1 AND type = $2`
	err := q.GetContext(ctx, &sum, query, userID, entryType)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("failed to sum amounts for user %d and type %s: %w", userID, entryType, err)
	}
	return sum, nil
}
