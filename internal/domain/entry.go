// internal/domain/entry.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations

	"financas/internal/util"
)

// EntryType classifies an entry as income or expense.
type EntryType string

const (
	EntryTypeIncome  EntryType = "RECEITA"
	EntryTypeExpense EntryType = "DESPESA"
)

// EntryStatus is the lifecycle marker of an entry.
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "PENDENTE"
	EntryStatusSettled   EntryStatus = "EFETIVADO"
	EntryStatusCancelled EntryStatus = "CANCELADO"
)

// ParseEntryStatus converts a status string supplied at the boundary.
// Unknown values are rejected before any transition runs.
func ParseEntryStatus(s string) (EntryStatus, error) {
	switch EntryStatus(s) {
	case EntryStatusPending, EntryStatusSettled, EntryStatusCancelled:
		return EntryStatus(s), nil
	}
	return "", util.ErrInvalidStatus
}

// ParseEntryType converts a type string supplied at the boundary.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case EntryTypeIncome, EntryTypeExpense:
		return EntryType(s), nil
	}
	return "", util.ErrInvalidType
}

// Entry represents a single financial record ("lançamento") owned by a user.
type Entry struct {
	ID           int64           `db:"id" json:"id"`
	Description  string          `db:"description" json:"description"`
	Month        int             `db:"month" json:"month"` // 1..12
	Year         int             `db:"year" json:"year"`
	UserID       int64           `db:"user_id" json:"user_id"`
	Amount       decimal.Decimal `db:"amount" json:"amount"` // Strictly positive, NUMERIC(20, 2) in DB
	Type         EntryType       `db:"type" json:"type"`
	Status       EntryStatus     `db:"status" json:"status"`
	RegisteredAt time.Time       `db:"registered_at" json:"registered_at"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// NewEntry creates a new Entry instance. Status is left empty; the service
// forces it to PENDENTE on creation regardless of caller input.
func NewEntry(description string, month, year int, userID int64, amount decimal.Decimal, entryType EntryType) *Entry {
	now := time.Now().UTC()
	return &Entry{
		Description:  description,
		Month:        month,
		Year:         year,
		UserID:       userID,
		Amount:       amount,
		Type:         entryType,
		RegisteredAt: now,
		CreatedAt:    now,
	}
}

// EntryFilter carries optional search criteria. Nil fields impose no
// constraint; Description matches case-insensitively as a substring,
// the remaining fields match by equality.
type EntryFilter struct {
	Description *string
	Month       *int
	Year        *int
	UserID      *int64
	Type        *EntryType
	Status      *EntryStatus
}
