// internal/domain/entry_test.go
package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"financas/internal/util"
)

func TestParseEntryStatus(t *testing.T) {
	for _, valid := range []string{"PENDENTE", "EFETIVADO", "CANCELADO"} {
		status, err := ParseEntryStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, EntryStatus(valid), status)
	}

	for _, invalid := range []string{"", "FINALIZADO", "pendente", "SETTLED"} {
		_, err := ParseEntryStatus(invalid)
		assert.ErrorIs(t, err, util.ErrInvalidStatus, "%q should be rejected", invalid)
	}
}

func TestParseEntryType(t *testing.T) {
	for _, valid := range []string{"RECEITA", "DESPESA"} {
		entryType, err := ParseEntryType(valid)
		assert.NoError(t, err)
		assert.Equal(t, EntryType(valid), entryType)
	}

	for _, invalid := range []string{"", "INCOME", "receita"} {
		_, err := ParseEntryType(invalid)
		assert.ErrorIs(t, err, util.ErrInvalidType, "%q should be rejected", invalid)
	}
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry("Aluguel", 2, 2026, 1, decimal.NewFromFloat(1200.00), EntryTypeExpense)

	assert.Zero(t, entry.ID)
	assert.Empty(t, entry.Status) // The service forces PENDENTE at creation
	assert.False(t, entry.RegisteredAt.IsZero())
	assert.Equal(t, EntryTypeExpense, entry.Type)
}
