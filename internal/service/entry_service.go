// internal/service/entry_service.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"financas/internal/domain"
	"financas/internal/repository"
	"financas/internal/util"
	"financas/pkg/db"
)

// EntryService defines the business logic for financial entries.
type EntryService interface {
	// Validate checks the candidate entry against all business rules.
	// It is a pure check with no side effects.
	Validate(entry *domain.Entry) error
	// Create validates and persists a new entry. Status is forced to
	// PENDENTE regardless of caller input.
	Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	// Update re-validates and fully overwrites an existing entry. The
	// entry must already have an identifier.
	Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	// Delete removes an existing entry. The entry must have an identifier.
	Delete(ctx context.Context, entry *domain.Entry) error
	// UpdateStatus sets the status and persists via Update, so the whole
	// entry is re-validated.
	UpdateStatus(ctx context.Context, entry *domain.Entry, status domain.EntryStatus) (*domain.Entry, error)
	FindByID(ctx context.Context, id int64) (*domain.Entry, error)
	Search(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	// BalanceForUser returns total income minus total expense for the
	// user, across entries of every status.
	BalanceForUser(ctx context.Context, userID int64) (decimal.Decimal, error)
}

// entryService implements the EntryService interface.
type entryService struct {
	dbBeginner db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	entryRepo  repository.EntryRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewEntryService creates a new instance of EntryService.
func NewEntryService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	entryRepo repository.EntryRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) EntryService {
	return &entryService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		entryRepo:  entryRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// Validate applies the business rules in order; the first failing rule
// determines the reported reason.
func (s *entryService) Validate(entry *domain.Entry) error {
	if strings.TrimSpace(entry.Description) == "" {
		return util.NewValidationError("Informe uma descrição válida")
	}

	if entry.Month < 1 || entry.Month > 12 {
		return util.NewValidationError("Informe um mês válido")
	}

	// Digit-count check, not a range check: any year whose decimal
	// representation is 4 characters long passes.
	if len(strconv.Itoa(entry.Year)) != 4 {
		return util.NewValidationError("Informe um ano válido")
	}

	if entry.UserID == 0 {
		return util.NewValidationError("Informe um usuário")
	}

	if entry.Amount.LessThanOrEqual(decimal.Zero) {
		return util.NewValidationError("Informe um valor válido")
	}

	if entry.Type == "" {
		return util.NewValidationError("Informe um tipo de lançamento")
	}

	return nil
}

func (s *entryService) Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if err := s.Validate(entry); err != nil {
		return nil, err
	}

	entry.Status = domain.EntryStatusPending
	if entry.RegisteredAt.IsZero() {
		entry.RegisteredAt = time.Now().UTC()
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create entry: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create entry: transaction controller does not implement DBExecutor")
	}

	if err := s.entryRepo.Save(ctx, txExecutor, entry); err != nil {
		return nil, fmt.Errorf("create entry: failed to save entry: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create entry: failed to commit transaction: %w", err)
	}

	return entry, nil
}

func (s *entryService) Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if entry.ID == 0 {
		return nil, util.ErrMissingID
	}

	if err := s.Validate(entry); err != nil {
		return nil, err
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("update entry: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("update entry: transaction controller does not implement DBExecutor")
	}

	if err := s.entryRepo.Save(ctx, txExecutor, entry); err != nil {
		return nil, fmt.Errorf("update entry: failed to save entry %d: %w", entry.ID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("update entry: failed to commit transaction: %w", err)
	}

	return entry, nil
}

func (s *entryService) Delete(ctx context.Context, entry *domain.Entry) error {
	if entry.ID == 0 {
		return util.ErrMissingID
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("delete entry: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("delete entry: transaction controller does not implement DBExecutor")
	}

	if err := s.entryRepo.Delete(ctx, txExecutor, entry); err != nil {
		return fmt.Errorf("delete entry: failed to delete entry %d: %w", entry.ID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("delete entry: failed to commit transaction: %w", err)
	}

	return nil
}

func (s *entryService) UpdateStatus(ctx context.Context, entry *domain.Entry, status domain.EntryStatus) (*domain.Entry, error) {
	entry.Status = status
	return s.Update(ctx, entry)
}

func (s *entryService) FindByID(ctx context.Context, id int64) (*domain.Entry, error) {
	// For read-only operations outside a transaction, use s.dbExecutor
	entry, err := s.entryRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("find entry: failed to get entry %d: %w", id, err)
	}
	return entry, nil
}

func (s *entryService) Search(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	entries, err := s.entryRepo.FindAll(ctx, s.dbExecutor, filter)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	return entries, nil
}

func (s *entryService) BalanceForUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	income, err := s.entryRepo.SumAmountByUserAndType(ctx, s.dbExecutor, userID, domain.EntryTypeIncome)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("balance: failed to sum income for user %d: %w", userID, err)
	}

	expense, err := s.entryRepo.SumAmountByUserAndType(ctx, s.dbExecutor, userID, domain.EntryTypeExpense)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("balance: failed to sum expense for user %d: %w", userID, err)
	}

	// A user with no entries of a type yields a NULL aggregate; treat it as zero.
	incomeTotal := decimal.Zero
	if income.Valid {
		incomeTotal = income.Decimal
	}
	expenseTotal := decimal.Zero
	if expense.Valid {
		expenseTotal = expense.Decimal
	}

	return incomeTotal.Sub(expenseTotal), nil
}
