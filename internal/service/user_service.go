// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"financas/internal/domain"
	"financas/internal/repository"
	"financas/internal/util"
	"financas/pkg/db"
)

// UserService defines the user directory business logic.
type UserService interface {
	// Authenticate looks the user up by email and compares the password
	// by exact equality. Both failure modes are AuthenticationErrors.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// Register checks email uniqueness and persists the user. A duplicate
	// email aborts before anything is written.
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	// ValidateEmailUnique fails with a ValidationError when the email is
	// already registered.
	ValidateEmailUnique(ctx context.Context, email string) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) UserService {
	return &userService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.NewAuthenticationError("Usuário não existe para o e-mail informado")
		}
		return nil, fmt.Errorf("authenticate: failed to look up user by email: %w", err)
	}

	// Exact-value comparison, as stored. No hashing is applied anywhere.
	if user.Password != password {
		return nil, util.NewAuthenticationError("Senha inválida")
	}

	return user, nil
}

func (s *userService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("register user: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("register user: transaction controller does not implement DBExecutor")
	}

	if err := s.validateEmailUnique(ctx, txExecutor, user.Email); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("register user: failed to save user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("register user: failed to commit transaction: %w", err)
	}

	return user, nil
}

func (s *userService) ValidateEmailUnique(ctx context.Context, email string) error {
	return s.validateEmailUnique(ctx, s.dbExecutor, email)
}

func (s *userService) validateEmailUnique(ctx context.Context, q repository.DBExecutor, email string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, q, email)
	if err != nil {
		return fmt.Errorf("validate email: failed to check existence: %w", err)
	}
	if exists {
		return util.NewValidationError("Já existe um usuário com esse e-mail cadastrado")
	}
	return nil
}

func (s *userService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("find user: failed to get user %d: %w", id, err)
	}
	return user, nil
}
