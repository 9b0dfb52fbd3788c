package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/flavorvault/recipe-service/internal/domain"
	"github.com/flavorvault/recipe-service/internal/ports"
)

// AccountRepository is the gorm-backed credential store.
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository wires the repository to a connection pool.
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

// Create inserts a new account. The unique constraints on username and email
// are the source of truth: a violation is mapped to the matching duplicate
// error so concurrent registrations past the application pre-check still fail
// as validation errors, not 500s.
func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	rec := accountModel{
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return domain.Account{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, dup)
		}
		return domain.Account{}, err
	}
	return toDomainAccount(rec), nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	var rec accountModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Account{}, domain.ErrNotFound
		}
		return domain.Account{}, err
	}
	return toDomainAccount(rec), nil
}

func toDomainAccount(rec accountModel) domain.Account {
	return domain.Account{
		ID:           rec.AccountID,
		Username:     rec.Username,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}
}

// mapUniqueViolation resolves which unique constraint fired.
// The pg error carries the constraint name; gorm's translated error does not,
// so both paths are checked.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "username"):
			return domain.ErrDuplicateUsername
		case strings.Contains(pgErr.ConstraintName, "email"):
			return domain.ErrDuplicateEmail
		default:
			return domain.ErrDuplicateUsername
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateUsername
	}
	return nil
}
