package ports

import (
	"context"

	"github.com/flavorvault/recipe-service/internal/domain"
)

// AccountRepository defines persistence operations for accounts.
// Uniqueness of username and email is enforced by the storage layer, not by
// the application pre-check, so concurrent registrations cannot both succeed.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByUsername(ctx context.Context, username string) (domain.Account, error)
}
