package ports

import (
	"context"

	"courier/internal/core/domain/model/account"
)

// AccountRepository is the read-only lookup the core needs for validating
// referenced users. Account management itself is a collaborator concern.
type AccountRepository interface {
	// GetDriver retrieves an account by id, failing with an
	// ObjectNotFoundError if it does not exist or does not hold the driver
	// role.
	GetDriver(ctx context.Context, id int64) (account.Account, error)

	// Get retrieves any account by id.
	Get(ctx context.Context, id int64) (account.Account, error)
}
