// Package accountrepo provides read-only persistence access to platform
// user accounts. Account management (registration, credentials) lives in a
// separate system; the core only resolves referenced users.
package accountrepo

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// AccountDTO represents the database structure of a platform user.
type AccountDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"uniqueIndex"`
	Role      string `gorm:"size:16"`
	CreatedAt time.Time
}

// TableName specifies the database table name for user accounts.
func (AccountDTO) TableName() string {
	return "users"
}

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id int64) (account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, errs.NewObjectNotFoundError("account", id)
		}
		return account.Account{}, err
	}

	return account.New(dto.ID, dto.Username, actor.Role(dto.Role))
}

// GetDriver retrieves an account by ID, requiring the driver role. A user
// that exists but is not a driver is reported as not found so callers cannot
// probe which ids belong to other roles.
func (r *GormAccountRepository) GetDriver(ctx context.Context, id int64) (account.Account, error) {
	acc, err := r.Get(ctx, id)
	if err != nil {
		return account.Account{}, err
	}

	if !acc.IsDriver() {
		return account.Account{}, errs.NewObjectNotFoundError("driver", id)
	}

	return acc, nil
}
