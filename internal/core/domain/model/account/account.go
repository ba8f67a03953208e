// Package account holds the minimal user representation the core needs:
// identity plus role. Credential storage and authentication live outside the
// core; operations receive an already-authenticated actor.
package account

import (
	"courier/internal/core/domain/model/actor"
	"courier/internal/pkg/errs"
)

// Account identifies a platform user and the role it holds.
type Account struct {
	id       int64
	username string
	role     actor.Role
}

// New creates an Account after validating identity and role.
func New(id int64, username string, role actor.Role) (Account, error) {
	if id <= 0 {
		return Account{}, errs.NewValueIsRequiredError("account id")
	}
	if username == "" {
		return Account{}, errs.NewValueIsRequiredError("username")
	}
	if err := role.Validate(); err != nil {
		return Account{}, err
	}
	return Account{id: id, username: username, role: role}, nil
}

// ID returns the account identifier.
func (a Account) ID() int64 { return a.id }

// Username returns the login name, used as the display name on invoices.
func (a Account) Username() string { return a.username }

// Role returns the account's capability class.
func (a Account) Role() actor.Role { return a.role }

// IsDriver reports whether the account holds the driver role.
func (a Account) IsDriver() bool { return a.role == actor.RoleDriver }
