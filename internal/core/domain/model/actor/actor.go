// Package actor defines the authenticated party initiating an operation.
// Every core operation receives an explicit Actor value instead of reading
// ambient request state, so authorization decisions are testable in isolation.
package actor

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Role describes the capability class of an authenticated user.
type Role string

const (
	// RoleShipper creates shipments and receives notifications about them.
	RoleShipper Role = "shipper"

	// RoleDriver executes deliveries for shipments assigned to it.
	RoleDriver Role = "driver"

	// RoleAdmin quotes, approves, assigns and cancels shipments.
	RoleAdmin Role = "admin"
)

// Validate checks that the role is one of the known capability classes.
func (r Role) Validate() error {
	switch r {
	case RoleShipper, RoleDriver, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated party on whose behalf an operation runs.
type Actor struct {
	ID   int64
	Role Role
}

// New creates an Actor after validating its identity and role.
func New(id int64, role Role) (Actor, error) {
	if id <= 0 {
		return Actor{}, errs.NewValueIsRequiredError("actor id")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Role: role}, nil
}

// IsShipper reports whether the actor holds the shipper role.
func (a Actor) IsShipper() bool { return a.Role == RoleShipper }

// IsDriver reports whether the actor holds the driver role.
func (a Actor) IsDriver() bool { return a.Role == RoleDriver }

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
