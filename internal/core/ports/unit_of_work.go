package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to that transaction.
// Client code must explicitly manage the transaction lifecycle. Repositories
// obtained while no transaction is active operate on the base connection,
// which is how post-commit side effects are written without being able to
// roll back an already committed transition.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction, if one is active.
	ShipmentRepository() ShipmentRepository

	// NotificationRepository returns a NotificationRepository bound to the
	// current transaction, if one is active.
	NotificationRepository() NotificationRepository

	// AccountRepository returns an AccountRepository bound to the current
	// transaction, if one is active.
	AccountRepository() AccountRepository

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction, if one is active.
	VehicleRepository() VehicleRepository
}
