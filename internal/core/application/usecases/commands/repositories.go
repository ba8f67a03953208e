// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository. While a
	// transaction is active the repository is bound to it; afterwards it
	// operates on the base connection.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// NotificationRepoFactory provides access to the notification repository.
	// Handlers fetch it again after Commit to write notifications that must
	// not be able to roll back an already committed transition.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// AccountRepoFactory provides access to the account repository.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		NotificationRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UoW manages transactions across every aggregate the commands touch.
	// Used by handlers that also resolve referenced accounts and vehicles.
	UoW interface {
		TxManager
		ShipmentRepoFactory
		NotificationRepoFactory
		AccountRepoFactory
		VehicleRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// InvoiceService produces the invoice artifact for a shipment when one is
// due. Implemented by the invoicing generator; handlers depend on this
// interface so invoice production can be substituted in tests.
type InvoiceService interface {
	// EnsureInvoice generates the invoice for the shipment if it does not
	// have one yet, re-rendering a lost artifact if the recorded one is
	// missing. The repositories decide whether the write happens inside a
	// transaction or on the base connection.
	EnsureInvoice(
		ctx context.Context,
		shipments ports.ShipmentRepository,
		accounts ports.AccountRepository,
		s *shipment.Shipment,
		now time.Time,
	) error
}
