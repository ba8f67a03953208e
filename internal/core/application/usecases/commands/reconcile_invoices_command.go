package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrReconcileInvoicesCommandIsNotConstructed = errors.New(
	"ReconcileInvoicesCommand must be created via NewReconcileInvoicesCommand constructor",
)

// ReconcileInvoicesCommand triggers the invoice reconciliation sweep: every
// shipment at or past pickup without an invoice gets one generated. This is
// the retry path for invoices whose generation failed after pickup.
type ReconcileInvoicesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileInvoicesCommand creates a parameterless reconciliation command.
func NewReconcileInvoicesCommand() ReconcileInvoicesCommand {
	return ReconcileInvoicesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileInvoicesCommandIsNotConstructed if validation fails.
func (c *ReconcileInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileInvoicesCommandIsNotConstructed)
}
