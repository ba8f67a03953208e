// Package shipment provides domain entities and business logic for shipment
// management in the courier platform. It implements the Shipment aggregate
// root with lifecycle management and role-gated state transitions.
//
// The package includes:
//   - Shipment: The aggregate root owning status, assignment and commercial fields
//   - Status: A closed state machine with an explicit allowed-next transition table
//   - Province: The Canadian province code selecting the shipment's tax regime
//   - Address, PackageDetails: Value objects describing the route and the package
//
// Key business rules:
//   - Status follows pending -> quoted -> approved -> assigned -> picked_up ->
//     in_transit -> delivered, with cancellation allowed from any non-terminal state
//   - A driver is attached exactly when the status is assigned or later
//   - Invoice fields are written once; the invoice URL is the idempotency flag
//   - The pickup and delivery timestamps are set by their transitions and never change
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
