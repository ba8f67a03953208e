// Package services provides domain services that implement business rules
// spanning more than one aggregate or requiring no aggregate at all.
//
// The package includes:
//   - AuthorizationGate: role- and ownership-based access decisions evaluated
//     before the lifecycle state machine runs
//   - TaxCalculator: the pure per-province tax regime lookup used at invoicing
//
// Domain services hold no state and perform no I/O; orchestration and
// persistence belong to the application layer.
package services
