// Package order provides the Order aggregate of the ledger and the status
// state machine that governs it.
//
// The package includes:
//   - Order: customer, optional rider, line items, status and a total fixed at placement
//   - LineItem: product snapshot (name, unit price) and quantity
//   - Status: pending, accepted, in_progress, delivered, cancelled
//   - ChangedEvent: the notification emitted whenever an order is created or transitioned
//
// Key business rules:
//   - an order is placed from a non-empty cart and starts pending without a rider
//   - only a rider accept moves pending to accepted
//   - only the assigned rider moves the order further
//   - delivered and cancelled are terminal; orders are never deleted
//   - the total is computed once and never recomputed
package order
