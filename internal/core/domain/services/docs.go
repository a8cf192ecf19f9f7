// Package services provides domain services that coordinate the customer,
// rider, product and order aggregates.
//
// The package includes:
//   - OrderLifecycle: placing an order from a cart, rider acceptance and
//     rider driven status changes, including stock release on cancellation
//
// Every operation checks all of its preconditions before it mutates any
// aggregate, so a rejected call leaves every aggregate unchanged.
package services
