// Package kernel provides the shared value objects of the QuickCart domain.
//
// The package includes:
//   - UUID: identity of users, products and orders
//   - Money: non-negative monetary amounts backed by shopspring/decimal
//   - Credential: a bcrypt hashed secret compared for equality only
//
// All values are immutable and safe for concurrent use.
package kernel
