package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Changes made through its
// repositories become visible to others only on Commit and are discarded on
// Rollback.
type UnitOfWork interface {
	// Begin starts the transaction. Preconditions checked after Begin and
	// the mutations that follow form a single critical section.
	Begin(ctx context.Context) error

	// Commit applies staged changes and publishes order change events.
	Commit(ctx context.Context) error

	// Rollback discards staged changes. It returns an error when no
	// transaction is active, which callers deferring it may ignore.
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository
	OrderRepository() OrderRepository
	UserRepository() UserRepository
	CustomerRepository() CustomerRepository
	RiderRepository() RiderRepository
}
