package ports

import (
	"context"

	"quickcart/internal/core/domain/model/customer"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/core/domain/model/user"
)

// UserReader is the session's user directory.
type UserReader interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByName looks a user up by its unique display name.
	GetByName(ctx context.Context, name string) (*user.User, error)
}

// UserRepository stores the shared user record of every role.
type UserRepository interface {
	UserReader

	// Add fails with errs.StateConflictError when the display name is taken.
	Add(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
}

// CustomerReader returns customers with their carts.
type CustomerReader interface {
	// Get fails with errs.ObjectNotFoundError when id is not a customer.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

// CustomerRepository stores the customer aggregate. The user record itself
// is written through UserRepository.
type CustomerRepository interface {
	CustomerReader

	Update(ctx context.Context, c *customer.Customer) error
}

// RiderReader returns riders with their availability.
type RiderReader interface {
	// Get fails with errs.ObjectNotFoundError when id is not a rider.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)
}

// RiderRepository stores the rider aggregate. The user record itself is
// written through UserRepository.
type RiderRepository interface {
	RiderReader

	Update(ctx context.Context, r *rider.Rider) error
}
