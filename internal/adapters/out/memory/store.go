// Package memory keeps the single authoritative QuickCart state in process.
//
// Writers go through a UnitOfWork, which takes the store's write lock on
// Begin and releases it on Commit or Rollback, so every check-then-act
// sequence inside a command runs as one critical section. Readers take the
// read lock per call and always see committed state.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"quickcart/internal/core/domain/model/customer"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/product"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/core/ports"
)

type Store struct {
	mu        sync.RWMutex
	state     *state
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewStore creates an empty store. A nil publisher disables order events.
func NewStore(publisher ports.EventPublisher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:     newState(),
		publisher: publisher,
		logger:    logger.With("component", "memory-store"),
	}
}

func (s *Store) publish(ctx context.Context, events []order.ChangedEvent) {
	if s.publisher == nil {
		return
	}
	for _, event := range events {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish order event",
				"order_id", event.OrderID.String(),
				"status", event.Status.String(),
				"error", err)
		}
	}
}

func (s *Store) Products() *ProductReader {
	return &ProductReader{store: s}
}

func (s *Store) Orders() *OrderReader {
	return &OrderReader{store: s}
}

func (s *Store) Users() *UserReader {
	return &UserReader{store: s}
}

func (s *Store) Customers() *CustomerReader {
	return &CustomerReader{store: s}
}

func (s *Store) Riders() *RiderReader {
	return &RiderReader{store: s}
}

type ProductReader struct {
	store *Store
}

func (r *ProductReader) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getProduct(r.store.state, id)
}

func (r *ProductReader) GetAll(_ context.Context) ([]*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return allProducts(r.store.state)
}

type OrderReader struct {
	store *Store
}

func (r *OrderReader) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getOrder(r.store.state, id)
}

func (r *OrderReader) GetAll(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return findOrders(r.store.state, anyOrder)
}

func (r *OrderReader) GetAllByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return findOrders(r.store.state, ownedBy(customerID))
}

func (r *OrderReader) GetAllInPendingStatus(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return findOrders(r.store.state, pending)
}

type UserReader struct {
	store *Store
}

func (r *UserReader) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getUser(r.store.state, id)
}

func (r *UserReader) GetByName(_ context.Context, name string) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getUserByName(r.store.state, name)
}

type CustomerReader struct {
	store *Store
}

func (r *CustomerReader) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getCustomer(r.store.state, id)
}

type RiderReader struct {
	store *Store
}

func (r *RiderReader) Get(_ context.Context, id kernel.UUID) (*rider.Rider, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return getRider(r.store.state, id)
}

var (
	_ ports.ProductReader  = (*ProductReader)(nil)
	_ ports.OrderReader    = (*OrderReader)(nil)
	_ ports.UserReader     = (*UserReader)(nil)
	_ ports.CustomerReader = (*CustomerReader)(nil)
	_ ports.RiderReader    = (*RiderReader)(nil)
)
