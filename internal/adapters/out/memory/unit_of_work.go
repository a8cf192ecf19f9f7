package memory

import (
	"context"
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/ports"
)

var ErrUnitOfWorkIsNotActive = errors.New("unit of work is not active")

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:             f.store,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// UnitOfWork holds the store's write lock from Begin until Commit or
// Rollback. Repository writes are staged and reach the store only on Commit.
type UnitOfWork struct {
	store             *Store
	staged            *changes
	trackedAggregates []trackedAggregate
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.staged != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.staged = newChanges()
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit applies staged changes, releases the lock and then publishes one
// event per tracked order.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.staged == nil {
		return ErrUnitOfWorkIsNotActive
	}

	uow.store.state.apply(uow.staged)
	events := uow.orderEvents()
	uow.staged = nil
	uow.store.mu.Unlock()

	uow.store.publish(ctx, events)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.staged == nil {
		return ErrUnitOfWorkIsNotActive
	}

	uow.staged = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// orderEvents keeps the last tracked state of every order.
func (uow *UnitOfWork) orderEvents() []order.ChangedEvent {
	events := make([]order.ChangedEvent, 0)
	index := make(map[string]int)
	for _, tracked := range uow.trackedAggregates {
		o, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		event := order.NewChangedEvent(o)
		if i, seen := index[tracked.ID.String()]; seen {
			events[i] = event
			continue
		}
		index[tracked.ID.String()] = len(events)
		events = append(events, event)
	}
	return events
}

func (uow *UnitOfWork) view() (view, error) {
	if uow.staged == nil {
		return nil, ErrUnitOfWorkIsNotActive
	}
	return overlay{base: uow.store.state, staged: uow.staged}, nil
}

func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &productRepository{uow: uow}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return &userRepository{uow: uow}
}

func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &customerRepository{uow: uow}
}

func (uow *UnitOfWork) RiderRepository() ports.RiderRepository {
	return &riderRepository{uow: uow}
}
