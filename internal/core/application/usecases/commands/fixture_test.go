package commands_test

import (
	"context"
	"testing"

	"quickcart/internal/adapters/out/memory"
	"quickcart/internal/core/application/usecases/commands"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/core/ports"

	"github.com/stretchr/testify/require"
)

type uowFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f uowFactory) create() ports.UnitOfWork {
	return f.factory.Create()
}

type accountFactory struct{ uowFactory }

func (f accountFactory) Create() commands.AccountUoW { return f.create() }

type catalogFactory struct{ uowFactory }

func (f catalogFactory) Create() commands.CatalogUoW { return f.create() }

type shoppingFactory struct{ uowFactory }

func (f shoppingFactory) Create() commands.ShoppingUoW { return f.create() }

type deliveryFactory struct{ uowFactory }

func (f deliveryFactory) Create() commands.DeliveryUoW { return f.create() }

// fixture is a store with one admin, two customers and two riders.
type fixture struct {
	ctx   context.Context
	store *memory.Store

	account  accountFactory
	catalog  catalogFactory
	shopping shoppingFactory
	delivery deliveryFactory

	adminID    kernel.UUID
	customerID kernel.UUID
	otherID    kernel.UUID
	riderID    kernel.UUID
	rider2ID   kernel.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore(nil, nil)
	base := uowFactory{factory: memory.NewUnitOfWorkFactory(store)}
	f := &fixture{
		ctx:      context.Background(),
		store:    store,
		account:  accountFactory{base},
		catalog:  catalogFactory{base},
		shopping: shoppingFactory{base},
		delivery: deliveryFactory{base},
	}

	f.adminID = f.register(t, user.Admin, "admin")
	f.customerID = f.register(t, user.Customer, "customer1")
	f.otherID = f.register(t, user.Customer, "customer2")
	f.riderID = f.register(t, user.Rider, "rider1")
	f.rider2ID = f.register(t, user.Rider, "rider2")
	return f
}

func (f *fixture) register(t *testing.T, role user.Role, name string) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, role, name, "secret", name+"@example.com")
	require.NoError(t, err)
	h := commands.NewRegisterUserCommandHandler(f.account)
	require.NoError(t, h.Handle(f.ctx, cmd))
	return id
}

func (f *fixture) addProduct(t *testing.T, name string, price float64, stock int) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	money, err := kernel.MoneyFromFloat(price)
	require.NoError(t, err)
	cmd, err := commands.NewAddProductCommand(f.adminID, id, name, money, stock, "Gadgets")
	require.NoError(t, err)
	h := commands.NewAddProductCommandHandler(f.catalog)
	require.NoError(t, h.Handle(f.ctx, cmd))
	return id
}

func (f *fixture) addToCart(customerID, productID kernel.UUID, quantity int) error {
	cmd, err := commands.NewAddToCartCommand(customerID, productID, quantity)
	if err != nil {
		return err
	}
	h := commands.NewAddToCartCommandHandler(f.shopping)
	return h.Handle(f.ctx, cmd)
}

func (f *fixture) placeOrder(customerID kernel.UUID) (kernel.UUID, error) {
	id := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(customerID, id)
	if err != nil {
		return kernel.UUID{}, err
	}
	h := commands.NewPlaceOrderCommandHandler(f.shopping)
	return id, h.Handle(f.ctx, cmd)
}

func (f *fixture) stock(t *testing.T, productID kernel.UUID) int {
	t.Helper()
	p, err := f.store.Products().Get(f.ctx, productID)
	require.NoError(t, err)
	return p.Stock()
}

func (f *fixture) setAvailability(riderID kernel.UUID, availability rider.Availability) error {
	cmd, err := commands.NewSetAvailabilityCommand(riderID, availability)
	if err != nil {
		return err
	}
	h := commands.NewSetAvailabilityCommandHandler(f.delivery)
	return h.Handle(f.ctx, cmd)
}

func (f *fixture) accept(riderID, orderID kernel.UUID) error {
	cmd, err := commands.NewAcceptOrderCommand(riderID, orderID)
	if err != nil {
		return err
	}
	h := commands.NewAcceptOrderCommandHandler(f.delivery)
	return h.Handle(f.ctx, cmd)
}

func (f *fixture) advance(riderID, orderID kernel.UUID, status order.Status) error {
	cmd, err := commands.NewUpdateDeliveryStatusCommand(riderID, orderID, status)
	if err != nil {
		return err
	}
	h := commands.NewUpdateDeliveryStatusCommandHandler(f.delivery)
	return h.Handle(f.ctx, cmd)
}

func (f *fixture) order(t *testing.T, orderID kernel.UUID) *order.Order {
	t.Helper()
	o, err := f.store.Orders().Get(f.ctx, orderID)
	require.NoError(t, err)
	return o
}

func (f *fixture) rider(t *testing.T, riderID kernel.UUID) *rider.Rider {
	t.Helper()
	r, err := f.store.Riders().Get(f.ctx, riderID)
	require.NoError(t, err)
	return r
}
