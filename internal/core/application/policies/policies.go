// Package policies exposes what each role may do. A role policy is bound
// to one authenticated user and forwards to the command and query handlers,
// which check the role again on their own.
package policies

import (
	"context"

	"quickcart/internal/core/application/usecases/commands"
	"quickcart/internal/core/application/usecases/queries"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"
)

// Handlers is the full set of use cases the policies delegate to.
type Handlers struct {
	RegisterUser         commands.RegisterUserCommandHandler
	UpdateProfile        commands.UpdateProfileCommandHandler
	AddProduct           commands.AddProductCommandHandler
	RestockProduct       commands.RestockProductCommandHandler
	ChangeProductPrice   commands.ChangeProductPriceCommandHandler
	AddToCart            commands.AddToCartCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	AcceptOrder          commands.AcceptOrderCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler
	SetAvailability      commands.SetAvailabilityCommandHandler

	Authenticate      queries.AuthenticateQueryHandler
	ListProducts      queries.ListProductsQueryHandler
	GetProduct        queries.GetProductQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetPendingOrders  queries.GetPendingOrdersQueryHandler
	GetCart           queries.GetCartQueryHandler
	GetRider          queries.GetRiderQueryHandler
	GetSnapshot       queries.GetSnapshotQueryHandler
}

// Session identifies a logged-in user.
type Session struct {
	UserID kernel.UUID
	Name   string
	Role   user.Role
}

type Factory struct {
	handlers Handlers
}

func NewFactory(handlers Handlers) Factory {
	return Factory{handlers: handlers}
}

// Login checks name and password for role. Failure is reported only as
// false; the store is never modified.
func (f Factory) Login(ctx context.Context, role user.Role, name, password string) (Session, bool) {
	query, err := queries.NewAuthenticateQuery(role, name, password)
	if err != nil {
		return Session{}, false
	}
	resp, err := f.handlers.Authenticate.Handle(ctx, query)
	if err != nil {
		return Session{}, false
	}
	return Session{UserID: resp.UserID, Name: resp.Name, Role: resp.Role}, true
}

// Register creates a user and returns its id.
func (f Factory) Register(ctx context.Context, role user.Role, name, password, email string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, role, name, password, email)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = f.handlers.RegisterUser.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}
	return id, nil
}

func (f Factory) Admin(id kernel.UUID) Admin {
	return Admin{account: account{id: id, handlers: &f.handlers}}
}

func (f Factory) Customer(id kernel.UUID) Customer {
	return Customer{account: account{id: id, handlers: &f.handlers}}
}

func (f Factory) Rider(id kernel.UUID) Rider {
	return Rider{account: account{id: id, handlers: &f.handlers}}
}

// account holds what every role shares.
type account struct {
	id       kernel.UUID
	handlers *Handlers
}

func (a account) ID() kernel.UUID {
	return a.id
}

// UpdateProfile changes email, password or both; empty values are kept.
func (a account) UpdateProfile(ctx context.Context, email, password string) error {
	cmd, err := commands.NewUpdateProfileCommand(a.id, email, password)
	if err != nil {
		return err
	}
	return a.handlers.UpdateProfile.Handle(ctx, cmd)
}

func (a account) product(ctx context.Context, id kernel.UUID) (queries.ProductView, error) {
	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return queries.ProductView{}, err
	}
	return a.handlers.GetProduct.Handle(ctx, query)
}

func (a account) order(ctx context.Context, id kernel.UUID) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderView{}, err
	}
	return a.handlers.GetOrder.Handle(ctx, query)
}

func (a account) products(ctx context.Context) ([]queries.ProductView, error) {
	return a.handlers.ListProducts.Handle(ctx, queries.NewListProductsQuery())
}
