package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "quickcart/internal/adapters/in/http"
	"quickcart/internal/adapters/out/memory"
	"quickcart/internal/core/application/policies"
	"quickcart/internal/core/application/usecases/commands"
	"quickcart/internal/core/application/usecases/queries"
	"quickcart/internal/core/ports"
	"quickcart/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
}

// NewCompositionRoot builds the single in-memory store every handler shares.
// publisher may be nil.
func NewCompositionRoot(config Config, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	store := memory.NewStore(publisher, logger)
	return CompositionRoot{
		config:     config,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
	}
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shoppingUoWFactory() commands.ShoppingUoWFactory {
	return FuncShoppingUoWFactory(func() commands.ShoppingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	return commands.NewAddProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	return commands.NewRestockProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateChangeProductPriceCommandHandler() commands.ChangeProductPriceCommandHandler {
	return commands.NewChangeProductPriceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateSeedCatalogCommandHandler() commands.SeedCatalogCommandHandler {
	return commands.NewSeedCatalogCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.shoppingUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.shoppingUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateSetAvailabilityCommandHandler() commands.SetAvailabilityCommandHandler {
	return commands.NewSetAvailabilityCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.store.Users())
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.store.Products())
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.store.Products())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store.Orders(), c.store.Users())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.store.Orders(), c.store.Users())
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.store.Orders(), c.store.Customers(), c.store.Users())
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.store.Orders(), c.store.Riders(), c.store.Users())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.store.Customers(), c.store.Products())
}

func (c *CompositionRoot) CreateGetRiderQueryHandler() queries.GetRiderQueryHandler {
	return queries.NewGetRiderQueryHandler(c.store.Riders())
}

func (c *CompositionRoot) CreateGetSnapshotQueryHandler() queries.GetSnapshotQueryHandler {
	return queries.NewGetSnapshotQueryHandler(c.store.Products(), c.store.Orders(), c.store.Users())
}

func (c *CompositionRoot) CreatePolicyFactory() policies.Factory {
	return policies.NewFactory(policies.Handlers{
		RegisterUser:         c.CreateRegisterUserCommandHandler(),
		UpdateProfile:        c.CreateUpdateProfileCommandHandler(),
		AddProduct:           c.CreateAddProductCommandHandler(),
		RestockProduct:       c.CreateRestockProductCommandHandler(),
		ChangeProductPrice:   c.CreateChangeProductPriceCommandHandler(),
		AddToCart:            c.CreateAddToCartCommandHandler(),
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		AcceptOrder:          c.CreateAcceptOrderCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),
		SetAvailability:      c.CreateSetAvailabilityCommandHandler(),
		Authenticate:         c.CreateAuthenticateQueryHandler(),
		ListProducts:         c.CreateListProductsQueryHandler(),
		GetProduct:           c.CreateGetProductQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetAllOrders:         c.CreateGetAllOrdersQueryHandler(),
		GetCustomerOrders:    c.CreateGetCustomerOrdersQueryHandler(),
		GetPendingOrders:     c.CreateGetPendingOrdersQueryHandler(),
		GetCart:              c.CreateGetCartQueryHandler(),
		GetRider:             c.CreateGetRiderQueryHandler(),
		GetSnapshot:          c.CreateGetSnapshotQueryHandler(),
	})
}

// CreateWebServer wires the HTTP adapter. A missing JWT secret is a
// configuration error.
func (c *CompositionRoot) CreateWebServer(ctx context.Context) (*echo.Echo, error) {
	tokens, err := httpin.NewTokenIssuer(c.config.JWTSecret, c.config.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("JWT_SECRET: %w", err)
	}
	server := httpin.NewServer(c.CreatePolicyFactory(), tokens, c.logger)
	return httpin.NewEcho(ctx, server, c.logger)
}

func (c *CompositionRoot) CreateSnapshotJob(snapshots ports.SnapshotStore) *jobs.SnapshotJob {
	return jobs.NewSnapshotJob(c.CreateGetSnapshotQueryHandler(), snapshots, c.logger)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncShoppingUoWFactory func() commands.ShoppingUoW

func (f FuncShoppingUoWFactory) Create() commands.ShoppingUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
