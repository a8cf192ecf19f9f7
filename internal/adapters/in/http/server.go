// Package http exposes the role policies over a JSON API. Requests are
// validated against the embedded OpenAPI document before they reach a
// handler, and every route except login and registration needs a bearer
// token issued by POST /api/v1/sessions.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"quickcart/internal/core/application/policies"
	"quickcart/internal/core/application/usecases/queries"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server translates HTTP requests into role policy calls.
type Server struct {
	factory policies.Factory
	tokens  *TokenIssuer
	logger  *slog.Logger
}

func NewServer(factory policies.Factory, tokens *TokenIssuer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{factory: factory, tokens: tokens, logger: logger.With("component", "HTTPServer")}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/sessions", s.CreateSession)
	api.POST("/users", s.RegisterUser)
	api.PUT("/profile", s.UpdateProfile, s.authenticate)

	api.GET("/products", s.ListProducts, s.authenticate)
	api.POST("/products", s.AddProduct, s.authenticate)
	api.POST("/products/:productId/restock", s.RestockProduct, s.authenticate)
	api.PUT("/products/:productId/price", s.ChangeProductPrice, s.authenticate)

	api.GET("/cart", s.GetCart, s.authenticate)
	api.POST("/cart/items", s.AddToCart, s.authenticate)

	api.GET("/orders", s.ListOrders, s.authenticate)
	api.POST("/orders", s.PlaceOrder, s.authenticate)
	api.GET("/orders/pending", s.ListPendingOrders, s.authenticate)
	api.POST("/orders/:orderId/accept", s.AcceptOrder, s.authenticate)
	api.PUT("/orders/:orderId/status", s.UpdateDeliveryStatus, s.authenticate)

	api.GET("/rider", s.GetRider, s.authenticate)
	api.PUT("/rider/availability", s.SetAvailability, s.authenticate)

	api.GET("/snapshot", s.GetSnapshot, s.authenticate)
}

// pathID reads a uuid path parameter.
func pathID(c echo.Context, name string) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromString(raw)
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, err.Error()))
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(c echo.Context) error {
	var req NewSessionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return s.fail(c, err)
	}

	session, ok := s.factory.Login(c.Request().Context(), role, req.Username, req.Password)
	if !ok {
		return c.JSON(http.StatusUnauthorized, newErrorResponse(http.StatusUnauthorized, "invalid username or password"))
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, SessionResponse{
		Token:    token,
		UserID:   session.UserID.String(),
		Username: session.Name,
		Role:     session.Role.String(),
	})
}

// RegisterUser handles POST /api/v1/users. Admins cannot be registered.
func (s *Server) RegisterUser(c echo.Context) error {
	var req NewUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return s.fail(c, err)
	}
	if role == user.Admin {
		return s.fail(c, errs.NewValueIsInvalidError("role"))
	}

	id, err := s.factory.Register(c.Request().Context(), role, req.Username, req.Password, req.Email)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// UpdateProfile handles PUT /api/v1/profile for any role.
func (s *Server) UpdateProfile(c echo.Context) error {
	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	session := sessionOf(c)

	var profile interface {
		UpdateProfile(ctx context.Context, email, password string) error
	}
	switch session.Role {
	case user.Admin:
		profile = s.factory.Admin(session.UserID)
	case user.Customer:
		profile = s.factory.Customer(session.UserID)
	default:
		profile = s.factory.Rider(session.UserID)
	}
	if err := profile.UpdateProfile(c.Request().Context(), req.Email, req.Password); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListProducts handles GET /api/v1/products for any role.
func (s *Server) ListProducts(c echo.Context) error {
	session := sessionOf(c)

	var (
		views []queries.ProductView
		err   error
	)
	if session.Role == user.Admin {
		views, err = s.factory.Admin(session.UserID).Products(c.Request().Context())
	} else {
		views, err = s.factory.Customer(session.UserID).Browse(c.Request().Context())
	}
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toProductResponses(views))
}

// AddProduct handles POST /api/v1/products.
func (s *Server) AddProduct(c echo.Context) error {
	session, ok := requireRole(c, user.Admin)
	if !ok {
		return nil
	}

	var req NewProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	price, err := kernel.MoneyFromString(req.Price.String())
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.factory.Admin(session.UserID).AddProduct(c.Request().Context(), req.Name, price, req.Stock, req.Category)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toProductResponse(view))
}

// RestockProduct handles POST /api/v1/products/{productId}/restock.
func (s *Server) RestockProduct(c echo.Context) error {
	session, ok := requireRole(c, user.Admin)
	if !ok {
		return nil
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return s.fail(c, err)
	}
	var req RestockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	view, err := s.factory.Admin(session.UserID).Restock(c.Request().Context(), productID, req.Quantity)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toProductResponse(view))
}

// ChangeProductPrice handles PUT /api/v1/products/{productId}/price.
func (s *Server) ChangeProductPrice(c echo.Context) error {
	session, ok := requireRole(c, user.Admin)
	if !ok {
		return nil
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return s.fail(c, err)
	}
	var req PriceChangeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	price, err := kernel.MoneyFromString(req.Price.String())
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.factory.Admin(session.UserID).ChangePrice(c.Request().Context(), productID, price)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toProductResponse(view))
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(c echo.Context) error {
	session, ok := requireRole(c, user.Customer)
	if !ok {
		return nil
	}

	entries, err := s.factory.Customer(session.UserID).ViewCart(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCartResponse(entries))
}

// AddToCart handles POST /api/v1/cart/items.
func (s *Server) AddToCart(c echo.Context) error {
	session, ok := requireRole(c, user.Customer)
	if !ok {
		return nil
	}

	var req NewCartItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.factory.Customer(session.UserID).AddToCart(c.Request().Context(), productID, req.Quantity); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders: everything for an admin, the
// caller's own orders for a customer.
func (s *Server) ListOrders(c echo.Context) error {
	session := sessionOf(c)

	var (
		views []queries.OrderView
		err   error
	)
	switch session.Role {
	case user.Admin:
		views, err = s.factory.Admin(session.UserID).ViewAllOrders(c.Request().Context())
	case user.Customer:
		views, err = s.factory.Customer(session.UserID).ViewOrderHistory(c.Request().Context())
	default:
		return c.JSON(http.StatusForbidden, newErrorResponse(http.StatusForbidden, "access denied: riders list pending orders"))
	}
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponses(views))
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	session, ok := requireRole(c, user.Customer)
	if !ok {
		return nil
	}

	view, err := s.factory.Customer(session.UserID).PlaceOrder(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toOrderResponse(view))
}

// ListPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) ListPendingOrders(c echo.Context) error {
	session, ok := requireRole(c, user.Rider)
	if !ok {
		return nil
	}

	views, err := s.factory.Rider(session.UserID).ViewPendingOrders(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponses(views))
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(c echo.Context) error {
	session, ok := requireRole(c, user.Rider)
	if !ok {
		return nil
	}

	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.factory.Rider(session.UserID).AcceptOrder(c.Request().Context(), orderID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(view))
}

// UpdateDeliveryStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	session, ok := requireRole(c, user.Rider)
	if !ok {
		return nil
	}

	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	var req StatusChangeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.factory.Rider(session.UserID).UpdateDeliveryStatus(c.Request().Context(), orderID, status)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(view))
}

// GetRider handles GET /api/v1/rider.
func (s *Server) GetRider(c echo.Context) error {
	session, ok := requireRole(c, user.Rider)
	if !ok {
		return nil
	}

	view, err := s.factory.Rider(session.UserID).Status(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toRiderResponse(view))
}

// SetAvailability handles PUT /api/v1/rider/availability.
func (s *Server) SetAvailability(c echo.Context) error {
	session, ok := requireRole(c, user.Rider)
	if !ok {
		return nil
	}

	var req AvailabilityChangeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	availability, err := rider.ParseAvailability(req.Availability)
	if err != nil {
		return s.fail(c, err)
	}

	policy := s.factory.Rider(session.UserID)
	if err := policy.SetAvailability(c.Request().Context(), availability); err != nil {
		return s.fail(c, err)
	}
	view, err := policy.Status(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toRiderResponse(view))
}

// GetSnapshot handles GET /api/v1/snapshot.
func (s *Server) GetSnapshot(c echo.Context) error {
	session, ok := requireRole(c, user.Admin)
	if !ok {
		return nil
	}

	snapshot, err := s.factory.Admin(session.UserID).Snapshot(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toSnapshotResponse(snapshot))
}
