package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quickcart/cmd"
	quickhttp "quickcart/internal/adapters/in/http"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type api struct {
	t *testing.T
	e *echo.Echo
}

func newAPI(t *testing.T) *api {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	root := cmd.NewCompositionRoot(cmd.Config{}, nil, logger)
	factory := root.CreatePolicyFactory()
	for _, u := range []struct {
		role                  user.Role
		name, password, email string
	}{
		{user.Admin, "adminKorede", "admin123", "admin@quickcart.com"},
		{user.Customer, "customer1", "customer123", "customer1@quickcart.com"},
		{user.Rider, "rider1", "rider123", "rider1@quickcart.com"},
	} {
		_, err := factory.Register(ctx, u.role, u.name, u.password, u.email)
		require.NoError(t, err)
	}

	tokens, err := quickhttp.NewTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	e, err := quickhttp.NewEcho(ctx, quickhttp.NewServer(factory, tokens, logger), logger)
	require.NoError(t, err)
	return &api{t: t, e: e}
}

func (a *api) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *api) login(role, name, password string) string {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/v1/sessions", "", map[string]string{
		"role": role, "username": name, "password": password,
	})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var resp quickhttp.SessionResponse
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *api) addWidget(adminToken string) quickhttp.ProductResponse {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/v1/products", adminToken, map[string]any{
		"name": "Widget", "price": 10, "stock": 5, "category": "Gadgets",
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[quickhttp.ProductResponse](a.t, rec)
}

func TestHealth(t *testing.T) {
	a := newAPI(t)

	t.Run("should report healthy", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Healthy", rec.Body.String())
	})

	t.Run("should serve the api document", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/swagger/doc.json", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "QuickCart API")
	})

	t.Run("should serve the docs ui", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/swagger/index.html", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUndocumentedRoutes(t *testing.T) {
	a := newAPI(t)

	t.Run("should answer 404 for an unknown api path", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/nope", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should answer 405 for a method the route does not serve", func(t *testing.T) {
		rec := a.do(http.MethodDelete, "/api/v1/products", "", nil)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestSessions(t *testing.T) {
	a := newAPI(t)

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/sessions", "", map[string]string{
			"role": "customer", "username": "customer1", "password": "customer123",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[quickhttp.SessionResponse](t, rec)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "customer", resp.Role)
		assert.Equal(t, "customer1", resp.Username)
	})

	t.Run("should answer 401 for a wrong password", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/sessions", "", map[string]string{
			"role": "customer", "username": "customer1", "password": "nope",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should answer 400 for an unknown role", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/sessions", "", map[string]string{
			"role": "owner", "username": "customer1", "password": "customer123",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 401 without a token", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/products", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should answer 401 for a forged token", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/products", "not-a-jwt", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUsers(t *testing.T) {
	a := newAPI(t)

	t.Run("should register a customer who can then log in", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/users", "", map[string]string{
			"role": "customer", "username": "customer2", "password": "pw", "email": "c2@quickcart.com",
		})

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[quickhttp.CreatedResponse](t, rec)
		_, err := kernel.UUIDFromString(resp.ID)
		assert.NoError(t, err)
		assert.NotEmpty(t, a.login("customer", "customer2", "pw"))
	})

	t.Run("should answer 409 for a taken name", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/users", "", map[string]string{
			"role": "rider", "username": "rider1", "password": "pw", "email": "r@quickcart.com",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should refuse admin registration", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/users", "", map[string]string{
			"role": "admin", "username": "root", "password": "pw", "email": "root@quickcart.com",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should update the profile of the logged-in user", func(t *testing.T) {
		token := a.login("rider", "rider1", "rider123")

		rec := a.do(http.MethodPut, "/api/v1/profile", token, map[string]string{"password": "changed"})

		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		assert.NotEmpty(t, a.login("rider", "rider1", "changed"))
	})
}

func TestProducts(t *testing.T) {
	a := newAPI(t)
	adminToken := a.login("admin", "adminKorede", "admin123")
	customerToken := a.login("customer", "customer1", "customer123")
	widget := a.addWidget(adminToken)

	t.Run("should list products for any role", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/products", customerToken, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		products := decode[[]quickhttp.ProductResponse](t, rec)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget", products[0].Name)
		assert.Equal(t, "10.00", products[0].Price.String())
		assert.Equal(t, 5, products[0].Stock)
	})

	t.Run("should answer 403 when a customer adds a product", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/products", customerToken, map[string]any{
			"name": "Gizmo", "price": 1, "stock": 1, "category": "Tools",
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should answer 400 for a negative price", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/products", adminToken, map[string]any{
			"name": "Gizmo", "price": -1, "stock": 1, "category": "Tools",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 400 for a missing field", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/products", adminToken, map[string]any{
			"name": "Gizmo", "stock": 1, "category": "Tools",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should restock a product", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/products/"+widget.ID+"/restock", adminToken, map[string]int{"quantity": 3})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 8, decode[quickhttp.ProductResponse](t, rec).Stock)
	})

	t.Run("should change the price", func(t *testing.T) {
		rec := a.do(http.MethodPut, "/api/v1/products/"+widget.ID+"/price", adminToken, map[string]any{"price": 12.5})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "12.50", decode[quickhttp.ProductResponse](t, rec).Price.String())
	})

	t.Run("should answer 404 for an unknown product", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/products/"+kernel.NewUUID().String()+"/restock", adminToken,
			map[string]int{"quantity": 3})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should answer 400 for a malformed id", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/products/abc/restock", adminToken, map[string]int{"quantity": 3})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderLifecycle(t *testing.T) {
	a := newAPI(t)
	adminToken := a.login("admin", "adminKorede", "admin123")
	customerToken := a.login("customer", "customer1", "customer123")
	riderToken := a.login("rider", "rider1", "rider123")
	widget := a.addWidget(adminToken)

	t.Run("should answer 409 when placing an empty cart", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/orders", customerToken, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should answer 409 when asking for more than the stock", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/cart/items", customerToken, map[string]any{
			"product_id": widget.ID, "quantity": 6,
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	var placed quickhttp.OrderResponse
	t.Run("should place an order from the cart", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/cart/items", customerToken, map[string]any{
			"product_id": widget.ID, "quantity": 2,
		})
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = a.do(http.MethodGet, "/api/v1/cart", customerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		cart := decode[[]quickhttp.CartEntryResponse](t, rec)
		require.Len(t, cart, 1)
		assert.Equal(t, 2, cart[0].Quantity)

		rec = a.do(http.MethodPost, "/api/v1/orders", customerToken, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		placed = decode[quickhttp.OrderResponse](t, rec)
		assert.Equal(t, "pending", placed.Status)
		assert.Equal(t, "20.00", placed.Total.String())
		assert.Equal(t, "customer1", placed.Customer)
		assert.Equal(t, "Unassigned", placed.Rider)
		assert.Nil(t, placed.RiderID)
	})

	t.Run("should answer 403 when an offline rider accepts", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/orders/"+placed.ID+"/accept", riderToken, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should let an available rider accept", func(t *testing.T) {
		rec := a.do(http.MethodPut, "/api/v1/rider/availability", riderToken, map[string]string{"availability": "available"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "available", decode[quickhttp.RiderResponse](t, rec).Availability)

		rec = a.do(http.MethodGet, "/api/v1/orders/pending", riderToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]quickhttp.OrderResponse](t, rec), 1)

		rec = a.do(http.MethodPost, "/api/v1/orders/"+placed.ID+"/accept", riderToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		accepted := decode[quickhttp.OrderResponse](t, rec)
		assert.Equal(t, "accepted", accepted.Status)
		assert.Equal(t, "rider1", accepted.Rider)
	})

	t.Run("should answer 409 when skipping in_progress", func(t *testing.T) {
		rec := a.do(http.MethodPut, "/api/v1/orders/"+placed.ID+"/status", riderToken, map[string]string{"status": "delivered"})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should answer 400 for an unknown status", func(t *testing.T) {
		rec := a.do(http.MethodPut, "/api/v1/orders/"+placed.ID+"/status", riderToken, map[string]string{"status": "lost"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should deliver and free the rider", func(t *testing.T) {
		rec := a.do(http.MethodPut, "/api/v1/orders/"+placed.ID+"/status", riderToken, map[string]string{"status": "in_progress"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = a.do(http.MethodGet, "/api/v1/rider", riderToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "busy", decode[quickhttp.RiderResponse](t, rec).Availability)

		rec = a.do(http.MethodPut, "/api/v1/orders/"+placed.ID+"/status", riderToken, map[string]string{"status": "delivered"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "delivered", decode[quickhttp.OrderResponse](t, rec).Status)

		rec = a.do(http.MethodGet, "/api/v1/rider", riderToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		status := decode[quickhttp.RiderResponse](t, rec)
		assert.Equal(t, "available", status.Availability)
		assert.Nil(t, status.ActiveOrderID)
	})

	t.Run("should list orders by role", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/orders", customerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]quickhttp.OrderResponse](t, rec), 1)

		rec = a.do(http.MethodGet, "/api/v1/orders", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]quickhttp.OrderResponse](t, rec), 1)

		rec = a.do(http.MethodGet, "/api/v1/orders", riderToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should return the snapshot to the admin only", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/snapshot", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		snapshot := decode[quickhttp.SnapshotResponse](t, rec)
		require.Len(t, snapshot.Products, 1)
		assert.Equal(t, 3, snapshot.Products[0].Stock)
		require.Len(t, snapshot.Orders, 1)
		assert.Equal(t, "rider1", snapshot.Orders[0].Rider)
		assert.Equal(t, "delivered", snapshot.Orders[0].Status)

		rec = a.do(http.MethodGet, "/api/v1/snapshot", customerToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
