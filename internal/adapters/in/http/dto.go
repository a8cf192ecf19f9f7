package http

import (
	"encoding/json"

	"quickcart/internal/core/application/usecases/queries"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/ports"
)

const orderTimeLayout = "2006-01-02 15:04:05"

type NewSessionRequest struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type NewUserRequest struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type ProfileUpdateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NewProductRequest struct {
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Stock    int         `json:"stock"`
	Category string      `json:"category"`
}

type RestockRequest struct {
	Quantity int `json:"quantity"`
}

type PriceChangeRequest struct {
	Price json.Number `json:"price"`
}

type NewCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type StatusChangeRequest struct {
	Status string `json:"status"`
}

type AvailabilityChangeRequest struct {
	Availability string `json:"availability"`
}

type ProductResponse struct {
	ID       string      `json:"product_id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Stock    int         `json:"stock"`
	Category string      `json:"category"`
}

type CartEntryResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type LineItemResponse struct {
	ProductID string      `json:"product_id"`
	Name      string      `json:"name"`
	UnitPrice json.Number `json:"unit_price"`
	Quantity  int         `json:"quantity"`
	Subtotal  json.Number `json:"subtotal"`
}

type OrderResponse struct {
	ID         string             `json:"order_id"`
	CustomerID string             `json:"customer_id"`
	Customer   string             `json:"customer"`
	RiderID    *string            `json:"rider_id"`
	Rider      string             `json:"rider"`
	Items      []LineItemResponse `json:"items"`
	Status     string             `json:"status"`
	Total      json.Number        `json:"total_amount"`
	OrderTime  string             `json:"order_time"`
}

type RiderResponse struct {
	ID            string  `json:"rider_id"`
	Username      string  `json:"username"`
	Availability  string  `json:"availability"`
	ActiveOrderID *string `json:"active_order_id"`
}

type SnapshotOrderItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type SnapshotOrderResponse struct {
	ID        string                      `json:"order_id"`
	Customer  string                      `json:"customer"`
	Rider     string                      `json:"rider"`
	Products  []SnapshotOrderItemResponse `json:"products"`
	Status    string                      `json:"status"`
	Total     json.Number                 `json:"total_amount"`
	OrderTime string                      `json:"order_time"`
}

type SnapshotResponse struct {
	Products []ProductResponse       `json:"products"`
	Orders   []SnapshotOrderResponse `json:"orders"`
}

func amount(m kernel.Money) json.Number {
	return json.Number(m.String())
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toProductResponse(v queries.ProductView) ProductResponse {
	return ProductResponse{
		ID:       v.ID.String(),
		Name:     v.Name,
		Price:    amount(v.Price),
		Stock:    v.Stock,
		Category: v.Category,
	}
}

func toProductResponses(views []queries.ProductView) []ProductResponse {
	out := make([]ProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toProductResponse(v))
	}
	return out
}

func toCartResponse(entries []queries.CartEntryView) []CartEntryResponse {
	out := make([]CartEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CartEntryResponse{ProductID: e.ProductID.String(), Name: e.Name, Quantity: e.Quantity})
	}
	return out
}

func toOrderResponse(v queries.OrderView) OrderResponse {
	items := make([]LineItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, LineItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: amount(item.UnitPrice),
			Quantity:  item.Quantity,
			Subtotal:  amount(item.Subtotal),
		})
	}

	return OrderResponse{
		ID:         v.ID.String(),
		CustomerID: v.CustomerID.String(),
		Customer:   v.CustomerName,
		RiderID:    optionalID(v.RiderID),
		Rider:      v.RiderName,
		Items:      items,
		Status:     v.Status.String(),
		Total:      amount(v.Total),
		OrderTime:  v.CreatedAt.Format(orderTimeLayout),
	}
}

func toOrderResponses(views []queries.OrderView) []OrderResponse {
	out := make([]OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toOrderResponse(v))
	}
	return out
}

func toRiderResponse(v queries.RiderView) RiderResponse {
	return RiderResponse{
		ID:            v.ID.String(),
		Username:      v.Name,
		Availability:  v.Availability.String(),
		ActiveOrderID: optionalID(v.ActiveOrderID),
	}
}

func toSnapshotResponse(s ports.Snapshot) SnapshotResponse {
	resp := SnapshotResponse{
		Products: make([]ProductResponse, 0, len(s.Products)),
		Orders:   make([]SnapshotOrderResponse, 0, len(s.Orders)),
	}

	for _, p := range s.Products {
		resp.Products = append(resp.Products, ProductResponse{
			ID:       p.ID.String(),
			Name:     p.Name,
			Price:    amount(p.Price),
			Stock:    p.Stock,
			Category: p.Category,
		})
	}

	for _, o := range s.Orders {
		items := make([]SnapshotOrderItemResponse, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, SnapshotOrderItemResponse{Name: item.Name, Quantity: item.Quantity})
		}
		resp.Orders = append(resp.Orders, SnapshotOrderResponse{
			ID:        o.ID.String(),
			Customer:  o.Customer,
			Rider:     o.Rider,
			Products:  items,
			Status:    o.Status,
			Total:     amount(o.Total),
			OrderTime: o.CreatedAt.Format(orderTimeLayout),
		})
	}
	return resp
}
