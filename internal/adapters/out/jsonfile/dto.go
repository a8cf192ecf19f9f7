package jsonfile

import (
	"encoding/json"
	"fmt"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/ports"
)

const orderTimeLayout = "2006-01-02 15:04:05"

type document struct {
	Products []productDTO `json:"products"`
	Orders   []orderDTO   `json:"orders"`
}

type productDTO struct {
	ID       string      `json:"product_id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Stock    int         `json:"stock"`
	Category string      `json:"category"`
}

type orderDTO struct {
	ID        string         `json:"order_id"`
	Customer  string         `json:"customer"`
	Rider     string         `json:"rider"`
	Products  []orderItemDTO `json:"products"`
	Status    string         `json:"status"`
	Total     json.Number    `json:"total_amount"`
	OrderTime string         `json:"order_time"`
}

type orderItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func fromSnapshot(s ports.Snapshot) document {
	doc := document{
		Products: make([]productDTO, 0, len(s.Products)),
		Orders:   make([]orderDTO, 0, len(s.Orders)),
	}

	for _, p := range s.Products {
		doc.Products = append(doc.Products, productDTO{
			ID:       p.ID.String(),
			Name:     p.Name,
			Price:    json.Number(p.Price.Decimal().String()),
			Stock:    p.Stock,
			Category: p.Category,
		})
	}

	for _, o := range s.Orders {
		items := make([]orderItemDTO, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, orderItemDTO{Name: item.Name, Quantity: item.Quantity})
		}

		doc.Orders = append(doc.Orders, orderDTO{
			ID:        o.ID.String(),
			Customer:  o.Customer,
			Rider:     o.Rider,
			Products:  items,
			Status:    o.Status,
			Total:     json.Number(o.Total.Decimal().String()),
			OrderTime: o.CreatedAt.Format(orderTimeLayout),
		})
	}

	return doc
}

func (dto productDTO) toSeed() (ports.ProductSeed, error) {
	price, err := kernel.MoneyFromString(dto.Price.String())
	if err != nil {
		return ports.ProductSeed{}, fmt.Errorf("product %q: %w", dto.Name, err)
	}

	return ports.ProductSeed{
		Name:     dto.Name,
		Price:    price,
		Stock:    dto.Stock,
		Category: dto.Category,
	}, nil
}
