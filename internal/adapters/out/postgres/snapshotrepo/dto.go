// Package snapshotrepo stores the snapshot in three tables and reads the
// catalog back from them on start-up.
package snapshotrepo

import (
	"time"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position int             `gorm:"index"`
	Name     string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock    int             `gorm:"not null"`
	Category string
}

func (ProductDTO) TableName() string {
	return "snapshot_products"
}

type OrderDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position int             `gorm:"index"`
	Customer string          `gorm:"not null"`
	Rider    string          `gorm:"not null"`
	Status   string          `gorm:"index;not null"`
	Total    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PlacedAt time.Time
	Items    []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "snapshot_orders"
}

type OrderItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Position int
	Name     string `gorm:"not null"`
	Quantity int    `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "snapshot_order_items"
}

func fromSnapshot(s ports.Snapshot) ([]ProductDTO, []OrderDTO) {
	products := make([]ProductDTO, 0, len(s.Products))
	for i, p := range s.Products {
		products = append(products, ProductDTO{
			ID:       p.ID.Bytes(),
			Position: i,
			Name:     p.Name,
			Price:    p.Price.Decimal(),
			Stock:    p.Stock,
			Category: p.Category,
		})
	}

	orders := make([]OrderDTO, 0, len(s.Orders))
	for i, o := range s.Orders {
		items := make([]OrderItemDTO, 0, len(o.Items))
		for j, item := range o.Items {
			items = append(items, OrderItemDTO{
				OrderID:  o.ID.Bytes(),
				Position: j,
				Name:     item.Name,
				Quantity: item.Quantity,
			})
		}

		orders = append(orders, OrderDTO{
			ID:       o.ID.Bytes(),
			Position: i,
			Customer: o.Customer,
			Rider:    o.Rider,
			Status:   o.Status,
			Total:    o.Total.Decimal(),
			PlacedAt: o.CreatedAt.UTC(),
			Items:    items,
		})
	}

	return products, orders
}

func (dto ProductDTO) toSeed() (ports.ProductSeed, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return ports.ProductSeed{}, err
	}

	return ports.ProductSeed{
		Name:     dto.Name,
		Price:    price,
		Stock:    dto.Stock,
		Category: dto.Category,
	}, nil
}
