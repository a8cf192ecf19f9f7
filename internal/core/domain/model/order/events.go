package order

import (
	"time"

	"quickcart/internal/core/domain/model/kernel"
)

// ChangedEvent describes an order after it was placed or transitioned.
type ChangedEvent struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	RiderID    *kernel.UUID
	Status     Status
	Total      kernel.Money
	OccurredAt time.Time
}

func NewChangedEvent(o *Order) ChangedEvent {
	return ChangedEvent{
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		RiderID:    o.Rider(),
		Status:     o.Status(),
		Total:      o.Total(),
		OccurredAt: time.Now(),
	}
}
