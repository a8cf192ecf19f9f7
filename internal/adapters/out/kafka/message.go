package kafka

import (
	"time"

	"quickcart/internal/core/domain/model/order"
)

// OrderChangedMessage is the JSON payload of an order-changed event.
type OrderChangedMessage struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	RiderID    *string   `json:"rider_id"`
	Status     string    `json:"status"`
	Total      string    `json:"total_amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

func fromEvent(event order.ChangedEvent) OrderChangedMessage {
	var riderID *string
	if event.RiderID != nil {
		id := event.RiderID.String()
		riderID = &id
	}

	return OrderChangedMessage{
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID.String(),
		RiderID:    riderID,
		Status:     event.Status.String(),
		Total:      event.Total.String(),
		OccurredAt: event.OccurredAt.UTC(),
	}
}
