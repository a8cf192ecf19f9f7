// Package eventlog writes order-changed events to the log. It is used when
// no message broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/ports"
)

type Publisher struct {
	logger *slog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{logger: logger.With("component", "EventLog")}
}

func (p *Publisher) Publish(ctx context.Context, event order.ChangedEvent) error {
	rider := "unassigned"
	if event.RiderID != nil {
		rider = event.RiderID.String()
	}

	p.logger.InfoContext(ctx, "order changed",
		"order_id", event.OrderID.String(),
		"customer_id", event.CustomerID.String(),
		"rider_id", rider,
		"status", event.Status.String(),
		"total_amount", event.Total.String(),
	)
	return nil
}
