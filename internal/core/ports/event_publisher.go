package ports

import (
	"context"

	"quickcart/internal/core/domain/model/order"
)

// EventPublisher delivers order change notifications after a commit.
type EventPublisher interface {
	Publish(ctx context.Context, event order.ChangedEvent) error
}
