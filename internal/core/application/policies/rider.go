package policies

import (
	"context"

	"quickcart/internal/core/application/usecases/commands"
	"quickcart/internal/core/application/usecases/queries"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/rider"
)

// Rider takes pending orders and delivers them.
type Rider struct {
	account
}

func (r Rider) Status(ctx context.Context) (queries.RiderView, error) {
	query, err := queries.NewGetRiderQuery(r.id)
	if err != nil {
		return queries.RiderView{}, err
	}
	return r.handlers.GetRider.Handle(ctx, query)
}

func (r Rider) SetAvailability(ctx context.Context, availability rider.Availability) error {
	cmd, err := commands.NewSetAvailabilityCommand(r.id, availability)
	if err != nil {
		return err
	}
	return r.handlers.SetAvailability.Handle(ctx, cmd)
}

func (r Rider) ViewPendingOrders(ctx context.Context) ([]queries.OrderView, error) {
	query, err := queries.NewGetPendingOrdersQuery(r.id)
	if err != nil {
		return nil, err
	}
	return r.handlers.GetPendingOrders.Handle(ctx, query)
}

func (r Rider) AcceptOrder(ctx context.Context, orderID kernel.UUID) (queries.OrderView, error) {
	cmd, err := commands.NewAcceptOrderCommand(r.id, orderID)
	if err != nil {
		return queries.OrderView{}, err
	}
	if err = r.handlers.AcceptOrder.Handle(ctx, cmd); err != nil {
		return queries.OrderView{}, err
	}
	return r.order(ctx, orderID)
}

func (r Rider) UpdateDeliveryStatus(ctx context.Context, orderID kernel.UUID, status order.Status) (queries.OrderView, error) {
	cmd, err := commands.NewUpdateDeliveryStatusCommand(r.id, orderID, status)
	if err != nil {
		return queries.OrderView{}, err
	}
	if err = r.handlers.UpdateDeliveryStatus.Handle(ctx, cmd); err != nil {
		return queries.OrderView{}, err
	}
	return r.order(ctx, orderID)
}
