package queries

import (
	"context"

	"quickcart/internal/core/ports"
)

type GetRiderQueryHandler struct {
	riders ports.RiderReader
}

func NewGetRiderQueryHandler(riders ports.RiderReader) GetRiderQueryHandler {
	return GetRiderQueryHandler{riders: riders}
}

func (h GetRiderQueryHandler) Handle(ctx context.Context, query GetRiderQuery) (RiderView, error) {
	if err := query.Validate(); err != nil {
		return RiderView{}, err
	}

	r, err := h.riders.Get(ctx, query.RiderID())
	if err != nil {
		return RiderView{}, err
	}
	return RiderView{
		ID:            r.ID(),
		Name:          r.User().Name(),
		Availability:  r.Availability(),
		ActiveOrderID: r.ActiveOrder(),
	}, nil
}
