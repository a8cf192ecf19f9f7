package queries

import (
	"context"
	"errors"

	"quickcart/internal/core/ports"
	"quickcart/internal/pkg/errs"
)

type AuthenticateQueryHandler struct {
	users ports.UserReader
}

func NewAuthenticateQueryHandler(users ports.UserReader) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{users: users}
}

// Handle returns ErrInvalidCredentials for an unknown name, a wrong
// password or a user of another role alike.
func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	u, err := h.users.GetByName(ctx, query.Name())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthenticateQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	if u.Role() != query.Role() || !u.Login(query.Name(), query.Password()) {
		return AuthenticateQueryResponse{}, ErrInvalidCredentials
	}

	return AuthenticateQueryResponse{
		UserID: u.ID(),
		Name:   u.Name(),
		Role:   u.Role(),
	}, nil
}
