package commands

import (
	"context"
	"fmt"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/core/ports"
	"quickcart/internal/pkg/errs"
)

func requireAdmin(ctx context.Context, users ports.UserReader, id kernel.UUID) error {
	u, err := users.Get(ctx, id)
	if err != nil {
		return err
	}
	if u.Role() != user.Admin {
		return errs.NewAccessDeniedErrorWithCause("admin role required", fmt.Errorf("%s is a %s", u.Name(), u.Role()))
	}
	return nil
}
