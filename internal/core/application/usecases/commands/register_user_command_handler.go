package commands

import (
	"context"

	"quickcart/internal/core/domain/model/user"
)

type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle hashes the password and stores the user. A taken display name is
// reported as errs.StateConflictError.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Password(), cmd.Email(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
