package commands

import (
	"context"
)

type UpdateProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewUpdateProfileCommandHandler(uowFactory AccountUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if cmd.Email() != "" {
		if err = u.ChangeEmail(cmd.Email()); err != nil {
			return err
		}
	}
	if cmd.Password() != "" {
		if err = u.ChangePassword(cmd.Password()); err != nil {
			return err
		}
	}

	if err = users.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
