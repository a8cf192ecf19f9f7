package commands

import (
	"errors"
	"strings"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"
	"quickcart/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand changes a user's email, password or both. An empty
// value leaves that field unchanged.
type UpdateProfileCommand struct {
	userID   kernel.UUID
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(userID kernel.UUID, email, password string) (UpdateProfileCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}
	email = strings.TrimSpace(email)
	if email == "" && password == "" {
		return UpdateProfileCommand{}, errs.NewValueIsRequiredError("email or password")
	}

	return UpdateProfileCommand{
		userID:   userID,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateProfileCommand) Email() string {
	return c.email
}

func (c UpdateProfileCommand) Password() string {
	return c.password
}
