package commands

import (
	"errors"
	"strings"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/pkg/errs"
	"quickcart/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates a user of any role. Display names are unique.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	role     user.Role
	name     string
	password string
	email    string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	userID kernel.UUID,
	role user.Role,
	name string,
	password string,
	email string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		password: password,
		email:    strings.TrimSpace(email),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userID.Validate(),
		role.Validate(),
		cmd.setName(name),
		requireValue("password", password),
		requireValue("email", cmd.email),
	); err != nil {
		return RegisterUserCommand{}, err
	}
	cmd.userID = userID
	cmd.role = role

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c *RegisterUserCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func requireValue(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
