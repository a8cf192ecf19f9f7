package queries

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/pkg/errs"
	"quickcart/internal/pkg/guard"
)

var (
	ErrAuthenticateQueryIsNotConstructed = errors.New(
		"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
	)
	ErrInvalidCredentials = errs.NewAccessDeniedError("invalid username or password")
)

// AuthenticateQuery checks a display name and password against the user
// directory for the given role. It has no side effects.
type AuthenticateQuery struct {
	role     user.Role
	name     string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(role user.Role, name, password string) (AuthenticateQuery, error) {
	if err := role.Validate(); err != nil {
		return AuthenticateQuery{}, err
	}
	return AuthenticateQuery{
		role:     role,
		name:     name,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

func (q AuthenticateQuery) Role() user.Role {
	return q.role
}

func (q AuthenticateQuery) Name() string {
	return q.name
}

func (q AuthenticateQuery) Password() string {
	return q.password
}

// AuthenticateQueryResponse identifies the logged-in user.
type AuthenticateQueryResponse struct {
	UserID kernel.UUID
	Name   string
	Role   user.Role
}
