package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is the record shared by every role: identity, display name,
// credential and contact address.
type User struct {
	id         kernel.UUID
	name       string
	credential kernel.Credential
	email      string
	role       Role
	createdAt  time.Time

	isConstructed bool
}

func NewUser(id kernel.UUID, name, password, email string, role Role) (*User, error) {
	u := &User{
		createdAt:     time.Now(),
		isConstructed: true,
	}

	credential, credErr := kernel.NewCredential(password)
	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		credErr,
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	u.credential = credential

	return u, nil
}

// RestoreUser rebuilds a user from storage without re-hashing the credential.
func RestoreUser(
	id kernel.UUID,
	name string,
	credential kernel.Credential,
	email string,
	role Role,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		credential:    credential,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		credential.Validate(),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) Credential() kernel.Credential {
	return u.credential
}

// Login is a pure equality check of name and secret. It never mutates the user.
func (u *User) Login(name, password string) bool {
	return u.name == name && u.credential.Matches(password)
}

func (u *User) ChangeEmail(email string) error {
	return u.setEmail(email)
}

func (u *User) ChangePassword(password string) error {
	credential, err := kernel.NewCredential(password)
	if err != nil {
		return err
	}
	u.credential = credential
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
