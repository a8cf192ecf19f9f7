package user

import (
	"fmt"

	"quickcart/internal/pkg/errs"
)

// Role is the capability set a user acts with.
type Role int

const (
	UnknownRole Role = iota
	Admin
	Customer
	Rider
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Admin:    "admin",
		Customer: "customer",
		Rider:    "rider",
	}
}

// ParseRole converts the external role name. Unknown names are a validation error.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
