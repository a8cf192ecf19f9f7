package kernel

import (
	"errors"
	"fmt"

	"quickcart/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var ErrCredentialIsNotConstructed = errors.New("Credential must be created via NewCredential or CredentialFromHash")

// Credential stores a bcrypt hash of a user's secret. The plain secret is
// never kept.
type Credential struct {
	hash []byte
}

func NewCredential(secret string) (Credential, error) {
	if secret == "" {
		return Credential{}, errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, errs.NewValueIsInvalidErrorWithCause("password", fmt.Errorf("hashing failed: %w", err))
	}
	return Credential{hash: hash}, nil
}

// CredentialFromHash restores a credential from a stored bcrypt hash.
func CredentialFromHash(hash string) (Credential, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return Credential{}, errs.NewValueIsInvalidErrorWithCause("password hash", err)
	}
	return Credential{hash: []byte(hash)}, nil
}

func (c Credential) Validate() error {
	if len(c.hash) == 0 {
		return ErrCredentialIsNotConstructed
	}
	return nil
}

// Matches reports whether secret is the one the credential was built from.
func (c Credential) Matches(secret string) bool {
	if len(c.hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.hash, []byte(secret)) == nil
}

func (c Credential) Hash() string {
	return string(c.hash)
}
