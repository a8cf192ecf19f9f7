package http_test

import (
	"testing"
	"time"

	quickhttp "quickcart/internal/adapters/in/http"
	"quickcart/internal/core/application/policies"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer(t *testing.T) {
	session := policies.Session{UserID: kernel.NewUUID(), Name: "rider1", Role: user.Rider}

	t.Run("should require a secret", func(t *testing.T) {
		_, err := quickhttp.NewTokenIssuer("", time.Hour)

		assert.Error(t, err)
	})

	t.Run("should parse its own tokens", func(t *testing.T) {
		issuer, err := quickhttp.NewTokenIssuer(testSecret, time.Hour)
		require.NoError(t, err)

		token, err := issuer.Issue(session)
		require.NoError(t, err)
		parsed, err := issuer.Parse(token)

		require.NoError(t, err)
		assert.Equal(t, session, parsed)
	})

	t.Run("should reject tokens signed with another secret", func(t *testing.T) {
		other, err := quickhttp.NewTokenIssuer("other", time.Hour)
		require.NoError(t, err)
		token, err := other.Issue(session)
		require.NoError(t, err)

		issuer, err := quickhttp.NewTokenIssuer(testSecret, time.Hour)
		require.NoError(t, err)
		_, err = issuer.Parse(token)

		assert.ErrorIs(t, err, quickhttp.ErrInvalidToken)
	})

	t.Run("should reject expired tokens", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  session.UserID.String(),
			"role": "rider",
			"iss":  "quickcart",
			"exp":  time.Now().Add(-time.Minute).Unix(),
		})
		token, err := expired.SignedString([]byte(testSecret))
		require.NoError(t, err)

		issuer, err := quickhttp.NewTokenIssuer(testSecret, time.Hour)
		require.NoError(t, err)
		_, err = issuer.Parse(token)

		assert.ErrorIs(t, err, quickhttp.ErrInvalidToken)
	})

	t.Run("should reject unsigned tokens", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": session.UserID.String(), "role": "admin", "iss": "quickcart",
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		issuer, err := quickhttp.NewTokenIssuer(testSecret, time.Hour)
		require.NoError(t, err)
		_, err = issuer.Parse(token)

		assert.ErrorIs(t, err, quickhttp.ErrInvalidToken)
	})
}
