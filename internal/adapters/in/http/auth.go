package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quickcart/internal/core/application/policies"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	sessionKey      = "session"
	defaultIssuer   = "quickcart"
	defaultTokenTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

type claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens. The subject is the
// user id.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *TokenIssuer) Issue(session policies.Session) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name: session.Name,
		Role: session.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    defaultIssuer,
			Subject:   session.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})
	return token.SignedString(i.secret)
}

func (i *TokenIssuer) Parse(raw string) (policies.Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(defaultIssuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return policies.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return policies.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	role, err := user.ParseRole(c.Role)
	if err != nil {
		return policies.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return policies.Session{UserID: id, Name: c.Name, Role: role}, nil
}

// authenticate requires a bearer token and stores its session in the
// echo context.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return c.JSON(http.StatusUnauthorized, newErrorResponse(http.StatusUnauthorized, "missing bearer token"))
		}

		session, err := s.tokens.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, newErrorResponse(http.StatusUnauthorized, ErrInvalidToken.Error()))
		}

		c.Set(sessionKey, session)
		return next(c)
	}
}

func sessionOf(c echo.Context) policies.Session {
	session, _ := c.Get(sessionKey).(policies.Session)
	return session
}

// requireRole answers 403 when the session belongs to another role.
func requireRole(c echo.Context, role user.Role) (policies.Session, bool) {
	session := sessionOf(c)
	if session.Role != role {
		_ = c.JSON(http.StatusForbidden, newErrorResponse(http.StatusForbidden,
			fmt.Sprintf("access denied: %s role required", role)))
		return session, false
	}
	return session, true
}
