// AngelaMos | 2026
// token.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/matrimony-backend/internal/config"
	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/middleware"
)

const (
	emailClaim     = "email"
	minSecretBytes = 32
)

// TokenTTL is the fixed lifetime of every session token.
const TokenTTL = time.Hour

type Claims struct {
	Email string
}

// TokenService issues and verifies HS256 session tokens signed with a
// process-wide secret.
type TokenService struct {
	key    jwk.Key
	issuer string
	now    func() time.Time
}

type Option func(*TokenService)

// WithClock replaces the wall clock used for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(cfg config.JWTConfig, opts ...Option) (*TokenService, error) {
	if len(cfg.Secret) < minSecretBytes {
		return nil, fmt.Errorf("token secret must be at least %d bytes", minSecretBytes)
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	s := &TokenService{
		key:    key,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *TokenService) TTL() time.Duration {
	return TokenTTL
}

func (s *TokenService) Issue(claims Claims) (string, error) {
	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return "", fmt.Errorf("issue token: empty email: %w", core.ErrInvalidInput)
	}

	now := s.now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(s.issuer).
		IssuedAt(now).
		NotBefore(now).
		Expiration(now.Add(TokenTTL)).
		Claim(emailClaim, email).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), s.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// Verify returns the embedded claims of a valid token. Malformed, forged
// and expired tokens all fail with core.ErrTokenInvalid and nothing else.
func (s *TokenService) Verify(
	_ context.Context,
	tokenString string,
) (*middleware.Claims, error) {
	now := s.now()

	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), s.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(s.issuer),
		jwt.WithClock(jwt.ClockFunc(func() time.Time { return now })),
	)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	exp, ok := token.Expiration()
	if !ok || !now.Before(exp) {
		return nil, fmt.Errorf("verify token: expired: %w", core.ErrTokenInvalid)
	}

	var email string
	if err := token.Get(emailClaim, &email); err != nil || email == "" {
		return nil, fmt.Errorf(
			"verify token: missing email claim: %w",
			core.ErrTokenInvalid,
		)
	}

	return &middleware.Claims{Email: email}, nil
}

var _ middleware.TokenVerifier = (*TokenService)(nil)
