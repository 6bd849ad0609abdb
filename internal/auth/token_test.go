// AngelaMos | 2026
// token_test.go

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/carterperez-dev/matrimony-backend/internal/config"
	"github.com/carterperez-dev/matrimony-backend/internal/core"
)

const testSecret = "test-secret-test-secret-test-secret!"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestService(t *testing.T, clock *fakeClock) *TokenService {
	t.Helper()

	svc, err := NewTokenService(config.JWTConfig{
		Secret: testSecret,
		Issuer: "matrimony-test",
	}, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	return svc
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, clock)

	token, err := svc.Issue(Claims{Email: " Member@Example.com "})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Email != "member@example.com" {
		t.Errorf("Email = %q, want member@example.com", claims.Email)
	}
}

func TestVerifyExpiry(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		valid   bool
	}{
		{"immediately", 0, true},
		{"just before expiry", time.Hour - time.Second, true},
		{"at expiry", time.Hour, false},
		{"after expiry", time.Hour + time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: issuedAt}
			svc := newTestService(t, clock)

			token, err := svc.Issue(Claims{Email: "a@b.com"})
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}

			clock.now = issuedAt.Add(tt.elapsed)
			_, err = svc.Verify(context.Background(), token)

			if tt.valid && err != nil {
				t.Fatalf("Verify() error = %v, want valid", err)
			}
			if !tt.valid && !errors.Is(err, core.ErrTokenInvalid) {
				t.Fatalf("Verify() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func TestTokenLifetimeIgnoresEnvironment(t *testing.T) {
	t.Setenv("JWT_EXPIRE", "720h")

	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, clock)

	if svc.TTL() != time.Hour {
		t.Fatalf("TTL() = %v, want 1h", svc.TTL())
	}

	token, err := svc.Issue(Claims{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	clock.now = clock.now.Add(2 * time.Hour)
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("Verify() after 2h error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyRejectsUniformly(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, clock)

	token, err := svc.Issue(Claims{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other, err := NewTokenService(config.JWTConfig{
		Secret: strings.Repeat("x", 40),
		Issuer: "matrimony-test",
	}, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	forged, err := other.Issue(Claims{Email: "admin@b.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	foreignIssuer, err := NewTokenService(config.JWTConfig{
		Secret: testSecret,
		Issuer: "someone-else",
	}, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	wrongIssuer, err := foreignIssuer.Issue(Claims{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	for name, candidate := range map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"forged":       forged,
		"tampered":     tampered,
		"wrong issuer": wrongIssuer,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), candidate)
			if !errors.Is(err, core.ErrTokenInvalid) {
				t.Fatalf("Verify() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func TestNewTokenServiceRejectsShortSecret(t *testing.T) {
	_, err := NewTokenService(config.JWTConfig{Secret: "short"})
	if err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestIssueRejectsEmptyEmail(t *testing.T) {
	svc := newTestService(t, &fakeClock{now: time.Now()})
	if _, err := svc.Issue(Claims{Email: "  "}); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("Issue() error = %v, want ErrInvalidInput", err)
	}
}
