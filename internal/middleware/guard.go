// AngelaMos | 2026
// guard.go

package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
)

const RoleAdmin = "admin"

// Guard is a single authorization check. A nil return lets the request
// through; anything else is written as the response.
type Guard func(r *http.Request) error

// RoleLookup resolves the stored role of an account. It returns
// core.ErrNotFound when no account has that email.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

type RoleLookupFunc func(ctx context.Context, email string) (string, error)

func (f RoleLookupFunc) RoleByEmail(ctx context.Context, email string) (string, error) {
	return f(ctx, email)
}

// Chain runs guards in order and stops at the first failure. The next
// handler only runs when every guard passes.
func Chain(guards ...Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, g := range guards {
				if err := g(r); err != nil {
					core.JSONError(w, err)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticated fails when no verified identity is on the request.
func Authenticated() Guard {
	return func(r *http.Request) error {
		if !IsAuthenticated(r.Context()) {
			return core.UnauthorizedError("")
		}
		return nil
	}
}

// AdminRole looks the caller's role up on every request. The role is
// read from storage, never from the token.
func AdminRole(lookup RoleLookup) Guard {
	return func(r *http.Request) error {
		email := GetEmail(r.Context())
		if email == "" {
			return core.UnauthorizedError("")
		}

		role, err := lookup.RoleByEmail(r.Context(), email)
		switch {
		case errors.Is(err, core.ErrNotFound):
			return core.ForbiddenError("")
		case err != nil:
			return err
		case role != RoleAdmin:
			slog.Debug("admin access denied", "email", email, "path", r.URL.Path)
			return core.ForbiddenError("")
		}

		return nil
	}
}

// SelfParam requires the URL parameter named param to equal the caller's
// email, ignoring case.
func SelfParam(param string) Guard {
	return func(r *http.Request) error {
		return SameIdentity(r.Context(), chi.URLParam(r, param))
	}
}

// SameIdentity checks a caller-supplied email against the verified one.
func SameIdentity(ctx context.Context, email string) error {
	caller := GetEmail(ctx)
	if caller == "" {
		return core.UnauthorizedError("")
	}
	if !strings.EqualFold(caller, strings.TrimSpace(email)) {
		return core.ForbiddenError("")
	}
	return nil
}

func RequireAdmin(lookup RoleLookup) func(http.Handler) http.Handler {
	return Chain(Authenticated(), AdminRole(lookup))
}

func RequireSelf(param string) func(http.Handler) http.Handler {
	return Chain(Authenticated(), SelfParam(param))
}

// IsAdmin reports whether the caller holds the admin role. An unknown
// caller is not an admin; any other lookup failure is returned.
func IsAdmin(ctx context.Context, lookup RoleLookup) (bool, error) {
	email := GetEmail(ctx)
	if email == "" {
		return false, nil
	}

	role, err := lookup.RoleByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("look up caller role: %w", err)
	}
	return role == RoleAdmin, nil
}
