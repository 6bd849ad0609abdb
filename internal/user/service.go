// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/middleware"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Register creates the account on first sign-in. created is false when
// the email is already registered, which is not an error.
func (s *Service) Register(
	ctx context.Context,
	req CreateUserRequest,
) (id string, created bool, err error) {
	email := query.NormalizeEmail(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", false, err
	}
	if exists {
		return "", false, nil
	}

	user := &User{
		ID:       uuid.New().String(),
		Email:    email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     RoleNone,
		Status:   StatusFree,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return "", false, nil
		}
		return "", false, err
	}

	return user.ID, true, nil
}

// RoleByEmail reads the stored role for the admin gate.
func (s *Service) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, query.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// IsAdmin treats an unknown account as not admin.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return role == RoleAdmin, nil
}

func (s *Service) Search(ctx context.Context, search string) ([]User, error) {
	return s.repo.Find(ctx, query.UserSearch(search))
}

// PromoteRole is the only path that changes a role. wireRole is "admin"
// or "none".
func (s *Service) PromoteRole(
	ctx context.Context,
	actor, id, wireRole string,
) (core.UpdateResult, error) {
	var role string
	switch wireRole {
	case RoleAdmin:
		role = RoleAdmin
	case "none":
		role = RoleNone
	default:
		return core.UpdateResult{}, fmt.Errorf(
			"update role: invalid role %q: %w",
			wireRole,
			core.ErrInvalidInput,
		)
	}

	res, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return core.UpdateResult{}, err
	}

	if res.ModifiedCount > 0 {
		s.logger.Info("role promoted",
			"actor", actor,
			"target", id,
			"role", wireRole,
		)
	}

	return res, nil
}

func (s *Service) SetStatus(
	ctx context.Context,
	actor, id, status string,
) (core.UpdateResult, error) {
	if status != StatusFree && status != StatusPremium {
		return core.UpdateResult{}, fmt.Errorf(
			"update status: invalid status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	res, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return core.UpdateResult{}, err
	}

	if res.ModifiedCount > 0 {
		s.logger.Info("user status changed",
			"actor", actor,
			"target", id,
			"status", status,
		)
	}

	return res, nil
}

var _ middleware.RoleLookup = (*Service)(nil)
