// AngelaMos | 2026
// service.go

package contact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/middleware"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

type Service struct {
	repo   Repository
	roles  middleware.RoleLookup
	logger *slog.Logger
}

func NewService(repo Repository, roles middleware.RoleLookup, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, roles: roles, logger: logger}
}

func (s *Service) ListMine(ctx context.Context, email string) ([]Request, error) {
	return s.repo.ListByRequester(ctx, query.NormalizeEmail(email))
}

func (s *Service) ListAll(ctx context.Context) ([]Request, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Approve(ctx context.Context, actor, id string) (core.UpdateResult, error) {
	res, err := s.repo.Approve(ctx, id)
	if err != nil {
		return core.UpdateResult{}, err
	}

	if res.ModifiedCount > 0 {
		s.logger.Info("contact request approved", "actor", actor, "request_id", id)
	}
	return res, nil
}

// Delete removes a request on behalf of its requester or an admin.
func (s *Service) Delete(ctx context.Context, id string) (core.DeleteResult, error) {
	req, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return core.DeleteResult{}, nil
	}
	if err != nil {
		return core.DeleteResult{}, err
	}

	if middleware.SameIdentity(ctx, req.RequesterEmail) != nil {
		admin, err := middleware.IsAdmin(ctx, s.roles)
		if err != nil {
			return core.DeleteResult{}, err
		}
		if !admin {
			return core.DeleteResult{}, core.ForbiddenError("")
		}
	}

	return s.repo.Delete(ctx, id)
}
