// AngelaMos | 2026
// service.go

package member

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
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

func (s *Service) List(ctx context.Context, sortParam string) ([]Member, error) {
	return s.repo.Find(ctx, query.MemberListing(sortParam))
}

func (s *Service) Filter(
	ctx context.Context,
	gender, division, age string,
) ([]Member, error) {
	spec, err := query.MemberRange(gender, division, age)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, spec)
}

// ByBiodataID returns every member carrying the id; the id is not unique.
func (s *Service) ByBiodataID(ctx context.Context, raw string) ([]Member, error) {
	spec, err := query.ByBiodataID(raw)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, spec)
}

// FindByBiodataID returns the oldest member with id.
func (s *Service) FindByBiodataID(ctx context.Context, id int) (*Member, error) {
	return s.repo.FindOne(ctx, query.All().Where(query.Eq(query.FieldBiodataID, id)))
}

// ByEmail returns nil without error when the caller has no biodata yet.
func (s *Service) ByEmail(ctx context.Context, email string) (*Member, error) {
	m, err := s.repo.FindOne(ctx, query.ByEmail(email))
	if errors.Is(err, core.ErrNotFound) {
		return nil, nil
	}
	return m, err
}

func (s *Service) PremiumQueue(ctx context.Context) ([]Member, error) {
	return s.repo.Find(ctx, query.PremiumQueue())
}

// Create stores a new biodata. created is false when the email already
// has one. A missing biodata id is assigned as the next free number.
func (s *Service) Create(
	ctx context.Context,
	req CreateMemberRequest,
) (id string, created bool, err error) {
	email := query.NormalizeEmail(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", false, err
	}
	if exists {
		return "", false, nil
	}

	m := req.toMember()
	m.ID = uuid.New().String()
	m.Email = email
	m.Status = StatusPending

	if m.BiodataID == 0 {
		next, err := s.repo.NextBiodataID(ctx)
		if err != nil {
			return "", false, err
		}
		m.BiodataID = next
	}

	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return "", false, nil
		}
		return "", false, err
	}

	return m.ID, true, nil
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	email string,
	req UpdateMemberRequest,
) (core.UpdateResult, error) {
	return s.repo.UpdateProfile(ctx, query.NormalizeEmail(email), req.Changes())
}

func (s *Service) SetStatus(
	ctx context.Context,
	actor, rawBiodataID, status string,
) (core.UpdateResult, error) {
	id, err := query.BiodataID(rawBiodataID)
	if err != nil {
		return core.UpdateResult{}, err
	}

	if !ValidStatus(status) {
		return core.UpdateResult{}, fmt.Errorf(
			"update member status: invalid status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	res, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return core.UpdateResult{}, err
	}

	if res.ModifiedCount > 0 {
		s.logger.Info("member status changed",
			"actor", actor,
			"biodata_id", id,
			"status", status,
		)
	}

	return res, nil
}

func (s *Service) EstimatedCount(ctx context.Context) (int64, error) {
	return s.repo.EstimatedCount(ctx)
}

func (s *Service) Count(ctx context.Context, spec query.Spec) (int64, error) {
	return s.repo.Count(ctx, spec)
}
