// AngelaMos | 2026
// stats.go

package admin

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/member"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

type MemberCounter interface {
	EstimatedCount(ctx context.Context) (int64, error)
	Count(ctx context.Context, spec query.Spec) (int64, error)
}

type RevenueSource interface {
	SumPrice(ctx context.Context) (float64, error)
}

type StoryCounter interface {
	Count(ctx context.Context) (int64, error)
}

type AdminStats struct {
	TotalMembers   int64   `json:"totalMembers"`
	MaleMembers    int64   `json:"maleMembers"`
	FemaleMembers  int64   `json:"femaleMembers"`
	PremiumMembers int64   `json:"premiumMembers"`
	Revenue        float64 `json:"revenue"`
}

type PublicStats struct {
	TotalBiodata       int64 `json:"totalBiodata"`
	BoysBiodata        int64 `json:"boysBiodata"`
	GirlsBiodata       int64 `json:"girlsBiodata"`
	MarriagesCompleted int64 `json:"marriagesCompleted"`
}

// StatsService derives dashboard figures. Each figure is an independent
// read; together they are not a consistent snapshot.
type StatsService struct {
	members  MemberCounter
	payments RevenueSource
	stories  StoryCounter
}

func NewStatsService(
	members MemberCounter,
	payments RevenueSource,
	stories StoryCounter,
) *StatsService {
	return &StatsService{
		members:  members,
		payments: payments,
		stories:  stories,
	}
}

// Compute runs the five reads concurrently. The first failure cancels
// the rest and fails the whole call.
func (s *StatsService) Compute(ctx context.Context) (*AdminStats, error) {
	ctx, span := core.StartSpan(ctx, "admin.stats.compute")
	defer span.End()

	var stats AdminStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalMembers, err = s.members.EstimatedCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.MaleMembers, err = s.members.Count(gctx, query.MembersOfType(member.TypeMale))
		return err
	})
	g.Go(func() (err error) {
		stats.FemaleMembers, err = s.members.Count(gctx, query.MembersOfType(member.TypeFemale))
		return err
	})
	g.Go(func() (err error) {
		stats.PremiumMembers, err = s.members.Count(gctx, query.MembersWithStatus(member.StatusPremium))
		return err
	})
	g.Go(func() (err error) {
		stats.Revenue, err = s.payments.SumPrice(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		core.SetSpanError(ctx, err)
		return nil, fmt.Errorf("compute admin stats: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("stats.total_members", stats.TotalMembers),
		attribute.Float64("stats.revenue", stats.Revenue),
	)

	return &stats, nil
}

func (s *StatsService) Public(ctx context.Context) (*PublicStats, error) {
	ctx, span := core.StartSpan(ctx, "admin.stats.public")
	defer span.End()

	var stats PublicStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalBiodata, err = s.members.Count(gctx, query.All())
		return err
	})
	g.Go(func() (err error) {
		stats.BoysBiodata, err = s.members.Count(gctx, query.MembersOfType(member.TypeMale))
		return err
	})
	g.Go(func() (err error) {
		stats.GirlsBiodata, err = s.members.Count(gctx, query.MembersOfType(member.TypeFemale))
		return err
	})
	g.Go(func() (err error) {
		stats.MarriagesCompleted, err = s.stories.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		core.SetSpanError(ctx, err)
		return nil, fmt.Errorf("compute public stats: %w", err)
	}

	return &stats, nil
}
