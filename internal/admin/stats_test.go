// AngelaMos | 2026
// stats_test.go

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/matrimony-backend/internal/member"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

type fakeMembers struct {
	docs     []query.Document
	estimate int64
	err      error
}

func (f *fakeMembers) EstimatedCount(context.Context) (int64, error) {
	return f.estimate, f.err
}

func (f *fakeMembers) Count(_ context.Context, spec query.Spec) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(spec.Apply(f.docs))), nil
}

type revenueFunc func(ctx context.Context) (float64, error)

func (f revenueFunc) SumPrice(ctx context.Context) (float64, error) {
	return f(ctx)
}

type storyCount int64

func (c storyCount) Count(context.Context) (int64, error) {
	return int64(c), nil
}

func memberDoc(biodataType, status string) query.Document {
	return query.Document{
		query.FieldBiodataType: biodataType,
		query.FieldStatus:      status,
	}
}

func seededMembers() *fakeMembers {
	return &fakeMembers{
		estimate: 4,
		docs: []query.Document{
			memberDoc(member.TypeMale, member.StatusPremium),
			memberDoc(member.TypeMale, member.StatusPending),
			memberDoc(member.TypeFemale, member.StatusPremium),
			memberDoc(member.TypeFemale, "approved"),
		},
	}
}

func TestComputeStats(t *testing.T) {
	svc := NewStatsService(
		seededMembers(),
		revenueFunc(func(context.Context) (float64, error) { return 37.5, nil }),
		storyCount(2),
	)

	got, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	want := AdminStats{
		TotalMembers:   4,
		MaleMembers:    2,
		FemaleMembers:  2,
		PremiumMembers: 2,
		Revenue:        37.5,
	}
	if *got != want {
		t.Errorf("Compute() = %+v, want %+v", *got, want)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	svc := NewStatsService(
		&fakeMembers{},
		revenueFunc(func(context.Context) (float64, error) { return 0, nil }),
		storyCount(0),
	)

	got, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if *got != (AdminStats{}) {
		t.Errorf("Compute() on empty store = %+v, want zeros", *got)
	}
}

func TestComputeStatsFailsWhole(t *testing.T) {
	boom := errors.New("sum failed")

	svc := NewStatsService(
		seededMembers(),
		revenueFunc(func(context.Context) (float64, error) { return 0, boom }),
		storyCount(0),
	)

	got, err := svc.Compute(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Compute() error = %v, want %v", err, boom)
	}
	if got != nil {
		t.Errorf("Compute() returned partial stats %+v", got)
	}
}

func TestPublicStats(t *testing.T) {
	svc := NewStatsService(
		seededMembers(),
		revenueFunc(func(context.Context) (float64, error) { return 0, nil }),
		storyCount(3),
	)

	got, err := svc.Public(context.Background())
	if err != nil {
		t.Fatalf("Public() error = %v", err)
	}

	want := PublicStats{
		TotalBiodata:       4,
		BoysBiodata:        2,
		GirlsBiodata:       2,
		MarriagesCompleted: 3,
	}
	if *got != want {
		t.Errorf("Public() = %+v, want %+v", *got, want)
	}
}

func passthrough(next http.Handler) http.Handler { return next }

func deny(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
}

func TestStatsRoutes(t *testing.T) {
	stats := NewStatsService(
		seededMembers(),
		revenueFunc(func(context.Context) (float64, error) { return 10, nil }),
		storyCount(1),
	)

	tests := []struct {
		name      string
		path      string
		adminOnly func(http.Handler) http.Handler
		want      int
	}{
		{"public counters", "/public-stats", deny, http.StatusOK},
		{"admin stats allowed", "/admin/stats", passthrough, http.StatusOK},
		{"admin stats denied", "/admin/stats", deny, http.StatusForbidden},
		{"runtime", "/admin/system/runtime", passthrough, http.StatusOK},
		{"system without probes", "/admin/system", passthrough, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(HandlerConfig{Stats: stats})
			r := chi.NewRouter()
			h.RegisterRoutes(r)
			h.RegisterAdminRoutes(r, passthrough, tt.adminOnly)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestAdminStatsBody(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Stats: NewStatsService(
			seededMembers(),
			revenueFunc(func(context.Context) (float64, error) { return 10, nil }),
			storyCount(1),
		),
	})
	r := chi.NewRouter()
	h.RegisterAdminRoutes(r, passthrough, passthrough)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, key := range []string{"totalMembers", "maleMembers", "femaleMembers", "premiumMembers", "revenue"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing %q: %s", key, rec.Body.String())
		}
	}
}

func TestSystemStatsReportsFailedProbe(t *testing.T) {
	h := NewHandler(HandlerConfig{
		DBPing:    func(context.Context) error { return nil },
		RedisPing: func(context.Context) error { return errors.New("connection refused") },
	})
	r := chi.NewRouter()
	h.RegisterAdminRoutes(r, passthrough, passthrough)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/system", nil))

	var body SystemStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Database.Healthy {
		t.Error("database reported unhealthy")
	}
	if body.Redis.Healthy || body.Redis.Error != "connection refused" {
		t.Errorf("redis probe = %+v, want unhealthy with error", body.Redis.Probe)
	}
	if body.Runtime.GoVersion == "" {
		t.Error("runtime stats missing")
	}
}
