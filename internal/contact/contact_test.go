// AngelaMos | 2026
// contact_test.go

package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/middleware"
)

const requestID = "3f1d1a3e-8c5b-4f7e-9d1e-2a6b9c0d4e5f"

type memoryRepo struct {
	items map[string]Request
}

func (m *memoryRepo) Create(_ context.Context, req *Request) error {
	m.items[req.ID] = *req
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Request, error) {
	req, ok := m.items[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &req, nil
}

func (m *memoryRepo) ListByRequester(_ context.Context, email string) ([]Request, error) {
	var out []Request
	for _, r := range m.items {
		if r.RequesterEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListAll(context.Context) ([]Request, error) {
	var out []Request
	for _, r := range m.items {
		out = append(out, r)
	}
	return out, nil
}

func (m *memoryRepo) Approve(_ context.Context, id string) (core.UpdateResult, error) {
	req, ok := m.items[id]
	if !ok {
		return core.UpdateResult{}, nil
	}
	if req.Status == StatusApproved {
		return core.UpdateResult{MatchedCount: 1}, nil
	}
	req.Status = StatusApproved
	m.items[id] = req
	return core.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) (core.DeleteResult, error) {
	if _, ok := m.items[id]; !ok {
		return core.DeleteResult{}, nil
	}
	delete(m.items, id)
	return core.DeleteResult{DeletedCount: 1}, nil
}

var roles = middleware.RoleLookupFunc(func(_ context.Context, email string) (string, error) {
	if email == "boss@x.com" {
		return middleware.RoleAdmin, nil
	}
	return "", nil
})

func seeded() *memoryRepo {
	return &memoryRepo{items: map[string]Request{
		requestID: {
			ID:             requestID,
			BiodataID:      9,
			RequesterEmail: "owner@x.com",
			MobileNumber:   "+8801700000000",
			ContactEmail:   "target@x.com",
			Status:         StatusRequested,
		},
	}}
}

func as(email string) context.Context {
	return middleware.WithClaims(context.Background(), &middleware.Claims{Email: email})
}

func TestDeleteOwnerOrAdmin(t *testing.T) {
	storeDown := errors.New("connection refused")
	failing := middleware.RoleLookupFunc(func(context.Context, string) (string, error) {
		return "", storeDown
	})
	unknown := middleware.RoleLookupFunc(func(context.Context, string) (string, error) {
		return "", core.ErrNotFound
	})

	tests := []struct {
		name        string
		caller      string
		lookup      middleware.RoleLookup
		wantErr     error
		wantDeleted int64
	}{
		{"stranger", "stranger@x.com", roles, core.ErrForbidden, 0},
		{"owner", "owner@x.com", roles, nil, 1},
		{"admin", "boss@x.com", roles, nil, 1},
		{"unknown caller", "ghost@x.com", unknown, core.ErrForbidden, 0},
		{"lookup failure", "boss@x.com", failing, storeDown, 0},
		{"owner skips lookup", "owner@x.com", failing, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seeded()
			svc := NewService(repo, tt.lookup, nil)

			res, err := svc.Delete(as(tt.caller), requestID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
				}
				if tt.wantErr == storeDown && errors.Is(err, core.ErrForbidden) {
					t.Fatalf("store failure reported as forbidden: %v", err)
				}
				if len(repo.items) != 1 {
					t.Fatal("rejected delete removed the request")
				}
				return
			}
			if err != nil || res.DeletedCount != tt.wantDeleted {
				t.Errorf("Delete() = %+v, %v", res, err)
			}
		})
	}
}

func TestContactDetailsMaskedUntilApproved(t *testing.T) {
	req := seeded().items[requestID]

	masked := ToResponse(&req, false)
	if masked.MobileNumber != "" || masked.ContactEmail != "" {
		t.Errorf("pending request leaked contact details: %+v", masked)
	}

	req.Status = StatusApproved
	shown := ToResponse(&req, false)
	if shown.MobileNumber == "" || shown.ContactEmail != "target@x.com" {
		t.Errorf("approved request hid contact details: %+v", shown)
	}
}

func TestApproveIsAdminOnly(t *testing.T) {
	repo := seeded()
	svc := NewService(repo, roles, nil)

	router := chi.NewRouter()
	caller := func(email string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(middleware.WithClaims(r.Context(), &middleware.Claims{Email: email})))
			})
		}
	}
	NewHandler(svc).RegisterAdminRoutes(router, caller("owner@x.com"), middleware.RequireAdmin(roles))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/admin/contact-requests/"+requestID+"/approve", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if repo.items[requestID].Status != StatusRequested {
		t.Error("non-admin approved a request")
	}
}

func TestListMineMasks(t *testing.T) {
	svc := NewService(seeded(), roles, nil)
	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithClaims(r.Context(), &middleware.Claims{Email: "owner@x.com"})))
		})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contact-requests/email/owner@x.com", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "target@x.com") {
		t.Errorf("pending contact email leaked: %s", w.Body.String())
	}
}
