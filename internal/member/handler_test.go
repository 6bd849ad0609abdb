// AngelaMos | 2026
// handler_test.go

package member

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/matrimony-backend/internal/middleware"
)

func withCaller(email string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithClaims(r.Context(), &middleware.Claims{Email: email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newRouter(repo *fakeRepo, caller string) *chi.Mux {
	router := chi.NewRouter()
	NewHandler(NewService(repo, nil)).RegisterRoutes(router, withCaller(caller))
	return router
}

func TestPublicEndpoints(t *testing.T) {
	router := newRouter(seeded(), "")

	tests := []struct {
		target     string
		wantStatus int
	}{
		{"/members?sort=asc", http.StatusOK},
		{"/members/3", http.StatusOK},
		{"/members/abc", http.StatusBadRequest},
		{"/allMembers?gender=Female&division=Dhaka&age=25-35", http.StatusOK},
		{"/allMembers?gender=Female", http.StatusBadRequest},
		{"/allMembers?age=abc-35", http.StatusBadRequest},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))
		if w.Code != tt.wantStatus {
			t.Errorf("GET %s = %d, want %d", tt.target, w.Code, tt.wantStatus)
		}
	}
}

func TestCreateMemberSoftConflict(t *testing.T) {
	router := newRouter(seeded(), "a@x.com")

	body := `{"email":"a@x.com","name":"A","biodata_type":"Female","age":30,"permanent_division_name":"Dhaka"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(body)))

	want := `{"message":"biodata already exists","insertedId":null}`
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != want {
		t.Errorf("got %d %s, want 200 %s", w.Code, w.Body.String(), want)
	}
}

func TestCreateMemberForOtherIdentityForbidden(t *testing.T) {
	repo := seeded()
	router := newRouter(repo, "me@x.com")

	body := `{"email":"victim@x.com","name":"V","biodata_type":"Male","age":30,"permanent_division_name":"Dhaka"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(body)))

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if repo.creates != 0 {
		t.Error("member created for another identity")
	}
}

func TestGetByEmailIdentityScoped(t *testing.T) {
	router := newRouter(seeded(), "a@x.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/members/email/b@x.com", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign email status = %d, want 403", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/members/email/a@x.com", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"biodata_id":1`) {
		t.Errorf("own email = %d %s", w.Code, w.Body.String())
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := seeded()
	router := newRouter(repo, "a@x.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/members/email/a@x.com", strings.NewReader(`{"name":"Renamed"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if repo.members[0].Name != "Renamed" {
		t.Errorf("name = %q", repo.members[0].Name)
	}
}
