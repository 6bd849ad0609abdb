// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRateLimiterFallsBackToLocal(t *testing.T) {
	rl := NewRateLimiter(unreachableRedis(t), RateLimitConfig{
		Limit:   PerMinute(60, 2),
		KeyFunc: KeyByIP,
	})

	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/jwt", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests rejected: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", codes[2])
	}
}

func TestKeyFuncs(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/members/42", nil)
	req.RemoteAddr = "192.0.2.7:5555"

	if got := KeyByIP(req); got != "ratelimit:ip:192.0.2.7" {
		t.Errorf("KeyByIP() = %q", got)
	}
	if got := KeyByUser(req); got != "ratelimit:ip:192.0.2.7" {
		t.Errorf("anonymous KeyByUser() = %q", got)
	}

	authed := req.WithContext(WithClaims(req.Context(), &Claims{Email: "A@B.com"}))
	if got := KeyByUserAndEndpoint(authed); got != "ratelimit:user:a@b.com:endpoint:/members/{id}" {
		t.Errorf("KeyByUserAndEndpoint() = %q", got)
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/members/42", "/members/{id}"},
		{"/members/email/Someone@Example.com", "/members/email/{email}"},
		{"/admin/users/3f1d1a3e-8c5b-4f7e-9d1e-2a6b9c0d4e5f/role", "/admin/users/{id}/role"},
		{"/create-payment-intent", "/create-payment-intent"},
	}

	for _, tt := range tests {
		if got := normalizeEndpoint(tt.path); got != tt.want {
			t.Errorf("normalizeEndpoint(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRateLimiterBypass(t *testing.T) {
	rl := NewRateLimiter(unreachableRedis(t), RateLimitConfig{
		Limit:      PerMinute(1, 1),
		BypassFunc: BypassPaths("/readyz"),
	})

	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := range 3 {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("probe %d status = %d, want 200", i, w.Code)
		}
	}
}
