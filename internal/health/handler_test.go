// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okCheck(context.Context) error   { return nil }
func downCheck(context.Context) error { return errors.New("connection refused") }

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		redis      CheckerFunc
		wantStatus int
		wantBody   string
	}{
		{"all healthy", okCheck, http.StatusOK, "ok"},
		{"redis down", downCheck, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler().
				Register("database", CheckerFunc(okCheck)).
				Register("redis", tt.redis)

			w := httptest.NewRecorder()
			h.Readiness(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp ReadinessResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tt.wantBody {
				t.Errorf("status body = %q, want %q", resp.Status, tt.wantBody)
			}
			if len(resp.Checks) != 2 || resp.Checks[0].Name != "database" {
				t.Errorf("checks = %+v", resp.Checks)
			}
		})
	}
}

func TestShutdownFailsProbes(t *testing.T) {
	h := NewHandler()
	h.SetShutdown(true)

	for _, fn := range []http.HandlerFunc{h.Liveness, h.Readiness} {
		w := httptest.NewRecorder()
		fn(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	}
}
