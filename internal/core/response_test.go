// AngelaMos | 2026
// response_test.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestJSONErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"app error", NotFoundError("biodata"), http.StatusNotFound, "NOT_FOUND"},
		{"wrapped app error", fmt.Errorf("lookup: %w", ForbiddenError("")), http.StatusForbidden, "FORBIDDEN"},
		{"invalid input", fmt.Errorf("parse: %w", ErrInvalidInput), http.StatusBadRequest, "INVALID_INPUT"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"token invalid", fmt.Errorf("verify: %w", ErrTokenInvalid), http.StatusForbidden, "FORBIDDEN"},
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"upstream", fmt.Errorf("stripe: %w", ErrUpstream), http.StatusBadGateway, "UPSTREAM_FAILURE"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSONError(rec, tt.err)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if !strings.Contains(rec.Body.String(), `"code":"`+tt.code+`"`) {
				t.Errorf("body %s missing code %s", rec.Body.String(), tt.code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, errors.New("pq: password authentication failed"))

	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestInsertBodies(t *testing.T) {
	rec := httptest.NewRecorder()
	SoftConflict(rec, "users already exists")

	if rec.Code != http.StatusOK {
		t.Errorf("soft conflict status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"users already exists","insertedId":null}` {
		t.Errorf("soft conflict body = %s", got)
	}

	rec = httptest.NewRecorder()
	Inserted(rec, "abc")
	if got := strings.TrimSpace(rec.Body.String()); got != `{"insertedId":"abc"}` {
		t.Errorf("inserted body = %s", got)
	}
}

func TestFormatValidationError(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Age   int    `validate:"gte=18"`
	}

	err := validator.New().Struct(payload{Email: "nope", Age: 12})
	msg := FormatValidationError(err)

	for _, want := range []string{"email must be a valid email", "age must be at least 18"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}

	if FormatValidationError(errors.New("x")) != "invalid request" {
		t.Error("non validation error not mapped to generic message")
	}
}
