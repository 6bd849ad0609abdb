// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// InsertResult mirrors a document-store insert acknowledgement.
// InsertedID is null when the insert was skipped as a soft conflict.
type InsertResult struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"  db:"matched"`
	ModifiedCount int64 `json:"modifiedCount" db:"modified"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Inserted(w http.ResponseWriter, id string) {
	OK(w, InsertResult{InsertedID: &id})
}

// SoftConflict reports an idempotent duplicate insert with status 200.
func SoftConflict(w http.ResponseWriter, message string) {
	OK(w, InsertResult{Message: message, InsertedID: nil})
}

func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		JSON(w, appErr.StatusCode, ErrorResponse{
			Message: appErr.Message,
			Code:    appErr.Code,
		})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		BadRequest(w, "invalid input")
	case errors.Is(err, ErrUnauthorized):
		Unauthorized(w, "")
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrTokenInvalid):
		Forbidden(w, "")
	case errors.Is(err, ErrNotFound):
		NotFound(w, "resource")
	case errors.Is(err, ErrUpstream):
		slog.Error("upstream failure", "error", err)
		JSON(w, http.StatusBadGateway, ErrorResponse{
			Message: "upstream service failed",
			Code:    "UPSTREAM_FAILURE",
		})
	default:
		InternalServerError(w, err)
	}
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, InvalidInputError(message))
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSONError(w, UnauthorizedError(message))
}

func Forbidden(w http.ResponseWriter, message string) {
	JSONError(w, ForbiddenError(message))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource))
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	JSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: "internal server error",
		Code:    "INTERNAL_ERROR",
	})
}
