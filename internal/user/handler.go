// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/middleware"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Post("/users", h.Register)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.With(middleware.RequireSelf("email")).
			Get("/users/admin/{email}", h.CheckAdmin)
	})
}

// RegisterAdminRoutes registers admin-only user management endpoints.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/admin/users", h.SearchUsers)
		r.Patch("/admin/users/{userID}/role", h.UpdateUserRole)
		r.Patch("/admin/users/{userID}/status", h.UpdateUserStatus)
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, created, err := h.service.Register(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	if !created {
		core.SoftConflict(w, "users already exists")
		return
	}

	core.Inserted(w, id)
}

func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.service.IsAdmin(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, AdminCheckResponse{Admin: admin})
}

func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToUserResponseList(users))
}

func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := query.RecordID("userID", chi.URLParam(r, "userID"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	res, err := h.service.PromoteRole(
		r.Context(),
		middleware.GetEmail(r.Context()),
		userID,
		req.Role,
	)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, res)
}

func (h *Handler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := query.RecordID("userID", chi.URLParam(r, "userID"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	var req UpdateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	res, err := h.service.SetStatus(
		r.Context(),
		middleware.GetEmail(r.Context()),
		userID,
		req.Status,
	)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, res)
}
