// AngelaMos | 2026
// handler.go

package member

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/middleware"
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
	r.Get("/members", h.List)
	r.Get("/members/{biodataID}", h.GetByBiodataID)
	r.Get("/allMembers", h.Filter)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/members", h.Create)
		r.With(middleware.RequireSelf("email")).
			Get("/members/email/{email}", h.GetByEmail)
		r.With(middleware.RequireSelf("email")).
			Patch("/members/email/{email}", h.UpdateProfile)
	})
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/admin/premium", h.PremiumQueue)
		r.Patch("/admin/members/{biodataID}/status", h.UpdateStatus)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, members)
}

func (h *Handler) GetByBiodataID(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ByBiodataID(r.Context(), chi.URLParam(r, "biodataID"))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, members)
}

func (h *Handler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	members, err := h.service.Filter(
		r.Context(),
		q.Get("gender"),
		q.Get("division"),
		q.Get("age"),
	)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, members)
}

func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.ByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, m)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := middleware.SameIdentity(r.Context(), req.Email); err != nil {
		core.JSONError(w, err)
		return
	}

	id, created, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	if !created {
		core.SoftConflict(w, "biodata already exists")
		return
	}

	core.Inserted(w, id)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	res, err := h.service.UpdateProfile(r.Context(), chi.URLParam(r, "email"), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, res)
}

func (h *Handler) PremiumQueue(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.PremiumQueue(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, members)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
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
		chi.URLParam(r, "biodataID"),
		req.Status,
	)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, res)
}
