// AngelaMos | 2026
// handler.go

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/middleware"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.With(middleware.RequireSelf("email")).
			Get("/contact-requests/email/{email}", h.ListMine)
		r.Delete("/contact-requests/{requestID}", h.Delete)
	})
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/admin/contact-requests", h.ListAll)
		r.Patch("/admin/contact-requests/{requestID}/approve", h.Approve)
	})
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListMine(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, ToResponseList(requests, false))
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListAll(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, ToResponseList(requests, true))
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := query.RecordID("requestID", chi.URLParam(r, "requestID"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	res, err := h.service.Approve(r.Context(), middleware.GetEmail(r.Context()), id)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, res)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := query.RecordID("requestID", chi.URLParam(r, "requestID"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	res, err := h.service.Delete(r.Context(), id)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, res)
}
