// AngelaMos | 2026
// handler.go

package payment

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

// RegisterRoutes mounts the authenticated payment endpoints. limiter
// throttles intent creation and may be nil.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, limiter func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		if limiter != nil {
			r.With(limiter).Post("/create-payment-intent", h.CreateIntent)
		} else {
			r.Post("/create-payment-intent", h.CreateIntent)
		}
		r.Post("/payments", h.Record)
	})
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/admin/payments", h.List)
	})
}

func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	intent, err := h.service.CreateIntent(r.Context(), req.Price)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, CreateIntentResponse{ClientSecret: intent.ClientSecret})
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
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

	id, err := h.service.Record(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Inserted(w, id)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, payments)
}
