// AngelaMos | 2026
// handler.go

package favorite

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
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/favorites", h.Add)
		r.With(middleware.RequireSelf("email")).
			Get("/favorites/email/{email}", h.List)
		r.Delete("/favorites/{favoriteID}", h.Remove)
	})
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.service.Add(r.Context(), middleware.GetEmail(r.Context()), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Inserted(w, id)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.service.List(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, favorites)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := query.RecordID("favoriteID", chi.URLParam(r, "favoriteID"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	res, err := h.service.Remove(r.Context(), middleware.GetEmail(r.Context()), id)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.OK(w, res)
}
