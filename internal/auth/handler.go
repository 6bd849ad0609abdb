// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
)

type Issuer interface {
	Issue(claims Claims) (string, error)
	TTL() time.Duration
}

type Handler struct {
	issuer    Issuer
	validator *validator.Validate
}

func NewHandler(issuer Issuer) *Handler {
	return &Handler{
		issuer:    issuer,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts token issuance. limiter throttles issuance per
// client and may be nil.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	limiter func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter)
		}
		r.Post("/jwt", h.IssueToken)
	})
}

func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	token, err := h.issuer.Issue(Claims{Email: req.Email})
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(h.issuer.TTL() / time.Second),
	})
}
