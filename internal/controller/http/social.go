package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skyhealth/kpi-gateway/internal/domain/social/entity"
	"github.com/skyhealth/kpi-gateway/internal/domain/social/policy"
	"github.com/skyhealth/kpi-gateway/internal/httpx/response"
	"github.com/skyhealth/kpi-gateway/internal/middleware"
)

// SocialPolicy defines the interface for social KPI retrieval
// Interface is defined by consumer (handler), not provider (policy)
type SocialPolicy interface {
	KPI(ctx context.Context, in policy.KPIInput) (*entity.KPIResult, error)
}

// SocialHandler handles HTTP requests for social KPIs
type SocialHandler struct {
	policy SocialPolicy
	logger *slog.Logger
}

// NewSocialHandler creates a new social KPI handler
func NewSocialHandler(p SocialPolicy, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{policy: p, logger: logger}
}

// RegisterRoutes registers social KPI routes
func (h *SocialHandler) RegisterRoutes(r chi.Router) {
	r.Get("/kpi/social", h.Get())
}

// Get handles GET /kpi/social
func (h *SocialHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		// postLimit is best-effort: unparsable values fall back to the
		// configured default
		postLimit, _ := strconv.Atoi(q.Get("postLimit"))

		result, err := h.policy.KPI(r.Context(), policy.KPIInput{
			Platform:    q.Get("platform"),
			AccountID:   q.Get("accountId"),
			AccessToken: q.Get("accessToken"),
			PostLimit:   postLimit,
		})
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		response.OK(w, result)
	}
}

// writeError maps domain errors to the documented status codes. Validation
// failures never reach the vendors, so they surface as 400s; anything from
// an adapter or normalizer is a 500 with the failure echoed in detail.
func (h *SocialHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrUnsupportedPlatform):
		response.BadRequest(w, "invalid_platform", "platform must be one of: instagram, facebook")
	case errors.Is(err, entity.ErrMissingAccountID):
		response.BadRequest(w, "missing_accountId", "accountId query parameter is required")
	case errors.Is(err, entity.ErrMissingAccessToken):
		response.BadRequest(w, "missing_accessToken", "no access token supplied and no default configured")
	default:
		h.logger.Error("social KPI request failed",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		response.InternalError(w, "social_kpi_failed", err.Error())
	}
}
