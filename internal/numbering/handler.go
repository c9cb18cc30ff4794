package numbering

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newline-apparel/po-backend/internal/platform/httpx"
)

// Handler exposes the number issue endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers numbering routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/po/next-number", h.issue(KindPO))
	r.Post("/pi/next-number", h.issue(KindPI))
}

type issueResponse struct {
	Number          string `json:"number"`
	RawNumber       int64  `json:"raw_number"`
	Date            string `json:"date"`
	FormattedNumber string `json:"formatted_number"`
}

func (h *Handler) issue(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		issued, err := h.service.Issue(r.Context(), kind)
		if err != nil {
			h.logger.Error("issue number", slog.String("kind", string(kind)), slog.Any("error", err))
			httpx.Problem(w, http.StatusInternalServerError, "Number Issue Failed", "could not issue document number")
			return
		}
		httpx.JSON(w, http.StatusOK, issueResponse{
			Number:          issued.Number,
			RawNumber:       issued.Raw,
			Date:            issued.Date,
			FormattedNumber: issued.Number,
		})
	}
}
