package assets

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newline-apparel/po-backend/internal/platform/httpx"
)

// Handler manages logo endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers logo routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/settings/logo", h.upload)
	r.Get("/settings/logo", h.show)
	r.Delete("/settings/logo", h.remove)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	// One MiB over the service limit so oversized payloads reach the
	// size check and fail with 422 instead of a connection error.
	r.Body = http.MaxBytesReader(w, r.Body, maxLogoSizeBytes+1<<20)
	if err := r.ParseMultipartForm(maxLogoSizeBytes + 1<<20); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid multipart form", httpx.ErrValidation))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		file, header, err = r.FormFile("logo")
	}
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: missing file field", httpx.ErrValidation))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("read logo upload", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	asset, err := h.service.Upload(r.Context(), data, contentType, header.Filename)
	if err != nil {
		h.logger.Error("upload logo", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{
		"logo_base64":   asset.Base64,
		"logo_filename": asset.Filename,
		"logo_url":      asset.URL,
	})
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("get logo", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]*string{
		"logo_base64":   current.LogoBase64,
		"logo_filename": current.LogoFilename,
		"logo_url":      current.LogoURL,
	})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context()); err != nil {
		h.logger.Error("delete logo", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Message(w, "Logo removed")
}
