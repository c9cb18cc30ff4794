// Package assets stores the uploaded company logo as an inline data URI
// plus a static file under the configured upload directory.
package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/newline-apparel/po-backend/internal/platform/httpx"
	"github.com/newline-apparel/po-backend/internal/settings"
)

const maxLogoSizeBytes = 5 * 1024 * 1024

var allowedLogoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ErrValidation indicates a rejected upload.
var ErrValidation = fmt.Errorf("logo: %w", httpx.ErrValidation)

// SettingsStore is the slice of the settings service the logo flow needs.
type SettingsStore interface {
	Get(ctx context.Context) (settings.AppSettings, error)
	SetLogo(ctx context.Context, logo settings.LogoAsset) error
	ClearLogo(ctx context.Context) error
}

// Service validates, stores and removes the logo asset.
type Service struct {
	store      SettingsStore
	uploadDir  string
	publicBase string
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs the logo service. publicBase is the URL path the
// upload directory is served under.
func NewService(store SettingsStore, uploadDir, publicBase string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, uploadDir: uploadDir, publicBase: publicBase, logger: logger, now: time.Now}
}

// Upload validates the payload, writes the file and a thumbnail under the
// upload directory and persists all logo representations into settings.
func (s *Service) Upload(ctx context.Context, data []byte, contentType, filename string) (settings.LogoAsset, error) {
	if len(data) == 0 {
		return settings.LogoAsset{}, fmt.Errorf("%w: no file provided", ErrValidation)
	}
	if len(data) > maxLogoSizeBytes {
		return settings.LogoAsset{}, fmt.Errorf("%w: file exceeds 5 MiB", ErrValidation)
	}
	if !allowedLogoTypes[contentType] {
		return settings.LogoAsset{}, fmt.Errorf("%w: unsupported file type %q, only PNG and JPEG are accepted", ErrValidation, contentType)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return settings.LogoAsset{}, fmt.Errorf("%w: file is not a decodable image", ErrValidation)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return settings.LogoAsset{}, fmt.Errorf("logo: create upload dir: %w", err)
	}
	stored := fmt.Sprintf("%d_%s", s.now().UTC().UnixNano(), sanitizeFilename(filename))
	path := filepath.Join(s.uploadDir, stored)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return settings.LogoAsset{}, fmt.Errorf("logo: write file: %w", err)
	}

	// Thumbnail is a convenience artifact; its failure does not fail the upload.
	thumbnail := imaging.Resize(img, 200, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, imaging.JPEG); err != nil {
		s.logger.Warn("encode logo thumbnail", slog.Any("error", err))
	} else if err := os.WriteFile(filepath.Join(s.uploadDir, "thumb_"+stored+".jpg"), buf.Bytes(), 0o644); err != nil {
		s.logger.Warn("write logo thumbnail", slog.Any("error", err))
	}

	asset := settings.LogoAsset{
		Base64:   "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Filename: filename,
		Path:     path,
		URL:      s.publicBase + "/" + stored,
	}
	if err := s.store.SetLogo(ctx, asset); err != nil {
		return settings.LogoAsset{}, err
	}
	return asset, nil
}

// Get returns the stored logo fields; all nil when never set.
func (s *Service) Get(ctx context.Context) (settings.AppSettings, error) {
	return s.store.Get(ctx)
}

// Delete removes the physical files best-effort and clears the settings
// fields. A failed file removal is logged, never fatal.
func (s *Service) Delete(ctx context.Context) error {
	current, err := s.store.Get(ctx)
	if err != nil {
		return err
	}
	if current.LogoPath != nil && *current.LogoPath != "" {
		if err := os.Remove(*current.LogoPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("remove logo file", slog.String("path", *current.LogoPath), slog.Any("error", err))
		}
		thumb := filepath.Join(filepath.Dir(*current.LogoPath), "thumb_"+filepath.Base(*current.LogoPath)+".jpg")
		if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("remove logo thumbnail", slog.String("path", thumb), slog.Any("error", err))
		}
	}
	return s.store.ClearLogo(ctx)
}

// sanitizeFilename strips path components and replaces anything outside
// [A-Za-z0-9._-].
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "logo"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
