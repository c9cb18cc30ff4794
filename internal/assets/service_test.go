package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/newline-apparel/po-backend/internal/settings"
)

type memorySettingsStore struct {
	current settings.AppSettings
}

func (s *memorySettingsStore) Get(ctx context.Context) (settings.AppSettings, error) {
	return s.current, nil
}

func (s *memorySettingsStore) SetLogo(ctx context.Context, logo settings.LogoAsset) error {
	s.current.LogoBase64 = &logo.Base64
	s.current.LogoFilename = &logo.Filename
	s.current.LogoPath = &logo.Path
	s.current.LogoURL = &logo.URL
	return nil
}

func (s *memorySettingsStore) ClearLogo(ctx context.Context) error {
	s.current.LogoBase64 = nil
	s.current.LogoFilename = nil
	s.current.LogoPath = nil
	s.current.LogoURL = nil
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadRejectsEmptyPayload(t *testing.T) {
	svc := NewService(&memorySettingsStore{}, t.TempDir(), "/uploads", nil)
	_, err := svc.Upload(context.Background(), nil, "image/png", "logo.png")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUploadRejectsOversizedPayload(t *testing.T) {
	svc := NewService(&memorySettingsStore{}, t.TempDir(), "/uploads", nil)
	_, err := svc.Upload(context.Background(), make([]byte, maxLogoSizeBytes+1), "image/png", "logo.png")
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "5 MiB")
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	svc := NewService(&memorySettingsStore{}, t.TempDir(), "/uploads", nil)
	_, err := svc.Upload(context.Background(), pngBytes(t), "image/gif", "logo.gif")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUploadRejectsUndecodableImage(t *testing.T) {
	svc := NewService(&memorySettingsStore{}, t.TempDir(), "/uploads", nil)
	_, err := svc.Upload(context.Background(), []byte("not an image at all"), "image/png", "logo.png")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUploadStoresFileAndSettings(t *testing.T) {
	store := &memorySettingsStore{}
	dir := t.TempDir()
	svc := NewService(store, dir, "/uploads", nil)

	asset, err := svc.Upload(context.Background(), pngBytes(t), "image/png", "company logo.png")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(asset.Base64, "data:image/png;base64,"))
	require.Equal(t, "company logo.png", asset.Filename)
	require.True(t, strings.HasSuffix(asset.Path, "company_logo.png"))
	require.True(t, strings.HasPrefix(asset.URL, "/uploads/"))

	written, err := os.ReadFile(asset.Path)
	require.NoError(t, err)
	require.Equal(t, pngBytes(t), written)

	thumb := filepath.Join(dir, "thumb_"+filepath.Base(asset.Path)+".jpg")
	_, err = os.Stat(thumb)
	require.NoError(t, err)

	require.NotNil(t, store.current.LogoBase64)
	require.Equal(t, asset.Base64, *store.current.LogoBase64)
	require.Equal(t, asset.URL, *store.current.LogoURL)
}

func TestDeleteRemovesFilesAndClearsSettings(t *testing.T) {
	store := &memorySettingsStore{}
	dir := t.TempDir()
	svc := NewService(store, dir, "/uploads", nil)

	asset, err := svc.Upload(context.Background(), pngBytes(t), "image/png", "logo.png")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background()))

	_, err = os.Stat(asset.Path)
	require.True(t, os.IsNotExist(err))
	require.Nil(t, store.current.LogoBase64)
	require.Nil(t, store.current.LogoPath)
	require.Nil(t, store.current.LogoURL)
}

func TestDeleteWithoutLogoIsANoOp(t *testing.T) {
	store := &memorySettingsStore{}
	svc := NewService(store, t.TempDir(), "/uploads", nil)
	require.NoError(t, svc.Delete(context.Background()))
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "logo.png", sanitizeFilename("logo.png"))
	require.Equal(t, "etc_passwd", sanitizeFilename("../../etc passwd"))
	require.Equal(t, "logo", sanitizeFilename(""))
	require.Equal(t, "evil.png", sanitizeFilename(`C:\dir\evil.png`))
}
