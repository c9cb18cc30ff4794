package settings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/newline-apparel/po-backend/internal/numbering"
)

type memorySettingsRepo struct {
	current AppSettings
	created bool
}

func newMemorySettingsRepo() *memorySettingsRepo {
	return &memorySettingsRepo{}
}

func (r *memorySettingsRepo) ensure() {
	if r.created {
		return
	}
	r.current = AppSettings{
		NextPONumber:     1,
		NextPINumber:     1,
		POPrefix:         DefaultPOPrefix,
		PIPrefix:         DefaultPIPrefix,
		DefaultUnitPrice: decimal.Zero,
		UpdatedAt:        time.Now().UTC(),
	}
	r.created = true
}

func (r *memorySettingsRepo) Get(ctx context.Context) (AppSettings, error) {
	r.ensure()
	return r.current, nil
}

func (r *memorySettingsRepo) Update(ctx context.Context, patch UpdatePatch, updatedAt time.Time) (AppSettings, error) {
	r.ensure()
	if patch.POPrefix != nil {
		r.current.POPrefix = *patch.POPrefix
	}
	if patch.PIPrefix != nil {
		r.current.PIPrefix = *patch.PIPrefix
	}
	if patch.UsePOPrefix != nil {
		r.current.UsePOPrefix = *patch.UsePOPrefix
	}
	if patch.UsePIPrefix != nil {
		r.current.UsePIPrefix = *patch.UsePIPrefix
	}
	if patch.DefaultUnitPrice != nil {
		r.current.DefaultUnitPrice = *patch.DefaultUnitPrice
	}
	r.current.UpdatedAt = updatedAt
	return r.current, nil
}

func (r *memorySettingsRepo) NextNumber(ctx context.Context, kind numbering.Kind) (int64, string, error) {
	r.ensure()
	if kind == numbering.KindPI {
		raw := r.current.NextPINumber
		r.current.NextPINumber++
		return raw, r.current.PIPrefix, nil
	}
	raw := r.current.NextPONumber
	r.current.NextPONumber++
	return raw, r.current.POPrefix, nil
}

func (r *memorySettingsRepo) SetLogo(ctx context.Context, logo LogoAsset, updatedAt time.Time) error {
	r.ensure()
	r.current.LogoBase64 = &logo.Base64
	r.current.LogoFilename = &logo.Filename
	r.current.LogoPath = &logo.Path
	r.current.LogoURL = &logo.URL
	r.current.UpdatedAt = updatedAt
	return nil
}

func (r *memorySettingsRepo) ClearLogo(ctx context.Context, updatedAt time.Time) error {
	r.ensure()
	r.current.LogoBase64 = nil
	r.current.LogoFilename = nil
	r.current.LogoPath = nil
	r.current.LogoURL = nil
	r.current.UpdatedAt = updatedAt
	return nil
}

func TestGetLazilyCreatesDefaults(t *testing.T) {
	svc := NewService(newMemorySettingsRepo())

	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), s.NextPONumber)
	require.Equal(t, int64(1), s.NextPINumber)
	require.Equal(t, "NA/", s.POPrefix)
	require.Equal(t, "PI/", s.PIPrefix)
	require.False(t, s.UsePOPrefix)
	require.False(t, s.UsePIPrefix)
	require.True(t, s.DefaultUnitPrice.IsZero())
	require.Nil(t, s.LogoBase64)
	require.Nil(t, s.LogoURL)
}

func TestUpdateAppliesAllowListedFields(t *testing.T) {
	svc := NewService(newMemorySettingsRepo())
	ctx := context.Background()

	prefix := "NLA/"
	use := true
	price := decimal.NewFromFloat(149.50)
	s, err := svc.Update(ctx, UpdatePatch{POPrefix: &prefix, UsePOPrefix: &use, DefaultUnitPrice: &price})
	require.NoError(t, err)
	require.Equal(t, "NLA/", s.POPrefix)
	require.True(t, s.UsePOPrefix)
	require.True(t, s.DefaultUnitPrice.Equal(price))

	// Untouched fields keep their defaults.
	require.Equal(t, "PI/", s.PIPrefix)
	require.False(t, s.UsePIPrefix)
}

func TestUpdateWithNothingToApplyFails(t *testing.T) {
	svc := NewService(newMemorySettingsRepo())

	_, err := svc.Update(context.Background(), UpdatePatch{})
	require.ErrorIs(t, err, ErrNoChanges)
}
