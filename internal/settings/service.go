package settings

import (
	"context"
	"time"
)

// Service exposes settings reads and the allow-listed partial update.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs the settings service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Get returns the singleton, creating it with defaults on first access.
func (s *Service) Get(ctx context.Context) (AppSettings, error) {
	return s.repo.Get(ctx)
}

// Update applies the allow-listed fields from the patch. An update with
// no recognized fields fails with ErrNoChanges.
func (s *Service) Update(ctx context.Context, patch UpdatePatch) (AppSettings, error) {
	if patch.Empty() {
		return AppSettings{}, ErrNoChanges
	}
	return s.repo.Update(ctx, patch, s.now().UTC())
}

// SetLogo persists the uploaded logo representations.
func (s *Service) SetLogo(ctx context.Context, logo LogoAsset) error {
	return s.repo.SetLogo(ctx, logo, s.now().UTC())
}

// ClearLogo wipes all logo fields.
func (s *Service) ClearLogo(ctx context.Context) error {
	return s.repo.ClearLogo(ctx, s.now().UTC())
}
