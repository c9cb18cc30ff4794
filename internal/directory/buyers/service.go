package buyers

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service owns buyer directory operations.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs the buyer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns all buyer records, newest first.
func (s *Service) List(ctx context.Context) ([]Buyer, error) {
	return s.repo.List(ctx)
}

// Get fetches one record by id.
func (s *Service) Get(ctx context.Context, id string) (Buyer, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new record. When the default flag is set, every other
// record's flag is cleared first so at most one default survives. The
// clear and the insert are separate writes; a concurrent default change
// in between is an accepted race.
func (s *Service) Create(ctx context.Context, buyer Buyer) (Buyer, error) {
	if err := s.validate(buyer); err != nil {
		return Buyer{}, err
	}
	buyer.ID = uuid.NewString()
	buyer.CreatedAt = s.now().UTC()
	if buyer.IsDefaultBuyer {
		if err := s.repo.ClearDefaults(ctx, buyer.ID); err != nil {
			return Buyer{}, err
		}
	}
	if err := s.repo.Create(ctx, buyer); err != nil {
		return Buyer{}, err
	}
	return buyer, nil
}

// Update applies the non-nil patch fields, clearing other defaults first
// when the patch sets the flag.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Buyer, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Buyer{}, err
	}
	if err := s.validatePatch(patch); err != nil {
		return Buyer{}, err
	}
	if patch.IsDefaultBuyer != nil && *patch.IsDefaultBuyer {
		if err := s.repo.ClearDefaults(ctx, id); err != nil {
			return Buyer{}, err
		}
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes the record by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
