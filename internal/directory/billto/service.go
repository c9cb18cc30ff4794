package billto

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service owns bill-to directory operations.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs the bill-to service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns all bill-to records, newest first.
func (s *Service) List(ctx context.Context) ([]BillTo, error) {
	return s.repo.List(ctx)
}

// Get fetches one record by id.
func (s *Service) Get(ctx context.Context, id string) (BillTo, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new record with a fresh id and creation timestamp.
func (s *Service) Create(ctx context.Context, record BillTo) (BillTo, error) {
	if strings.TrimSpace(record.CompanyName) == "" {
		return BillTo{}, fmt.Errorf("%w: company_name is required", ErrValidation)
	}
	record.ID = uuid.NewString()
	record.CreatedAt = s.now().UTC()
	if err := s.repo.Create(ctx, record); err != nil {
		return BillTo{}, err
	}
	return record, nil
}

// Update applies the non-nil patch fields.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (BillTo, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return BillTo{}, err
	}
	if patch.CompanyName != nil && strings.TrimSpace(*patch.CompanyName) == "" {
		return BillTo{}, fmt.Errorf("%w: company_name must not be blank", ErrValidation)
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes the record by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
