package suppliers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service owns supplier directory operations.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs the supplier service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns all supplier records, newest first.
func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(ctx)
}

// Get fetches one record by id.
func (s *Service) Get(ctx context.Context, id string) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new record with a fresh id and creation timestamp.
func (s *Service) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	if strings.TrimSpace(supplier.CompanyName) == "" {
		return Supplier{}, fmt.Errorf("%w: company_name is required", ErrValidation)
	}
	supplier.ID = uuid.NewString()
	supplier.CreatedAt = s.now().UTC()
	if err := s.repo.Create(ctx, supplier); err != nil {
		return Supplier{}, err
	}
	return supplier, nil
}

// Update applies the non-nil patch fields.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Supplier, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Supplier{}, err
	}
	if patch.CompanyName != nil && strings.TrimSpace(*patch.CompanyName) == "" {
		return Supplier{}, fmt.Errorf("%w: company_name must not be blank", ErrValidation)
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes the record by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
