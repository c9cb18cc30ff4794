package buyers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryBuyerRepo struct {
	records map[string]Buyer
}

func newMemoryBuyerRepo() *memoryBuyerRepo {
	return &memoryBuyerRepo{records: make(map[string]Buyer)}
}

func (r *memoryBuyerRepo) List(ctx context.Context) ([]Buyer, error) {
	out := []Buyer{}
	for _, b := range r.records {
		out = append(out, b)
	}
	return out, nil
}

func (r *memoryBuyerRepo) Get(ctx context.Context, id string) (Buyer, error) {
	b, ok := r.records[id]
	if !ok {
		return Buyer{}, ErrNotFound
	}
	return b, nil
}

func (r *memoryBuyerRepo) Create(ctx context.Context, buyer Buyer) error {
	r.records[buyer.ID] = buyer
	return nil
}

func (r *memoryBuyerRepo) Update(ctx context.Context, id string, patch Patch) (Buyer, error) {
	b, ok := r.records[id]
	if !ok {
		return Buyer{}, ErrNotFound
	}
	if patch.CompanyName != nil {
		b.CompanyName = *patch.CompanyName
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}
	if patch.IsDefaultBuyer != nil {
		b.IsDefaultBuyer = *patch.IsDefaultBuyer
	}
	r.records[id] = b
	return b, nil
}

func (r *memoryBuyerRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *memoryBuyerRepo) ClearDefaults(ctx context.Context, exceptID string) error {
	for id, b := range r.records {
		if id != exceptID && b.IsDefaultBuyer {
			b.IsDefaultBuyer = false
			r.records[id] = b
		}
	}
	return nil
}

func countDefaults(t *testing.T, svc *Service) (int, string) {
	t.Helper()
	records, err := svc.List(context.Background())
	require.NoError(t, err)
	count, id := 0, ""
	for _, b := range records {
		if b.IsDefaultBuyer {
			count++
			id = b.ID
		}
	}
	return count, id
}

func TestCreateKeepsSingleDefaultBuyer(t *testing.T) {
	svc := NewService(newMemoryBuyerRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, Buyer{CompanyName: "First Trading", IsDefaultBuyer: true})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	second, err := svc.Create(ctx, Buyer{CompanyName: "Second Trading", IsDefaultBuyer: true})
	require.NoError(t, err)

	count, defaultID := countDefaults(t, svc)
	require.Equal(t, 1, count)
	require.Equal(t, second.ID, defaultID)
}

func TestUpdateMovesDefaultFlag(t *testing.T) {
	svc := NewService(newMemoryBuyerRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, Buyer{CompanyName: "First Trading", IsDefaultBuyer: true})
	require.NoError(t, err)
	second, err := svc.Create(ctx, Buyer{CompanyName: "Second Trading"})
	require.NoError(t, err)

	flag := true
	_, err = svc.Update(ctx, second.ID, Patch{IsDefaultBuyer: &flag})
	require.NoError(t, err)

	count, defaultID := countDefaults(t, svc)
	require.Equal(t, 1, count)
	require.Equal(t, second.ID, defaultID)

	reloaded, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	require.False(t, reloaded.IsDefaultBuyer)
}

func TestCreateRequiresCompanyName(t *testing.T) {
	svc := NewService(newMemoryBuyerRepo())
	_, err := svc.Create(context.Background(), Buyer{CompanyName: "  "})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateMissingBuyer(t *testing.T) {
	svc := NewService(newMemoryBuyerRepo())
	notes := "n/a"
	_, err := svc.Update(context.Background(), "missing", Patch{Notes: &notes})
	require.ErrorIs(t, err, ErrNotFound)
}
