package numbering

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memoryCounterStore struct {
	mu       sync.Mutex
	poNext   int64
	piNext   int64
	poPrefix string
	piPrefix string
	fail     bool
}

func newMemoryCounterStore() *memoryCounterStore {
	return &memoryCounterStore{poNext: 1, piNext: 1, poPrefix: "NA/", piPrefix: "PI/"}
}

func (s *memoryCounterStore) NextNumber(ctx context.Context, kind Kind) (int64, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return 0, "", context.DeadlineExceeded
	}
	if kind == KindPI {
		raw := s.piNext
		s.piNext++
		return raw, s.piPrefix, nil
	}
	raw := s.poNext
	s.poNext++
	return raw, s.poPrefix, nil
}

func TestIssueFormatsNumber(t *testing.T) {
	svc := NewService(newMemoryCounterStore(), nil)
	svc.now = func() time.Time { return time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC) }

	issued, err := svc.Issue(context.Background(), KindPO)
	require.NoError(t, err)
	require.Equal(t, "NA/050126/0001", issued.Number)
	require.Equal(t, int64(1), issued.Raw)
	require.Equal(t, "050126", issued.Date)
}

func TestIssueStripsTrailingPrefixSlash(t *testing.T) {
	store := newMemoryCounterStore()
	store.piPrefix = "PI-2026/"
	svc := NewService(store, nil)
	svc.now = func() time.Time { return time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC) }

	issued, err := svc.Issue(context.Background(), KindPI)
	require.NoError(t, err)
	require.Equal(t, "PI-2026/300626/0001", issued.Number)
}

func TestIssueUsesSeparateCountersPerKind(t *testing.T) {
	svc := NewService(newMemoryCounterStore(), nil)
	ctx := context.Background()

	po1, err := svc.Issue(ctx, KindPO)
	require.NoError(t, err)
	po2, err := svc.Issue(ctx, KindPO)
	require.NoError(t, err)
	pi1, err := svc.Issue(ctx, KindPI)
	require.NoError(t, err)

	require.Equal(t, int64(1), po1.Raw)
	require.Equal(t, int64(2), po2.Raw)
	require.Equal(t, int64(1), pi1.Raw)
}

func TestIssueFailsWithoutFabricatingNumber(t *testing.T) {
	store := newMemoryCounterStore()
	store.fail = true
	svc := NewService(store, nil)

	issued, err := svc.Issue(context.Background(), KindPO)
	require.Error(t, err)
	require.Empty(t, issued.Number)
	require.Zero(t, issued.Raw)
}

func TestConcurrentIssuesYieldDistinctContiguousRaws(t *testing.T) {
	const n = 50
	svc := NewService(newMemoryCounterStore(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	raws := make([]int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			issued, err := svc.Issue(ctx, KindPO)
			require.NoError(t, err)
			raws[i] = issued.Raw
		}(i)
	}
	wg.Wait()

	sort.Slice(raws, func(i, j int) bool { return raws[i] < raws[j] })
	for i, raw := range raws {
		require.Equal(t, int64(i+1), raw)
	}
}
