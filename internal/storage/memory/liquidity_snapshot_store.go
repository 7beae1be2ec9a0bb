package memory

import (
	"context"
	"sort"
	"sync"

	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/storage"
)

// LiquiditySnapshotStore is an in-memory implementation of storage.LiquiditySnapshotStore.
type LiquiditySnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]*domain.LiquiditySnapshot // keyed by token, insertion order
}

// NewLiquiditySnapshotStore creates a new in-memory snapshot store.
func NewLiquiditySnapshotStore() *LiquiditySnapshotStore {
	return &LiquiditySnapshotStore{
		data: make(map[string][]*domain.LiquiditySnapshot),
	}
}

// Compile-time interface check.
var _ storage.LiquiditySnapshotStore = (*LiquiditySnapshotStore)(nil)

// Insert adds a snapshot.
func (s *LiquiditySnapshotStore) Insert(_ context.Context, snap *domain.LiquiditySnapshot) error {
	if snap == nil || snap.Token == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copy := *snap
	s.data[snap.Token] = append(s.data[snap.Token], &copy)
	return nil
}

// GetByTimeRange retrieves snapshots within [start, end] (inclusive), ordered by time ASC.
func (s *LiquiditySnapshotStore) GetByTimeRange(_ context.Context, token string, start, end int64) ([]*domain.LiquiditySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.LiquiditySnapshot
	for _, snap := range s.data[token] {
		if snap.ObservedAt >= start && snap.ObservedAt <= end {
			copy := *snap
			result = append(result, &copy)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ObservedAt < result[j].ObservedAt
	})

	return result, nil
}

// Latest retrieves the most recent snapshot. Returns ErrNotFound if none.
func (s *LiquiditySnapshotStore) Latest(_ context.Context, token string) (*domain.LiquiditySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.LiquiditySnapshot
	for _, snap := range s.data[token] {
		if latest == nil || snap.ObservedAt >= latest.ObservedAt {
			latest = snap
		}
	}
	if latest == nil {
		return nil, storage.ErrNotFound
	}

	copy := *latest
	return &copy, nil
}
