package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/storage"
)

// BuyJournal is an in-memory implementation of storage.BuyJournal.
type BuyJournal struct {
	mu     sync.RWMutex
	nextID int64
	data   map[string][]*domain.RecordedBuy // keyed by token
	seen   map[buyKey]struct{}
	now    func() time.Time
}

type buyKey struct {
	token string
	hash  string
}

// NewBuyJournal creates a new in-memory buy journal.
func NewBuyJournal() *BuyJournal {
	return &BuyJournal{
		data: make(map[string][]*domain.RecordedBuy),
		seen: make(map[buyKey]struct{}),
		now:  time.Now,
	}
}

// Compile-time interface check.
var _ storage.BuyJournal = (*BuyJournal)(nil)

// Append records a buy. Returns ErrDuplicateKey if (token, hash) exists.
func (j *BuyJournal) Append(_ context.Context, token string, buy *domain.DiscoveredBuy) error {
	if token == "" || buy == nil || buy.Hash == "" {
		return storage.ErrInvalidInput
	}

	key := buyKey{token: token, hash: buy.Hash}

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, exists := j.seen[key]; exists {
		return storage.ErrDuplicateKey
	}

	j.nextID++
	j.seen[key] = struct{}{}
	j.data[token] = append(j.data[token], &domain.RecordedBuy{
		ID:         j.nextID,
		Token:      token,
		Buy:        *buy.Clone(),
		RecordedAt: j.now().UnixMilli(),
	})
	return nil
}

// GetByToken retrieves up to limit buys for a token, highest slot first.
// A limit below 1 returns every buy.
func (j *BuyJournal) GetByToken(_ context.Context, token string, limit int) ([]*domain.RecordedBuy, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	records := j.data[token]
	result := make([]*domain.RecordedBuy, 0, len(records))
	for _, r := range records {
		c := *r
		c.Buy = *r.Buy.Clone()
		result = append(result, &c)
	}

	sort.SliceStable(result, func(a, b int) bool {
		if result[a].Buy.Slot != result[b].Buy.Slot {
			return result[a].Buy.Slot > result[b].Buy.Slot
		}
		return result[a].ID > result[b].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
