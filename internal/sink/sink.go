// Package sink delivers discovered buys to journals and message brokers.
package sink

import (
	"context"
	"errors"

	"solana-buy-tracker/internal/discovery"
	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/storage"
)

// Journal adapts a storage.BuyJournal to discovery.BuySink.
// Re-discovering an already journaled buy is not an error.
type Journal struct {
	name    string
	journal storage.BuyJournal
}

// NewJournal wraps journal under the given sink name.
func NewJournal(name string, journal storage.BuyJournal) *Journal {
	return &Journal{name: name, journal: journal}
}

var _ discovery.BuySink = (*Journal)(nil)

// Name returns the sink name used in logs and metrics.
func (j *Journal) Name() string {
	return j.name
}

// Record appends buy to the journal.
func (j *Journal) Record(ctx context.Context, token string, buy *domain.DiscoveredBuy) error {
	err := j.journal.Append(ctx, token, buy)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil
	}
	return err
}
