package storage

import (
	"context"

	"solana-buy-tracker/internal/domain"
)

// BuyJournal provides access to discovered_buys storage.
// The discovery engine only appends; GET /token/{address}/buys reads.
type BuyJournal interface {
	// Append records a buy. Returns ErrDuplicateKey if (token, hash) exists.
	Append(ctx context.Context, token string, buy *domain.DiscoveredBuy) error

	// GetByToken retrieves up to limit buys for a token, highest slot first.
	GetByToken(ctx context.Context, token string, limit int) ([]*domain.RecordedBuy, error)
}

// LiquiditySnapshotStore provides access to liquidity_snapshots storage.
type LiquiditySnapshotStore interface {
	// Insert adds a snapshot. Returns ErrInvalidInput if token is empty.
	Insert(ctx context.Context, s *domain.LiquiditySnapshot) error

	// GetByTimeRange retrieves snapshots for a token within [start, end] (inclusive), ordered by time ASC.
	GetByTimeRange(ctx context.Context, token string, start, end int64) ([]*domain.LiquiditySnapshot, error)

	// Latest retrieves the most recent snapshot. Returns ErrNotFound if none.
	Latest(ctx context.Context, token string) (*domain.LiquiditySnapshot, error)
}
