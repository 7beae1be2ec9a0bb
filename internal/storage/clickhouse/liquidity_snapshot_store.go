package clickhouse

import (
	"context"
	"fmt"

	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/storage"
)

// LiquiditySnapshotStore implements storage.LiquiditySnapshotStore using ClickHouse.
type LiquiditySnapshotStore struct {
	conn *Conn
}

// NewLiquiditySnapshotStore creates a new LiquiditySnapshotStore.
func NewLiquiditySnapshotStore(conn *Conn) *LiquiditySnapshotStore {
	return &LiquiditySnapshotStore{conn: conn}
}

// Compile-time interface check.
var _ storage.LiquiditySnapshotStore = (*LiquiditySnapshotStore)(nil)

// Insert adds a snapshot.
func (s *LiquiditySnapshotStore) Insert(ctx context.Context, snap *domain.LiquiditySnapshot) error {
	if snap == nil || snap.Token == "" {
		return storage.ErrInvalidInput
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO liquidity_snapshots (
			token, observed_at_ms, liquidity_usd, pair_address, dex_id, pair_count
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	if err := batch.Append(
		snap.Token,
		snap.ObservedAt,
		snap.LiquidityUSD,
		snap.PairAddress,
		snap.DexID,
		uint32(snap.PairCount),
	); err != nil {
		return fmt.Errorf("append to batch: %w", err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// GetByTimeRange retrieves snapshots within [start, end] (inclusive), ordered by time ASC.
func (s *LiquiditySnapshotStore) GetByTimeRange(ctx context.Context, token string, start, end int64) ([]*domain.LiquiditySnapshot, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT token, observed_at_ms, liquidity_usd, pair_address, dex_id, pair_count
		FROM liquidity_snapshots
		WHERE token = ? AND observed_at_ms >= ? AND observed_at_ms <= ?
		ORDER BY observed_at_ms ASC
	`, token, start, end)
	if err != nil {
		return nil, fmt.Errorf("query liquidity snapshots: %w", err)
	}
	defer rows.Close()

	var result []*domain.LiquiditySnapshot
	for rows.Next() {
		var (
			snap      domain.LiquiditySnapshot
			pairCount uint32
		)
		if err := rows.Scan(&snap.Token, &snap.ObservedAt, &snap.LiquidityUSD, &snap.PairAddress, &snap.DexID, &pairCount); err != nil {
			return nil, fmt.Errorf("scan liquidity snapshot: %w", err)
		}
		snap.PairCount = int(pairCount)
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate liquidity snapshots: %w", err)
	}
	return result, nil
}

// Latest retrieves the most recent snapshot. Returns ErrNotFound if none.
func (s *LiquiditySnapshotStore) Latest(ctx context.Context, token string) (*domain.LiquiditySnapshot, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT token, observed_at_ms, liquidity_usd, pair_address, dex_id, pair_count
		FROM liquidity_snapshots
		WHERE token = ?
		ORDER BY observed_at_ms DESC
		LIMIT 1
	`, token)
	if err != nil {
		return nil, fmt.Errorf("query latest liquidity snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate liquidity snapshots: %w", err)
		}
		return nil, storage.ErrNotFound
	}

	var (
		snap      domain.LiquiditySnapshot
		pairCount uint32
	)
	if err := rows.Scan(&snap.Token, &snap.ObservedAt, &snap.LiquidityUSD, &snap.PairAddress, &snap.DexID, &pairCount); err != nil {
		return nil, fmt.Errorf("scan liquidity snapshot: %w", err)
	}
	snap.PairCount = int(pairCount)
	return &snap, nil
}
