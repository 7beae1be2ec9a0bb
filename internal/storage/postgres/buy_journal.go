package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/storage"
)

// BuyJournal implements storage.BuyJournal using PostgreSQL.
type BuyJournal struct {
	pool *Pool
}

// NewBuyJournal creates a new BuyJournal.
func NewBuyJournal(pool *Pool) *BuyJournal {
	return &BuyJournal{pool: pool}
}

// Compile-time interface check.
var _ storage.BuyJournal = (*BuyJournal)(nil)

// Append records a buy. Returns ErrDuplicateKey if (token, hash) exists.
func (j *BuyJournal) Append(ctx context.Context, token string, buy *domain.DiscoveredBuy) error {
	if token == "" || buy == nil || buy.Hash == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO discovered_buys (
			token, tx_hash, slot, sender, recipient, amount, dapp, dapp_name, fee_payer
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := j.pool.Exec(ctx, query,
		token,
		buy.Hash,
		buy.Slot,
		buy.Sender,
		buy.Recipient,
		buy.Amount,
		buy.Dapp,
		buy.DappName,
		buy.FeePayer,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert discovered buy: %w", err)
	}
	return nil
}

// GetByToken retrieves up to limit buys for a token, highest slot first.
// A limit below 1 returns every buy.
func (j *BuyJournal) GetByToken(ctx context.Context, token string, limit int) ([]*domain.RecordedBuy, error) {
	query := `
		SELECT id, token, tx_hash, slot, sender, recipient, amount, dapp, dapp_name, fee_payer,
			(EXTRACT(EPOCH FROM recorded_at) * 1000)::BIGINT
		FROM discovered_buys
		WHERE token = $1
		ORDER BY slot DESC, id DESC
	`
	args := []any{token}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := j.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query discovered buys: %w", err)
	}
	defer rows.Close()

	var result []*domain.RecordedBuy
	for rows.Next() {
		r, err := scanRecordedBuy(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate discovered buys: %w", err)
	}
	return result, nil
}

func scanRecordedBuy(row pgx.Row) (*domain.RecordedBuy, error) {
	var r domain.RecordedBuy
	err := row.Scan(
		&r.ID,
		&r.Token,
		&r.Buy.Hash,
		&r.Buy.Slot,
		&r.Buy.Sender,
		&r.Buy.Recipient,
		&r.Buy.Amount,
		&r.Buy.Dapp,
		&r.Buy.DappName,
		&r.Buy.FeePayer,
		&r.RecordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan discovered buy: %w", err)
	}
	return &r, nil
}
