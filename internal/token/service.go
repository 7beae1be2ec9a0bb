// Package token answers liquidity and latest-buy queries for a token.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/liquidity"
	"solana-buy-tracker/internal/solana"
	"solana-buy-tracker/internal/storage"
)

var (
	// ErrInvalidAddress is returned for a token that is not a base58 public key.
	ErrInvalidAddress = errors.New("invalid token address")
	// ErrUpstreamFetch is returned when the liquidity lookup fails.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrHistoryDisabled is returned by history reads when no store is configured.
	ErrHistoryDisabled = errors.New("history store not configured")
)

// DefaultHistoryLimit caps journal reads when the caller gives no limit.
const DefaultHistoryLimit = 100

// Service combines a liquidity lookup with buy discovery.
type Service struct {
	liquidity        LiquidityLookup
	discoverer       BuyDiscoverer
	discoveryTimeout time.Duration
	journal          storage.BuyJournal
	snapshots        storage.LiquiditySnapshotStore
	watcher          TokenWatcher
	logger           *zap.Logger
	now              func() time.Time
}

// Option configures Service.
type Option func(*Service)

// WithDiscoveryTimeout bounds buy discovery inside GetToken. When it expires
// the discoverer returns its fallback and the request still succeeds, so it
// must stay below the request deadline. Zero disables the bound.
func WithDiscoveryTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.discoveryTimeout = d
	}
}

// WithJournal enables Buys over the discovered buy journal.
func WithJournal(journal storage.BuyJournal) Option {
	return func(s *Service) {
		s.journal = journal
	}
}

// WithSnapshots records every successful liquidity lookup.
func WithSnapshots(store storage.LiquiditySnapshotStore) Option {
	return func(s *Service) {
		s.snapshots = store
	}
}

// WithWatcher registers served tokens with a background watcher.
func WithWatcher(w TokenWatcher) Option {
	return func(s *Service) {
		s.watcher = w
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a token service.
func NewService(lookup LiquidityLookup, discoverer BuyDiscoverer, opts ...Option) *Service {
	s := &Service{
		liquidity:  lookup,
		discoverer: discoverer,
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("token")
	return s
}

// GetToken returns liquidity and the latest buy for token. The lookup and
// the discovery run concurrently; a lookup failure cancels the discovery.
func (s *Service) GetToken(ctx context.Context, token string) (*domain.TokenReport, error) {
	if err := solana.ValidateAddress(token); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	var (
		report = &domain.TokenReport{}
		quote  *liquidity.Quote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.liquidity.Lookup(gctx, token)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		dctx := gctx
		if s.discoveryTimeout > 0 {
			var cancel context.CancelFunc
			dctx, cancel = context.WithTimeout(gctx, s.discoveryTimeout)
			defer cancel()
		}
		buy, err := s.discoverer.Discover(dctx, token)
		if err != nil {
			return fmt.Errorf("discover latest buy: %w", err)
		}
		report.LatestBuyTx = buy
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Liquidity = quote.LiquidityUSD
	s.recordSnapshot(ctx, token, quote)
	if s.watcher != nil {
		s.watcher.Watch(token)
	}
	return report, nil
}

func (s *Service) recordSnapshot(ctx context.Context, token string, q *liquidity.Quote) {
	if s.snapshots == nil {
		return
	}
	err := s.snapshots.Insert(ctx, &domain.LiquiditySnapshot{
		Token:        token,
		LiquidityUSD: q.LiquidityUSD,
		PairAddress:  q.PairAddress,
		DexID:        q.DexID,
		PairCount:    q.PairCount,
		ObservedAt:   s.now().UnixMilli(),
	})
	if err != nil {
		s.logger.Warn("record liquidity snapshot failed", zap.String("token", token), zap.Error(err))
	}
}

// Buys returns up to limit journaled buys of token, most recent slot first.
// A limit below 1 uses DefaultHistoryLimit.
func (s *Service) Buys(ctx context.Context, token string, limit int) ([]*domain.RecordedBuy, error) {
	if err := solana.ValidateAddress(token); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if s.journal == nil {
		return nil, ErrHistoryDisabled
	}
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return s.journal.GetByToken(ctx, token, limit)
}

// LiquidityHistory returns the snapshots of token observed within
// [from, to] in Unix milliseconds, oldest first.
func (s *Service) LiquidityHistory(ctx context.Context, token string, from, to int64) ([]*domain.LiquiditySnapshot, error) {
	if err := solana.ValidateAddress(token); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if s.snapshots == nil {
		return nil, ErrHistoryDisabled
	}
	return s.snapshots.GetByTimeRange(ctx, token, from, to)
}

// LatestLiquidity returns the most recent snapshot of token.
// Returns storage.ErrNotFound when the token was never looked up.
func (s *Service) LatestLiquidity(ctx context.Context, token string) (*domain.LiquiditySnapshot, error) {
	if err := solana.ValidateAddress(token); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if s.snapshots == nil {
		return nil, ErrHistoryDisabled
	}
	return s.snapshots.Latest(ctx, token)
}
