package discovery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"solana-buy-tracker/internal/clock"
	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/observability"
	"solana-buy-tracker/internal/solana"
)

// Attempt outcomes reported to metrics.
const (
	outcomeEmpty = "empty"
	outcomeError = "error"
	outcomeNoBuy = "no_buy"
	outcomeBuy   = "buy"
)

// DefaultSinkTimeout bounds the delivery of one buy to all sinks.
const DefaultSinkTimeout = 10 * time.Second

// Scheduler finds the most recent buy of a token, widening the signature
// window and backing off between unproductive attempts.
type Scheduler struct {
	fetcher  *SignatureWindowFetcher
	resolver *TransactionResolver
	cache    LastBuyCache
	sinks    []BuySink

	policy      RetryPolicy
	concurrency int
	sinkTimeout time.Duration
	sleep       clock.SleepFunc
	logger      *zap.Logger

	deliveries sync.WaitGroup
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithPolicy overrides DefaultRetryPolicy.
func WithPolicy(p RetryPolicy) Option {
	return func(s *Scheduler) {
		s.policy = p
	}
}

// WithSinks adds sinks notified for every discovered buy.
func WithSinks(sinks ...BuySink) Option {
	return func(s *Scheduler) {
		s.sinks = append(s.sinks, sinks...)
	}
}

// WithSinkTimeout bounds background delivery of a discovered buy to the sinks.
func WithSinkTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.sinkTimeout = d
		}
	}
}

// WithResolveConcurrency bounds parallel transaction fetches per attempt.
func WithResolveConcurrency(n int) Option {
	return func(s *Scheduler) {
		s.concurrency = n
	}
}

// WithSleep replaces the backoff wait.
func WithSleep(sleep clock.SleepFunc) Option {
	return func(s *Scheduler) {
		s.sleep = sleep
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// NewScheduler creates a scheduler reading from client and falling back to cache.
func NewScheduler(client LedgerClient, cache LastBuyCache, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		cache:       cache,
		policy:      DefaultRetryPolicy(),
		concurrency: DefaultResolveConcurrency,
		sinkTimeout: DefaultSinkTimeout,
		sleep:       clock.SleepWithContext,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.policy.Validate(); err != nil {
		return nil, err
	}

	s.logger = s.logger.Named("discovery")
	s.fetcher = NewSignatureWindowFetcher(client)
	s.resolver = NewTransactionResolver(client, s.concurrency, s.logger)
	return s, nil
}

// Policy returns the active retry policy.
func (s *Scheduler) Policy() RetryPolicy {
	return s.policy
}

// Discover returns the freshest buy of token. When every attempt comes up
// empty it returns the last buy found for token, or nil if there is none.
// The only error is ErrInvalidToken.
func (s *Scheduler) Discover(ctx context.Context, token string) (*domain.DiscoveredBuy, error) {
	if err := solana.ValidateAddress(token); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	start := time.Now()
	log := s.logger.With(zap.String("token", token))

	for attempt := 0; attempt < s.policy.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}

		window := s.policy.Window(attempt)
		buy, outcome := s.attempt(ctx, log, token, attempt, window)
		observability.RecordDiscoveryAttempt(outcome)

		if buy != nil {
			s.cache.Put(token, buy)
			observability.UpdateFallbackCacheSize(s.cache.Len())
			s.notify(ctx, log, token, buy.Clone())
			observability.RecordDiscoveryResult("found", time.Since(start).Seconds())

			log.Debug("buy discovered",
				zap.String("hash", buy.Hash),
				zap.Int64("slot", buy.Slot),
				zap.Int("attempt", attempt),
			)
			return buy, nil
		}

		if attempt == s.policy.MaxAttempts-1 {
			break
		}
		if err := s.sleep(ctx, s.policy.Delay(attempt)); err != nil {
			break
		}
	}

	return s.fallback(ctx, log, token, start), nil
}

func (s *Scheduler) attempt(ctx context.Context, log *zap.Logger, token string, attempt, window int) (*domain.DiscoveredBuy, string) {
	sigs, err := s.fetcher.Fetch(ctx, token, window)
	if err != nil {
		log.Warn("fetch signatures failed",
			zap.Int("attempt", attempt),
			zap.Int("window", window),
			zap.Error(err),
		)
		return nil, outcomeError
	}
	if len(sigs) == 0 {
		log.Debug("empty signature window", zap.Int("attempt", attempt), zap.Int("window", window))
		return nil, outcomeEmpty
	}

	txs, err := s.resolver.Resolve(ctx, sigs)
	if err != nil {
		return nil, outcomeError
	}
	observability.RecordCandidatesScanned(len(txs))

	for _, tx := range txs {
		if buy := buildBuy(tx, token); buy != nil {
			return buy, outcomeBuy
		}
	}
	return nil, outcomeNoBuy
}

// buildBuy returns nil when tx is not a buy or the receiving balance has no owner.
func buildBuy(tx *solana.ParsedTransaction, token string) *domain.DiscoveredBuy {
	res := Classify(tx, token)
	if !res.IsBuy || res.Post.Owner == nil {
		return nil
	}

	recipient := *res.Post.Owner
	buy := &domain.DiscoveredBuy{
		Slot:      tx.Slot,
		Hash:      tx.PrimarySignature(),
		Sender:    ResolveSender(tx, token, recipient),
		Recipient: recipient,
		Amount:    res.Amount(),
		Dapp:      LikelyProgram(tx),
		FeePayer:  tx.FeePayer(),
	}
	if buy.Dapp != nil {
		buy.DappName = ProgramName(*buy.Dapp)
	}
	return buy
}

// Wait blocks until background sink deliveries started so far have finished.
func (s *Scheduler) Wait() {
	s.deliveries.Wait()
}

// notify delivers buy to every sink in the background, detached from the
// caller's cancellation and bounded by the sink timeout. Failures are logged only.
func (s *Scheduler) notify(ctx context.Context, log *zap.Logger, token string, buy *domain.DiscoveredBuy) {
	if len(s.sinks) == 0 {
		return
	}
	s.deliveries.Add(1)
	go func() {
		defer s.deliveries.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sinkTimeout)
		defer cancel()
		s.deliver(ctx, log, token, buy)
	}()
}

func (s *Scheduler) deliver(ctx context.Context, log *zap.Logger, token string, buy *domain.DiscoveredBuy) {
	for _, sink := range s.sinks {
		if err := sink.Record(ctx, token, buy); err != nil {
			observability.RecordSinkError(sink.Name())
			log.Warn("record discovered buy failed",
				zap.String("sink", sink.Name()),
				zap.String("hash", buy.Hash),
				zap.Error(err),
			)
		}
	}
}

func (s *Scheduler) fallback(ctx context.Context, log *zap.Logger, token string, start time.Time) *domain.DiscoveredBuy {
	elapsed := time.Since(start)
	fields := []zap.Field{
		zap.Int("attempts", s.policy.MaxAttempts),
		zap.Duration("elapsed", elapsed),
	}
	if err := ctx.Err(); err != nil {
		fields = append(fields, zap.NamedError("ctx_err", err))
	}

	cached, ok := s.cache.Get(token)
	if !ok {
		observability.RecordDiscoveryResult("none", elapsed.Seconds())
		log.Warn("no buy found", fields...)
		return nil
	}

	observability.RecordDiscoveryResult("fallback", elapsed.Seconds())
	log.Warn("no fresh buy found, serving last known buy",
		append(fields, zap.String("hash", cached.Hash))...)
	return cached
}
