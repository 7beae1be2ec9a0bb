// Package watcher refreshes the last known buy of tokens when the ledger
// reports new transactions that mention them.
package watcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/observability"
	"solana-buy-tracker/internal/solana"
)

// Discoverer finds the most recent buy of a token.
type Discoverer interface {
	Discover(ctx context.Context, token string) (*domain.DiscoveredBuy, error)
}

// Config configures Watcher.
type Config struct {
	// Debounce collapses bursts of notifications into one discovery.
	Debounce time.Duration
	// DiscoverTimeout bounds each background discovery.
	DiscoverTimeout time.Duration
	// QueueSize bounds pending Watch registrations.
	QueueSize int
	Logger    *zap.Logger
}

// DefaultConfig returns default watcher configuration.
func DefaultConfig() Config {
	return Config{
		Debounce:        2 * time.Second,
		DiscoverTimeout: 30 * time.Second,
		QueueSize:       256,
	}
}

// Watcher subscribes to logs mentioning each watched token.
type Watcher struct {
	ws         solana.WSClient
	discoverer Discoverer
	config     Config
	logger     *zap.Logger

	mu      sync.Mutex
	watched map[string]struct{}

	requests chan string
	wg       sync.WaitGroup
}

// New creates a watcher. Subscriptions start once Run is called.
func New(ws solana.WSClient, discoverer Discoverer, config *Config) *Watcher {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Watcher{
		ws:         ws,
		discoverer: discoverer,
		config:     cfg,
		logger:     logger.Named("watcher"),
		watched:    make(map[string]struct{}),
		requests:   make(chan string, cfg.QueueSize),
	}
}

// Watch registers token. It never blocks; a token is subscribed at most once.
func (w *Watcher) Watch(token string) {
	w.mu.Lock()
	if _, ok := w.watched[token]; ok {
		w.mu.Unlock()
		return
	}
	w.watched[token] = struct{}{}
	w.mu.Unlock()

	select {
	case w.requests <- token:
	default:
		w.logger.Warn("watch queue full, dropping token", zap.String("token", token))
		w.forget(token)
	}
}

// Watching reports whether token is registered.
func (w *Watcher) Watching(token string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.watched[token]
	return ok
}

// Run subscribes registered tokens until ctx is done, then waits for
// in-flight discoveries to finish.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case token := <-w.requests:
			ch, err := w.ws.SubscribeLogs(ctx, solana.LogsFilter{Mentions: token})
			if err != nil {
				w.logger.Warn("subscribe logs failed", zap.String("token", token), zap.Error(err))
				w.forget(token)
				continue
			}
			w.logger.Info("watching token", zap.String("token", token))

			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				w.follow(ctx, token, ch)
			}()
		}
	}
}

func (w *Watcher) follow(ctx context.Context, token string, ch <-chan solana.LogNotification) {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				w.logger.Info("log subscription closed", zap.String("token", token))
				w.forget(token)
				return
			}
			if !n.Succeeded() || fire != nil {
				continue
			}
			timer = time.NewTimer(w.config.Debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			w.refresh(ctx, token)
		}
	}
}

func (w *Watcher) refresh(ctx context.Context, token string) {
	observability.RecordWatcherTrigger()

	if w.config.DiscoverTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.config.DiscoverTimeout)
		defer cancel()
	}

	buy, err := w.discoverer.Discover(ctx, token)
	if err != nil {
		w.logger.Warn("background discovery failed", zap.String("token", token), zap.Error(err))
		return
	}
	if buy != nil {
		w.logger.Debug("background discovery", zap.String("token", token), zap.String("hash", buy.Hash))
	}
}

func (w *Watcher) forget(token string) {
	w.mu.Lock()
	delete(w.watched, token)
	w.mu.Unlock()
}
