// Package main runs the token liquidity and latest buy HTTP service.
//
// Optional components are enabled by configuration:
//   - POSTGRES_DSN: buy journal in PostgreSQL (memory otherwise)
//   - CLICKHOUSE_DSN: liquidity snapshots in ClickHouse (memory otherwise)
//   - KAFKA_BROKERS: discovered buys published to KAFKA_TOPIC
//   - SOLANA_WS_ENDPOINT: background watcher refreshing last known buys
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"solana-buy-tracker/internal/config"
	"solana-buy-tracker/internal/discovery"
	"solana-buy-tracker/internal/httpapi"
	"solana-buy-tracker/internal/liquidity"
	"solana-buy-tracker/internal/sink"
	"solana-buy-tracker/internal/solana"
	"solana-buy-tracker/internal/storage"
	chstore "solana-buy-tracker/internal/storage/clickhouse"
	"solana-buy-tracker/internal/storage/memory"
	"solana-buy-tracker/internal/storage/migrations"
	pgstore "solana-buy-tracker/internal/storage/postgres"
	"solana-buy-tracker/internal/token"
	"solana-buy-tracker/internal/watcher"
)

const shutdownTimeout = 30 * time.Second

// stores holds the persistence backends selected by configuration.
type stores struct {
	journal   storage.BuyJournal
	snapshots storage.LiquiditySnapshotStore
	cleanup   func()
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogDev)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	st, err := createStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.cleanup()

	sinks := []discovery.BuySink{sink.NewJournal("journal", st.journal)}
	if len(cfg.KafkaBrokers) > 0 {
		publisher := sink.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer publisher.Close()
		sinks = append(sinks, publisher)
		logger.Info("publishing buys to kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	rpc := solana.NewHTTPClient(cfg.RPCEndpoint, solana.WithRateLimit(cfg.RPCRateLimit))
	scheduler, err := discovery.NewScheduler(rpc, memory.NewLastBuyCache(cfg.CacheSize),
		discovery.WithPolicy(cfg.Policy()),
		discovery.WithSinks(sinks...),
		discovery.WithResolveConcurrency(cfg.ResolveConcurrency),
		discovery.WithSinkTimeout(cfg.SinkTimeout),
		discovery.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	// deferred after the publisher and stores, so it runs before they close
	defer scheduler.Wait()

	lookup := liquidity.NewClient(
		liquidity.WithBaseURL(cfg.DexScreenerURL),
		liquidity.WithRateLimit(cfg.DexScreenerRateLimit),
		liquidity.WithLogger(logger),
	)

	serviceOpts := []token.Option{
		token.WithDiscoveryTimeout(cfg.DiscoveryTimeout),
		token.WithJournal(st.journal),
		token.WithSnapshots(st.snapshots),
		token.WithLogger(logger),
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.WSEndpoint != "" {
		wsConfig := solana.DefaultWSConfig()
		wsConfig.Logger = logger
		ws, err := solana.NewWSClient(ctx, cfg.WSEndpoint, &wsConfig)
		if err != nil {
			return fmt.Errorf("create websocket client: %w", err)
		}
		defer ws.Close()

		watcherConfig := watcher.DefaultConfig()
		watcherConfig.Debounce = cfg.WatchDebounce
		watcherConfig.Logger = logger
		w := watcher.New(ws, scheduler, &watcherConfig)
		for _, t := range cfg.WatchTokens {
			w.Watch(t)
		}
		serviceOpts = append(serviceOpts, token.WithWatcher(w))

		g.Go(func() error {
			return w.Run(gctx)
		})
	}

	service := token.NewService(lookup, scheduler, serviceOpts...)
	handler := httpapi.NewHandler(service,
		httpapi.WithDefaultToken(cfg.DefaultToken),
		httpapi.WithHistory(service),
		httpapi.WithRequestTimeout(cfg.RequestTimeout),
		httpapi.WithLogger(logger),
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.CORS(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	g.Go(func() error {
		logger.Info("starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// createStores opens the configured databases, applying migrations, and
// falls back to memory stores for anything left unconfigured.
func createStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	st := &stores{
		journal:   memory.NewBuyJournal(),
		snapshots: memory.NewLiquiditySnapshotStore(),
	}
	var closers []func()
	st.cleanup = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.PostgresDSN != "" {
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN, pgstore.WithApplicationName("solana-buy-tracker"))
		if err != nil {
			return nil, err
		}
		closers = append(closers, pool.Close)
		if err := migrations.RunPostgresMigrations(ctx, pool, logger); err != nil {
			st.cleanup()
			return nil, fmt.Errorf("postgres migrations: %w", err)
		}
		st.journal = pgstore.NewBuyJournal(pool)
		logger.Info("using postgres buy journal")
	}

	if cfg.ClickhouseDSN != "" {
		conn, err := migrations.RunClickhouseMigrations(ctx, cfg.ClickhouseDSN, logger)
		if err != nil {
			st.cleanup()
			return nil, fmt.Errorf("clickhouse migrations: %w", err)
		}
		closers = append(closers, func() { conn.Close() })
		st.snapshots = chstore.NewLiquiditySnapshotStore(conn)
		logger.Info("using clickhouse liquidity snapshots")
	}

	return st, nil
}
