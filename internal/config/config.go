// Package config loads service configuration from flags, environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"solana-buy-tracker/internal/discovery"
)

// ErrMissingRPCEndpoint is returned when no Solana RPC endpoint is configured.
var ErrMissingRPCEndpoint = errors.New("SOLANA_RPC_ENDPOINT is required")

// Config holds all service settings. Flags take precedence over environment.
type Config struct {
	RPCEndpoint  string `long:"rpc-endpoint" env:"SOLANA_RPC_ENDPOINT" description:"Solana RPC HTTP endpoint"`
	RPCRateLimit int    `long:"rpc-rate-limit" env:"SOLANA_RPC_RATE_LIMIT" description:"Max RPC requests per second (0 disables)" default:"10"`
	WSEndpoint   string `long:"ws-endpoint" env:"SOLANA_WS_ENDPOINT" description:"Solana WebSocket endpoint; enables the buy watcher"`

	HTTPAddr       string        `long:"http-addr" env:"HTTP_ADDR" description:"HTTP listen address" default:":3000"`
	RequestTimeout time.Duration `long:"request-timeout" env:"REQUEST_TIMEOUT" description:"Per-request deadline" default:"30s"`
	DefaultToken   string        `long:"default-token" env:"DEFAULT_TOKEN" description:"Token served by GET /token" default:"JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"`

	// DiscoveryTimeout must leave room inside RequestTimeout for the fallback answer.
	DiscoveryTimeout time.Duration `long:"discovery-timeout" env:"DISCOVERY_TIMEOUT" description:"Budget for buy discovery within a request" default:"20s"`
	SinkTimeout      time.Duration `long:"sink-timeout" env:"SINK_TIMEOUT" description:"Budget for delivering one buy to the journal and broker" default:"10s"`

	DexScreenerURL       string `long:"dexscreener-url" env:"DEXSCREENER_BASE_URL" description:"DexScreener API base URL" default:"https://api.dexscreener.com"`
	DexScreenerRateLimit int    `long:"dexscreener-rate-limit" env:"DEXSCREENER_RATE_LIMIT" description:"Max DexScreener requests per second (0 disables)" default:"5"`

	InitialWindow      int           `long:"initial-window" env:"DISCOVERY_INITIAL_WINDOW" description:"Signatures scanned on the first attempt" default:"30"`
	WindowGrowth       float64       `long:"window-growth" env:"DISCOVERY_WINDOW_GROWTH" description:"Window multiplier per attempt" default:"1.5"`
	MaxAttempts        int           `long:"max-attempts" env:"DISCOVERY_MAX_ATTEMPTS" description:"Attempts before falling back" default:"5"`
	InitialDelay       time.Duration `long:"initial-delay" env:"DISCOVERY_INITIAL_DELAY" description:"Wait after the first failed attempt" default:"50ms"`
	DelayGrowth        float64       `long:"delay-growth" env:"DISCOVERY_DELAY_GROWTH" description:"Delay multiplier per attempt" default:"2"`
	ResolveConcurrency int           `long:"resolve-concurrency" env:"DISCOVERY_RESOLVE_CONCURRENCY" description:"Concurrent transaction fetches" default:"8"`
	CacheSize          int           `long:"cache-size" env:"LAST_BUY_CACHE_SIZE" description:"Tokens kept in the last known buy cache" default:"1024"`

	PostgresDSN   string `long:"postgres-dsn" env:"POSTGRES_DSN" description:"PostgreSQL DSN for the buy journal"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"ClickHouse DSN for liquidity snapshots"`

	KafkaBrokers []string `long:"kafka-broker" env:"KAFKA_BROKERS" env-delim:"," description:"Kafka brokers for buy events"`
	KafkaTopic   string   `long:"kafka-topic" env:"KAFKA_TOPIC" description:"Kafka topic for buy events" default:"discovered-buys"`

	WatchTokens   []string      `long:"watch-token" env:"WATCH_TOKENS" env-delim:"," description:"Tokens watched from startup"`
	WatchDebounce time.Duration `long:"watch-debounce" env:"WATCH_DEBOUNCE" description:"Quiet period before a watcher discovery" default:"2s"`

	LogDev bool `long:"log-dev" env:"LOG_DEV" description:"Human readable development logs"`
}

// Load reads envFiles (default .env) into the environment without
// overriding existing variables, then parses args.
func Load(args []string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings and the retry policy.
func (c *Config) Validate() error {
	if c.RPCEndpoint == "" {
		return ErrMissingRPCEndpoint
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("cache size must be positive, got %d", c.CacheSize)
	}
	if c.DiscoveryTimeout <= 0 || c.DiscoveryTimeout >= c.RequestTimeout {
		return fmt.Errorf("discovery timeout %s must be positive and below request timeout %s", c.DiscoveryTimeout, c.RequestTimeout)
	}
	if c.ResolveConcurrency < 1 {
		return fmt.Errorf("resolve concurrency must be positive, got %d", c.ResolveConcurrency)
	}
	return c.Policy().Validate()
}

// Policy returns the discovery retry policy.
func (c *Config) Policy() discovery.RetryPolicy {
	return discovery.RetryPolicy{
		InitialWindow: c.InitialWindow,
		WindowGrowth:  c.WindowGrowth,
		MaxAttempts:   c.MaxAttempts,
		InitialDelay:  c.InitialDelay,
		DelayGrowth:   c.DelayGrowth,
	}
}
