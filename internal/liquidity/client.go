// Package liquidity looks up token liquidity from the DexScreener API.
package liquidity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"solana-buy-tracker/internal/observability"
)

// DefaultBaseURL is the public DexScreener API.
const DefaultBaseURL = "https://api.dexscreener.com"

// ErrNoPairs is the cause of a LookupFailure when the token has no pairs.
var ErrNoPairs = errors.New("no pairs found")

// LookupFailure is returned when liquidity for a token cannot be determined.
type LookupFailure struct {
	Token      string
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *LookupFailure) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch token %s: status %d: %v", e.Token, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to fetch token %s: %v", e.Token, e.Err)
}

func (e *LookupFailure) Unwrap() error {
	return e.Err
}

// Client queries DexScreener for token pairs.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	logger     *zap.Logger
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRateLimit caps requests per second. Zero or less disables the limit.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = ratelimit.New(rps)
		} else {
			c.limiter = ratelimit.NewUnlimited()
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a DexScreener client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    ratelimit.New(5),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("liquidity")
	return c
}

// Lookup returns the USD liquidity of the first pair reported for token,
// or 0 when that pair carries no liquidity. Failures are *LookupFailure.
func (c *Client) Lookup(ctx context.Context, token string) (quote *Quote, err error) {
	start := time.Now()
	defer func() {
		observability.RecordLiquidityLookup(err, time.Since(start).Seconds())
	}()

	resp, err := c.fetch(ctx, token)
	if err != nil {
		return nil, err
	}

	if len(resp.Pairs) == 0 {
		return nil, &LookupFailure{Token: token, Err: ErrNoPairs}
	}

	first := resp.Pairs[0]
	quote = &Quote{
		Token:       token,
		PairAddress: first.PairAddress,
		DexID:       first.DexID,
		PairCount:   len(resp.Pairs),
	}
	if first.Liquidity != nil {
		quote.LiquidityUSD = first.Liquidity.Usd
	}
	return quote, nil
}

func (c *Client) fetch(ctx context.Context, token string) (*TokenPairsResponse, error) {
	endpoint := fmt.Sprintf("%s/latest/dex/tokens/%s", c.baseURL, url.PathEscape(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &LookupFailure{Token: token, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	c.limiter.Take()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("dexscreener request failed", zap.String("token", token), zap.Error(err))
		return nil, &LookupFailure{Token: token, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &LookupFailure{
			Token:      token,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	var body TokenPairsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &LookupFailure{Token: token, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &body, nil
}
