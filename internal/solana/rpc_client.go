package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"

	"solana-buy-tracker/internal/observability"
)

// Default configuration values.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = 250 * time.Millisecond
	DefaultMaxDelay    = 5 * time.Second
	DefaultBackoffMult = 2.0
)

// DefaultCommitment is the commitment level used for all reads.
const DefaultCommitment = "confirmed"

// HTTPClient implements LedgerClient using HTTP JSON-RPC 2.0.
type HTTPClient struct {
	endpoint    string
	client      *http.Client
	maxRetries  int
	retryDelay  time.Duration
	maxDelay    time.Duration
	backoffMult float64
	limiter     ratelimit.Limiter
	requestID   atomic.Uint64
}

// ClientOption configures HTTPClient.
type ClientOption func(*HTTPClient)

// WithTimeout sets HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// WithMaxRetries sets maximum retry attempts.
func WithMaxRetries(n int) ClientOption {
	return func(c *HTTPClient) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets initial retry delay.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.retryDelay = d
	}
}

// WithMaxDelay sets maximum retry delay.
func WithMaxDelay(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.maxDelay = d
	}
}

// WithHTTPClient sets custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// WithRateLimit caps outgoing requests per second. Zero or less disables pacing.
func WithRateLimit(rps int) ClientOption {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = ratelimit.NewUnlimited()
			return
		}
		c.limiter = ratelimit.New(rps)
	}
}

// NewHTTPClient creates a new Solana RPC HTTP client.
func NewHTTPClient(endpoint string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		endpoint:    endpoint,
		client:      &http.Client{Timeout: DefaultTimeout},
		maxRetries:  DefaultMaxRetries,
		retryDelay:  DefaultRetryDelay,
		maxDelay:    DefaultMaxDelay,
		backoffMult: DefaultBackoffMult,
		limiter:     ratelimit.NewUnlimited(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ LedgerClient = (*HTTPClient)(nil)

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is a JSON-RPC 2.0 error object returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// call performs a JSON-RPC call with retries and exponential backoff.
// RPC-level errors are returned immediately; transport errors and 429s are retried.
func (c *HTTPClient) call(ctx context.Context, method string, params []interface{}, result interface{}) (err error) {
	started := time.Now()
	defer func() {
		observability.RecordRPCCall(method, err, time.Since(started).Seconds())
	}()

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.requestID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	delay := c.retryDelay
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * c.backoffMult)
			if delay > c.maxDelay {
				delay = c.maxDelay
			}
		}

		// Take cannot be interrupted; skip it once the caller has given up
		// so abandoned calls do not consume shared rate limit.
		if err := ctx.Err(); err != nil {
			return err
		}
		c.limiter.Take()
		if err := ctx.Err(); err != nil {
			return err
		}

		respBody, status, err := c.post(ctx, body)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			continue
		}

		if status == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limited (429)")
			continue
		}
		if status != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status %d: %s", status, string(respBody))
			continue
		}

		var rpcResp rpcResponse
		if err := json.Unmarshal(respBody, &rpcResp); err != nil {
			lastErr = fmt.Errorf("unmarshal response: %w", err)
			continue
		}
		if rpcResp.Error != nil {
			return rpcResp.Error
		}

		if result != nil && rpcResp.Result != nil {
			if err := json.Unmarshal(rpcResp.Result, result); err != nil {
				return fmt.Errorf("unmarshal result: %w", err)
			}
		}
		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *HTTPClient) post(ctx context.Context, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

// GetSignaturesForAddress retrieves signatures for an address with pagination.
func (c *HTTPClient) GetSignaturesForAddress(ctx context.Context, address string, opts *SignaturesOpts) ([]SignatureInfo, error) {
	config := map[string]interface{}{
		"commitment": DefaultCommitment,
	}
	if opts != nil {
		if opts.Before != "" {
			config["before"] = opts.Before
		}
		if opts.Until != "" {
			config["until"] = opts.Until
		}
		if opts.Limit > 0 {
			config["limit"] = opts.Limit
		}
	}

	var result []getSignaturesResult
	if err := c.call(ctx, "getSignaturesForAddress", []interface{}{address, config}, &result); err != nil {
		return nil, err
	}

	sigs := make([]SignatureInfo, len(result))
	for i, r := range result {
		sigs[i] = SignatureInfo{
			Signature: r.Signature,
			Slot:      r.Slot,
			BlockTime: r.BlockTime,
			Err:       r.Err,
		}
	}
	return sigs, nil
}

type getSignaturesResult struct {
	Signature string      `json:"signature"`
	Slot      int64       `json:"slot"`
	BlockTime *int64      `json:"blockTime"`
	Err       interface{} `json:"err"`
}

// GetParsedTransaction retrieves a transaction by signature in jsonParsed encoding.
func (c *HTTPClient) GetParsedTransaction(ctx context.Context, signature string) (*ParsedTransaction, error) {
	params := []interface{}{
		signature,
		map[string]interface{}{
			"encoding":                       "jsonParsed",
			"commitment":                     DefaultCommitment,
			"maxSupportedTransactionVersion": 0,
		},
	}

	var result *parsedTransactionResult
	if err := c.call(ctx, "getTransaction", params, &result); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	return result.toParsedTransaction(), nil
}

type parsedTransactionResult struct {
	Slot        int64                  `json:"slot"`
	BlockTime   *int64                 `json:"blockTime"`
	Meta        *parsedTransactionMeta `json:"meta"`
	Transaction *struct {
		Signatures []string `json:"signatures"`
		Message    struct {
			AccountKeys  []parsedAccountKey  `json:"accountKeys"`
			Instructions []parsedInstruction `json:"instructions"`
		} `json:"message"`
	} `json:"transaction"`
}

type parsedTransactionMeta struct {
	Err               interface{}          `json:"err"`
	PreTokenBalances  []parsedTokenBalance `json:"preTokenBalances"`
	PostTokenBalances []parsedTokenBalance `json:"postTokenBalances"`
}

type parsedAccountKey struct {
	Pubkey   string `json:"pubkey"`
	Signer   bool   `json:"signer"`
	Writable bool   `json:"writable"`
}

type parsedInstruction struct {
	ProgramID string   `json:"programId"`
	Accounts  []string `json:"accounts"`
}

type parsedTokenBalance struct {
	AccountIndex  int     `json:"accountIndex"`
	Mint          string  `json:"mint"`
	Owner         *string `json:"owner"`
	UITokenAmount *struct {
		Amount   string `json:"amount"`
		Decimals uint8  `json:"decimals"`
	} `json:"uiTokenAmount"`
}

func (r *parsedTransactionResult) toParsedTransaction() *ParsedTransaction {
	tx := &ParsedTransaction{
		Slot:      r.Slot,
		BlockTime: r.BlockTime,
	}

	if r.Transaction != nil {
		tx.Signatures = r.Transaction.Signatures
		for _, k := range r.Transaction.Message.AccountKeys {
			tx.AccountKeys = append(tx.AccountKeys, AccountKey{
				Address:  k.Pubkey,
				Signer:   k.Signer,
				Writable: k.Writable,
			})
		}
		for _, ix := range r.Transaction.Message.Instructions {
			tx.Instructions = append(tx.Instructions, Instruction{
				ProgramID: ix.ProgramID,
				Accounts:  ix.Accounts,
			})
		}
	}

	if r.Meta != nil {
		tx.Err = r.Meta.Err
		tx.PreTokenBalances = convertTokenBalances(r.Meta.PreTokenBalances)
		tx.PostTokenBalances = convertTokenBalances(r.Meta.PostTokenBalances)
	}

	return tx
}

func convertTokenBalances(in []parsedTokenBalance) []TokenBalance {
	if len(in) == 0 {
		return nil
	}
	out := make([]TokenBalance, 0, len(in))
	for _, b := range in {
		tb := TokenBalance{
			AccountIndex: b.AccountIndex,
			Mint:         b.Mint,
			Owner:        b.Owner,
		}
		if b.UITokenAmount != nil {
			tb.Amount = b.UITokenAmount.Amount
			tb.Decimals = b.UITokenAmount.Decimals
		}
		out = append(out, tb)
	}
	return out
}
