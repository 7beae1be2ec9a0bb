// Package httpapi exposes the token service over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/observability"
	"solana-buy-tracker/internal/storage"
	"solana-buy-tracker/internal/token"
)

// DefaultToken is served by GET /token when no address is given (JUP).
const DefaultToken = "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"

// TokenReporter produces the report for one token.
type TokenReporter interface {
	GetToken(ctx context.Context, token string) (*domain.TokenReport, error)
}

// HistoryReader serves recorded buys and liquidity snapshots of a token.
type HistoryReader interface {
	Buys(ctx context.Context, token string, limit int) ([]*domain.RecordedBuy, error)
	LiquidityHistory(ctx context.Context, token string, from, to int64) ([]*domain.LiquiditySnapshot, error)
	LatestLiquidity(ctx context.Context, token string) (*domain.LiquiditySnapshot, error)
}

// Handler serves token, health and metrics routes.
type Handler struct {
	reporter       TokenReporter
	history        HistoryReader
	defaultToken   string
	requestTimeout time.Duration
	logger         *zap.Logger
	mux            *http.ServeMux
}

// Option configures Handler.
type Option func(*Handler)

// WithDefaultToken sets the token served by GET /token.
func WithDefaultToken(t string) Option {
	return func(h *Handler) {
		if t != "" {
			h.defaultToken = t
		}
	}
}

// WithHistory enables GET /token/{address}/buys and /token/{address}/liquidity.
func WithHistory(history HistoryReader) Option {
	return func(h *Handler) {
		h.history = history
	}
}

// WithRequestTimeout sets a deadline on every request context. Requests that
// run out of time answer 504 through the usual error mapping.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates the HTTP handler.
func NewHandler(reporter TokenReporter, opts ...Option) *Handler {
	h := &Handler{
		reporter:     reporter,
		defaultToken: DefaultToken,
		logger:       zap.NewNop(),
		mux:          http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.Named("http")

	h.mux.HandleFunc("GET /token/{address}", h.handleToken)
	h.mux.HandleFunc("GET /token", h.handleDefaultToken)
	if h.history != nil {
		h.mux.HandleFunc("GET /token/{address}/buys", h.handleBuys)
		h.mux.HandleFunc("GET /token/{address}/liquidity", h.handleLiquidity)
	}
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.Handle("GET /metrics", observability.Handler())
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.requestTimeout > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()
		r = r.WithContext(ctx)
	}
	h.mux.ServeHTTP(w, r)
}

// CORS wraps the handler with permissive CORS headers.
func (h *Handler) CORS() http.Handler {
	return cors.AllowAll().Handler(h)
}

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	h.serveToken(w, r, "/token/{address}", r.PathValue("address"))
}

func (h *Handler) handleDefaultToken(w http.ResponseWriter, r *http.Request) {
	h.serveToken(w, r, "/token", h.defaultToken)
}

func (h *Handler) serveToken(w http.ResponseWriter, r *http.Request, route, address string) {
	report, err := h.reporter.GetToken(r.Context(), address)
	if err != nil {
		code := statusFor(err)
		if code >= http.StatusInternalServerError {
			h.logger.Warn("token request failed", zap.String("token", address), zap.Error(err))
		}
		writeJSON(w, route, code, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, route, http.StatusOK, report)
}

func (h *Handler) handleBuys(w http.ResponseWriter, r *http.Request) {
	const route = "/token/{address}/buys"
	address := r.PathValue("address")

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeJSON(w, route, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	buys, err := h.history.Buys(r.Context(), address, int(limit))
	if err != nil {
		h.writeError(w, route, address, err)
		return
	}

	out := make([]recordedBuy, 0, len(buys))
	for _, b := range buys {
		out = append(out, recordedBuy{DiscoveredBuy: b.Buy, RecordedAt: b.RecordedAt})
	}
	writeJSON(w, route, http.StatusOK, out)
}

// handleLiquidity returns the latest snapshot, or every snapshot within
// [from, to] (Unix ms) when either bound is given.
func (h *Handler) handleLiquidity(w http.ResponseWriter, r *http.Request) {
	const route = "/token/{address}/liquidity"
	address := r.PathValue("address")
	q := r.URL.Query()

	if !q.Has("from") && !q.Has("to") {
		snap, err := h.history.LatestLiquidity(r.Context(), address)
		if err != nil {
			h.writeError(w, route, address, err)
			return
		}
		writeJSON(w, route, http.StatusOK, toSnapshot(snap))
		return
	}

	from, err := queryInt(r, "from", 0)
	if err != nil {
		writeJSON(w, route, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	to, err := queryInt(r, "to", time.Now().UnixMilli())
	if err != nil {
		writeJSON(w, route, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	snaps, err := h.history.LiquidityHistory(r.Context(), address, from, to)
	if err != nil {
		h.writeError(w, route, address, err)
		return
	}
	out := make([]snapshot, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, toSnapshot(s))
	}
	writeJSON(w, route, http.StatusOK, out)
}

func (h *Handler) writeError(w http.ResponseWriter, route, address string, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.logger.Warn("history request failed", zap.String("token", address), zap.Error(err))
	}
	writeJSON(w, route, code, errorResponse{Error: err.Error()})
}

func queryInt(r *http.Request, key string, def int64) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, errors.New("invalid " + key + " parameter")
	}
	return v, nil
}

type recordedBuy struct {
	domain.DiscoveredBuy
	RecordedAt int64 `json:"recordedAt"`
}

type snapshot struct {
	LiquidityUSD float64 `json:"liquidity"`
	PairAddress  string  `json:"pairAddress"`
	DexID        string  `json:"dexId"`
	PairCount    int     `json:"pairCount"`
	ObservedAt   int64   `json:"observedAt"`
}

func toSnapshot(s *domain.LiquiditySnapshot) snapshot {
	return snapshot{
		LiquidityUSD: s.LiquidityUSD,
		PairAddress:  s.PairAddress,
		DexID:        s.DexID,
		PairCount:    s.PairCount,
		ObservedAt:   s.ObservedAt,
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
	observability.RecordHTTPRequest("/health", strconv.Itoa(http.StatusOK))
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, token.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, token.ErrHistoryDisabled):
		return http.StatusNotFound
	case errors.Is(err, token.ErrUpstreamFetch):
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, route string, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
	observability.RecordHTTPRequest(route, strconv.Itoa(code))
}
