package discovery

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"solana-buy-tracker/internal/solana"
)

// DefaultResolveConcurrency bounds parallel getTransaction calls per attempt.
const DefaultResolveConcurrency = 8

// SignatureWindowFetcher reads the most recent confirmed signatures for an address.
type SignatureWindowFetcher struct {
	client LedgerClient
}

// NewSignatureWindowFetcher creates a fetcher over client.
func NewSignatureWindowFetcher(client LedgerClient) *SignatureWindowFetcher {
	return &SignatureWindowFetcher{client: client}
}

// Fetch returns up to limit succeeded signatures, most recent first.
// Ledger errors are returned wrapped and are not retried here.
func (f *SignatureWindowFetcher) Fetch(ctx context.Context, address string, limit int) ([]solana.SignatureInfo, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, limit)
	}

	sigs, err := f.client.GetSignaturesForAddress(ctx, address, &solana.SignaturesOpts{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("get signatures for %s: %w", address, err)
	}

	succeeded := make([]solana.SignatureInfo, 0, len(sigs))
	for _, sig := range sigs {
		if sig.Succeeded() {
			succeeded = append(succeeded, sig)
		}
	}
	return succeeded, nil
}

// TransactionResolver expands signatures into parsed transactions.
type TransactionResolver struct {
	client      LedgerClient
	concurrency int
	logger      *zap.Logger
}

// NewTransactionResolver creates a resolver. A concurrency below 1 uses
// DefaultResolveConcurrency.
func NewTransactionResolver(client LedgerClient, concurrency int, logger *zap.Logger) *TransactionResolver {
	if concurrency < 1 {
		concurrency = DefaultResolveConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionResolver{
		client:      client,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Resolve fetches the transactions concurrently and returns them in input
// order. Transactions that fail to load or are not found are dropped.
// The only error is the context error when ctx is done.
func (r *TransactionResolver) Resolve(ctx context.Context, sigs []solana.SignatureInfo) ([]*solana.ParsedTransaction, error) {
	if len(sigs) == 0 {
		return nil, nil
	}

	slots := make([]*solana.ParsedTransaction, len(sigs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, sig := range sigs {
		g.Go(func() error {
			// queued fetches must not spend shared rate limit after cancellation
			if gctx.Err() != nil {
				return nil
			}
			tx, err := r.client.GetParsedTransaction(gctx, sig.Signature)
			if err != nil {
				r.logger.Debug("drop unresolved transaction",
					zap.String("signature", sig.Signature), zap.Error(err))
				return nil
			}
			if tx == nil {
				r.logger.Debug("drop missing transaction", zap.String("signature", sig.Signature))
				return nil
			}
			slots[i] = tx
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txs := make([]*solana.ParsedTransaction, 0, len(slots))
	for _, tx := range slots {
		if tx != nil {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}
