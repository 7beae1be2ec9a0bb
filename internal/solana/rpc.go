package solana

import "context"

// LedgerClient defines the read-only Solana RPC surface used by buy discovery.
type LedgerClient interface {
	// GetSignaturesForAddress retrieves signatures for an address, most recent first.
	GetSignaturesForAddress(ctx context.Context, address string, opts *SignaturesOpts) ([]SignatureInfo, error)

	// GetParsedTransaction retrieves a jsonParsed transaction by signature.
	// Returns nil, nil when the node no longer has the transaction.
	GetParsedTransaction(ctx context.Context, signature string) (*ParsedTransaction, error)
}
