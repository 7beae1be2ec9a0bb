package discovery

import (
	"context"

	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/solana"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerClient is the subset of the Solana RPC used by discovery.
	LedgerClient interface {
		GetSignaturesForAddress(ctx context.Context, address string, opts *solana.SignaturesOpts) ([]solana.SignatureInfo, error)
		GetParsedTransaction(ctx context.Context, signature string) (*solana.ParsedTransaction, error)
	}

	// BuySink receives every discovered buy. Sinks are write-only.
	BuySink interface {
		Name() string
		Record(ctx context.Context, token string, buy *domain.DiscoveredBuy) error
	}

	// LastBuyCache holds the most recent discovered buy per token.
	LastBuyCache interface {
		Get(token string) (*domain.DiscoveredBuy, bool)
		Put(token string, buy *domain.DiscoveredBuy)
		Len() int
	}
)
