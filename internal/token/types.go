package token

import (
	"context"

	"solana-buy-tracker/internal/domain"
	"solana-buy-tracker/internal/liquidity"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LiquidityLookup resolves the USD liquidity of a token.
	LiquidityLookup interface {
		Lookup(ctx context.Context, token string) (*liquidity.Quote, error)
	}

	// BuyDiscoverer finds the most recent buy of a token.
	BuyDiscoverer interface {
		Discover(ctx context.Context, token string) (*domain.DiscoveredBuy, error)
	}

	// TokenWatcher is told about every token served so it can keep the
	// last known buy fresh in the background.
	TokenWatcher interface {
		Watch(token string)
	}
)
