package domain

// LiquiditySnapshot is one observation of a token's USD liquidity.
// Corresponds to liquidity_snapshots table in ClickHouse.
type LiquiditySnapshot struct {
	Token        string  // Token mint address
	LiquidityUSD float64 // liquidity of the first reported pair, 0 when absent
	PairAddress  string  // pair the value was read from
	DexID        string  // DEX identifier reported by the aggregator
	PairCount    int     // number of pairs returned for the token
	ObservedAt   int64   // Unix timestamp in milliseconds
}

// TokenReport is the combined answer for a token query.
type TokenReport struct {
	Liquidity   float64        `json:"liquidity"`
	LatestBuyTx *DiscoveredBuy `json:"latestBuyTx"`
}
