package liquidity

// TokenPairsResponse is the body of GET /latest/dex/tokens/{address}.
// Pairs is null when the aggregator knows no pair for the token.
type TokenPairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Pair contains the fields of a trading pair used by the service.
type Pair struct {
	ChainID       string         `json:"chainId"`
	DexID         string         `json:"dexId"`
	URL           string         `json:"url"`
	PairAddress   string         `json:"pairAddress"`
	BaseToken     PairToken      `json:"baseToken"`
	QuoteToken    PairToken      `json:"quoteToken"`
	PriceNative   string         `json:"priceNative"`
	PriceUsd      string         `json:"priceUsd"`
	Liquidity     *PairLiquidity `json:"liquidity"` // absent for some pools
	Fdv           float64        `json:"fdv"`
	MarketCap     float64        `json:"marketCap"`
	PairCreatedAt int64          `json:"pairCreatedAt"`
}

// PairToken represents a token in a trading pair.
type PairToken struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// PairLiquidity represents the liquidity information for a pair.
type PairLiquidity struct {
	Usd   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

// Quote is the liquidity answer for a token.
type Quote struct {
	Token        string
	LiquidityUSD float64
	PairAddress  string
	DexID        string
	PairCount    int
}
