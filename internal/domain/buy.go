package domain

// DiscoveredBuy is the most recent buy transaction found for a token.
// Nullable fields are heuristic and encode as JSON null when unknown.
type DiscoveredBuy struct {
	Slot      int64   `json:"slot"`
	Hash      string  `json:"hash"`      // primary transaction signature
	Sender    *string `json:"sender"`    // owner whose balance of the mint decreased
	Recipient string  `json:"recipient"` // owner of the post balance that increased
	Amount    string  `json:"amount"`    // bought quantity at mint precision
	Dapp      *string `json:"dapp"`      // likely program address
	DappName  *string `json:"dappName"`  // label for a known DEX program
	FeePayer  string  `json:"feePayer"`  // first account key of the message
}

// Clone returns a deep copy so cached values cannot be mutated by callers.
func (b *DiscoveredBuy) Clone() *DiscoveredBuy {
	if b == nil {
		return nil
	}
	c := *b
	c.Sender = cloneString(b.Sender)
	c.Dapp = cloneString(b.Dapp)
	c.DappName = cloneString(b.DappName)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// RecordedBuy is a journaled DiscoveredBuy.
// Corresponds to discovered_buys table in PostgreSQL.
type RecordedBuy struct {
	ID         int64  // BIGSERIAL primary key
	Token      string // Token mint address
	Buy        DiscoveredBuy
	RecordedAt int64 // record creation timestamp (ms)
}
