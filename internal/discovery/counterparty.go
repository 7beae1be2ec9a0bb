package discovery

import (
	"solana-buy-tracker/internal/solana"
)

// ResolveSender returns the owner whose balance of token decreased in tx,
// never recipientOwner itself. Post balances are walked in ledger order and
// the first match wins. Returns nil when the funding leg used another asset.
func ResolveSender(tx *solana.ParsedTransaction, token, recipientOwner string) *string {
	if tx == nil {
		return nil
	}

	for _, post := range tx.PostTokenBalances {
		if post.Mint != token || post.Owner == nil || *post.Owner == recipientOwner {
			continue
		}
		postAmount, ok := nonZeroAmount(post)
		if !ok {
			continue
		}

		pre, ok := preBalanceOf(tx.PreTokenBalances, token, *post.Owner)
		if !ok {
			continue
		}
		preAmount, ok := nonZeroAmount(pre)
		if !ok {
			continue
		}

		if postAmount.LessThan(preAmount) {
			owner := *post.Owner
			return &owner
		}
	}
	return nil
}

// LikelyProgram returns the program of the first instruction that lists
// accounts. Parsed system and token instructions carry none.
func LikelyProgram(tx *solana.ParsedTransaction) *string {
	if tx == nil {
		return nil
	}
	for _, ix := range tx.Instructions {
		if len(ix.Accounts) > 0 && ix.ProgramID != "" {
			program := ix.ProgramID
			return &program
		}
	}
	return nil
}

func preBalanceOf(balances []solana.TokenBalance, mint, owner string) (solana.TokenBalance, bool) {
	for _, b := range balances {
		if b.Mint == mint && b.Owner != nil && *b.Owner == owner {
			return b, true
		}
	}
	return solana.TokenBalance{}, false
}
