package discovery

import (
	"github.com/shopspring/decimal"

	"solana-buy-tracker/internal/solana"
)

// ClassifiedResult is the outcome of classifying one transaction.
// Pre and Post are set only when IsBuy is true.
type ClassifiedResult struct {
	IsBuy bool
	Pre   solana.TokenBalance
	Post  solana.TokenBalance

	bought decimal.Decimal
}

// Bought returns post minus pre for a buy, zero otherwise.
func (r ClassifiedResult) Bought() decimal.Decimal {
	return r.bought
}

// Amount formats the bought quantity at the mint's decimal precision.
func (r ClassifiedResult) Amount() string {
	return r.bought.StringFixed(int32(r.Post.Decimals))
}

var notBuy = ClassifiedResult{}

// Classify decides whether tx is a buy of token.
//
// A buy requires the first pre and post balances of token to be non-zero,
// the post balance to exceed the pre balance, and at least one other mint
// to change balance in the same transaction. Mints, airdrops and plain
// transfers fail the last rule.
func Classify(tx *solana.ParsedTransaction, token string) ClassifiedResult {
	if tx == nil || len(tx.PreTokenBalances) == 0 || len(tx.PostTokenBalances) == 0 {
		return notBuy
	}

	pre, ok := firstByMint(tx.PreTokenBalances, token)
	if !ok {
		return notBuy
	}
	post, ok := firstByMint(tx.PostTokenBalances, token)
	if !ok {
		return notBuy
	}

	preAmount, ok := nonZeroAmount(pre)
	if !ok {
		return notBuy
	}
	postAmount, ok := nonZeroAmount(post)
	if !ok {
		return notBuy
	}

	if !postAmount.GreaterThan(preAmount) {
		return notBuy
	}

	if !otherMintChanged(tx, token) {
		return notBuy
	}

	return ClassifiedResult{
		IsBuy:  true,
		Pre:    pre,
		Post:   post,
		bought: postAmount.Sub(preAmount),
	}
}

// otherMintChanged reports whether some pre balance of a mint other than
// token has a post balance of the same mint with a different amount.
func otherMintChanged(tx *solana.ParsedTransaction, token string) bool {
	for _, pre := range tx.PreTokenBalances {
		if pre.Mint == token {
			continue
		}
		post, ok := firstByMint(tx.PostTokenBalances, pre.Mint)
		if !ok {
			continue
		}
		if !amountOrZero(pre).Equal(amountOrZero(post)) {
			return true
		}
	}
	return false
}

func firstByMint(balances []solana.TokenBalance, mint string) (solana.TokenBalance, bool) {
	for _, b := range balances {
		if b.Mint == mint {
			return b, true
		}
	}
	return solana.TokenBalance{}, false
}

func nonZeroAmount(b solana.TokenBalance) (decimal.Decimal, bool) {
	amount, ok := b.UIAmount()
	if !ok || amount.IsZero() {
		return decimal.Zero, false
	}
	return amount, true
}

func amountOrZero(b solana.TokenBalance) decimal.Decimal {
	amount, _ := b.UIAmount()
	return amount
}
