package solana

import (
	"github.com/shopspring/decimal"
)

// SignatureInfo from getSignaturesForAddress.
type SignatureInfo struct {
	Signature string
	Slot      int64
	BlockTime *int64
	Err       interface{}
}

// Succeeded reports whether the transaction executed without error.
func (s SignatureInfo) Succeeded() bool {
	return s.Err == nil
}

// SignaturesOpts defines optional pagination parameters for getSignaturesForAddress.
type SignaturesOpts struct {
	Before string // Start searching backwards from this signature
	Until  string // Search until this signature
	Limit  int    // Maximum number of signatures to return
}

// ParsedTransaction is the jsonParsed form of a confirmed transaction.
type ParsedTransaction struct {
	Slot              int64
	BlockTime         *int64
	Signatures        []string // primary signature first
	AccountKeys       []AccountKey
	Instructions      []Instruction
	PreTokenBalances  []TokenBalance
	PostTokenBalances []TokenBalance
	Err               interface{}
}

// PrimarySignature returns the first signature or "" when there is none.
func (t *ParsedTransaction) PrimarySignature() string {
	if len(t.Signatures) == 0 {
		return ""
	}
	return t.Signatures[0]
}

// FeePayer returns the first account key or "" when there is none.
func (t *ParsedTransaction) FeePayer() string {
	if len(t.AccountKeys) == 0 {
		return ""
	}
	return t.AccountKeys[0].Address
}

// AccountKey is one entry of the message account list.
type AccountKey struct {
	Address  string
	Signer   bool
	Writable bool
}

// Instruction is a top-level instruction. Accounts is empty for
// instructions the node decoded into a parsed form.
type Instruction struct {
	ProgramID string
	Accounts  []string
}

// TokenBalance is an SPL token balance snapshot taken before or after execution.
// Amount is the raw integer amount as reported by the node; empty when unknown.
type TokenBalance struct {
	AccountIndex int
	Mint         string
	Owner        *string
	Amount       string
	Decimals     uint8
}

// UIAmount returns the balance scaled by the mint decimals.
// The second value is false when the raw amount is absent or malformed.
func (b TokenBalance) UIAmount() (decimal.Decimal, bool) {
	if b.Amount == "" {
		return decimal.Zero, false
	}
	raw, err := decimal.NewFromString(b.Amount)
	if err != nil {
		return decimal.Zero, false
	}
	return raw.Shift(-int32(b.Decimals)), true
}
