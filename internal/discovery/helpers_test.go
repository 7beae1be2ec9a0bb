package discovery

import (
	"solana-buy-tracker/internal/solana"
)

const (
	testToken = "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"
	testWSOL  = "So11111111111111111111111111111111111111112"
)

func strPtr(s string) *string {
	return &s
}

func balance(index int, mint, owner, amount string, decimals uint8) solana.TokenBalance {
	b := solana.TokenBalance{
		AccountIndex: index,
		Mint:         mint,
		Amount:       amount,
		Decimals:     decimals,
	}
	if owner != "" {
		b.Owner = strPtr(owner)
	}
	return b
}

// swapTx builds a buy of testToken paid in wSOL: the buyer's token balance
// goes from tokenPre to tokenPost, the pool's goes the other way.
func swapTx(slot int64, sig, tokenPre, tokenPost, poolPre, poolPost string, decimals uint8) *solana.ParsedTransaction {
	return &solana.ParsedTransaction{
		Slot:       slot,
		Signatures: []string{sig},
		AccountKeys: []solana.AccountKey{
			{Address: "FeePayer1", Signer: true, Writable: true},
		},
		Instructions: []solana.Instruction{
			{ProgramID: "ComputeBudget111111111111111111111111111111"},
			{ProgramID: RaydiumAMMV4, Accounts: []string{"pool", "vaultA", "vaultB"}},
		},
		PreTokenBalances: []solana.TokenBalance{
			balance(1, testToken, "Buyer", tokenPre, decimals),
			balance(2, testToken, "Pool", poolPre, decimals),
			balance(3, testWSOL, "Buyer", "5000000000", 9),
		},
		PostTokenBalances: []solana.TokenBalance{
			balance(1, testToken, "Buyer", tokenPost, decimals),
			balance(2, testToken, "Pool", poolPost, decimals),
			balance(3, testWSOL, "Buyer", "4000000000", 9),
		},
	}
}

// transferTx moves testToken without touching any other mint.
func transferTx(slot int64, sig string) *solana.ParsedTransaction {
	return &solana.ParsedTransaction{
		Slot:       slot,
		Signatures: []string{sig},
		AccountKeys: []solana.AccountKey{
			{Address: "Sender", Signer: true, Writable: true},
		},
		Instructions: []solana.Instruction{
			{ProgramID: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"},
		},
		PreTokenBalances: []solana.TokenBalance{
			balance(1, testToken, "Receiver", "10000", 4),
			balance(2, testToken, "Sender", "90000", 4),
		},
		PostTokenBalances: []solana.TokenBalance{
			balance(1, testToken, "Receiver", "20000", 4),
			balance(2, testToken, "Sender", "80000", 4),
		},
	}
}
