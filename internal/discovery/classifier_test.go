package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-buy-tracker/internal/solana"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		tx         *solana.ParsedTransaction
		wantBuy    bool
		wantAmount string
	}{
		{
			name:       "swap paid in another mint is a buy",
			tx:         swapTx(10, "sig", "1000", "1550", "9000", "8450", 2),
			wantBuy:    true,
			wantAmount: "5.50",
		},
		{
			name: "nil transaction",
			tx:   nil,
		},
		{
			name: "empty pre balances",
			tx: &solana.ParsedTransaction{
				PostTokenBalances: []solana.TokenBalance{balance(1, testToken, "Buyer", "100", 0)},
			},
		},
		{
			name: "empty post balances",
			tx: &solana.ParsedTransaction{
				PreTokenBalances: []solana.TokenBalance{balance(1, testToken, "Buyer", "100", 0)},
			},
		},
		{
			name: "token absent from pre balances",
			tx: &solana.ParsedTransaction{
				PreTokenBalances: []solana.TokenBalance{balance(1, testWSOL, "Buyer", "100", 9)},
				PostTokenBalances: []solana.TokenBalance{
					balance(1, testWSOL, "Buyer", "50", 9),
					balance(2, testToken, "Buyer", "100", 0),
				},
			},
		},
		{
			name: "zero pre amount",
			tx:   swapTx(10, "sig", "0", "1550", "9000", "7450", 2),
		},
		{
			name: "absent post amount",
			tx:   swapTx(10, "sig", "1000", "", "9000", "7450", 2),
		},
		{
			name: "balance unchanged",
			tx:   swapTx(10, "sig", "1000", "1000", "9000", "9000", 2),
		},
		{
			name: "balance decreased",
			tx:   swapTx(10, "sig", "1550", "1000", "8450", "9000", 2),
		},
		{
			name: "transfer without another mint changing",
			tx:   transferTx(10, "sig"),
		},
		{
			name: "other mint has no post entry",
			tx: &solana.ParsedTransaction{
				PreTokenBalances: []solana.TokenBalance{
					balance(1, testToken, "Buyer", "100", 0),
					balance(2, testWSOL, "Buyer", "100", 9),
				},
				PostTokenBalances: []solana.TokenBalance{
					balance(1, testToken, "Buyer", "200", 0),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.tx, testToken)
			require.Equal(t, tt.wantBuy, got.IsBuy)
			if tt.wantBuy {
				assert.Equal(t, tt.wantAmount, got.Amount())
			}
		})
	}
}

func TestClassify_UsesFirstEntryOfToken(t *testing.T) {
	tx := swapTx(10, "sig", "1000", "1550", "9000", "8450", 2)

	res := Classify(tx, testToken)
	require.True(t, res.IsBuy)
	require.NotNil(t, res.Post.Owner)
	assert.Equal(t, "Buyer", *res.Post.Owner)
	assert.Equal(t, 1, res.Pre.AccountIndex)
}

func TestClassify_PreservesMintPrecision(t *testing.T) {
	tx := swapTx(99, "sig", "10000", "82500", "500000", "427500", 4)

	res := Classify(tx, testToken)
	require.True(t, res.IsBuy)
	assert.Equal(t, "7.2500", res.Amount())
	assert.Equal(t, "7.25", res.Bought().String())
}

func TestClassify_OtherMintChangeTreatsAbsentAmountAsZero(t *testing.T) {
	tx := &solana.ParsedTransaction{
		PreTokenBalances: []solana.TokenBalance{
			balance(1, testToken, "Buyer", "100", 0),
			balance(2, testWSOL, "Buyer", "", 9),
		},
		PostTokenBalances: []solana.TokenBalance{
			balance(1, testToken, "Buyer", "200", 0),
			balance(2, testWSOL, "Buyer", "0", 9),
		},
	}

	assert.False(t, Classify(tx, testToken).IsBuy)
}
