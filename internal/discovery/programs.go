package discovery

// Known DEX program IDs.
const (
	// RaydiumAMMV4 is the Raydium AMM v4 program ID.
	RaydiumAMMV4 = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"
	// RaydiumCLMM is the Raydium concentrated liquidity program ID.
	RaydiumCLMM = "CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK"
	// RaydiumCPMM is the Raydium constant product program ID.
	RaydiumCPMM = "CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C"
	// PumpFun is the pump.fun program ID.
	PumpFun = "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"
	// JupiterV6 is the Jupiter aggregator v6 program ID.
	JupiterV6 = "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"
	// OrcaWhirlpool is the Orca Whirlpools program ID.
	OrcaWhirlpool = "whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc"
	// MeteoraDLMM is the Meteora DLMM program ID.
	MeteoraDLMM = "LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo"
)

var programNames = map[string]string{
	RaydiumAMMV4:  "Raydium AMM v4",
	RaydiumCLMM:   "Raydium CLMM",
	RaydiumCPMM:   "Raydium CPMM",
	PumpFun:       "pump.fun",
	JupiterV6:     "Jupiter v6",
	OrcaWhirlpool: "Orca Whirlpool",
	MeteoraDLMM:   "Meteora DLMM",
}

// ProgramName returns the label of a known DEX program, or nil.
func ProgramName(programID string) *string {
	name, ok := programNames[programID]
	if !ok {
		return nil
	}
	return &name
}
