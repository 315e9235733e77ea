package domain

import "strings"

// DefaultWalletType is the wallet type used when none is configured.
const DefaultWalletType = "ethereum"

// Target identifies what a hunt is looking for.
type Target struct {
	Address    string `json:"address" yaml:"address"`
	WalletType string `json:"wallet_type" yaml:"wallet_type"`
}

// Request is the fixed parameter set handed to the recovery engine for a single candidate.
type Request struct {
	WalletType string `json:"wallet_type"`
	Address    string `json:"address"`
	AddrLimit  int    `json:"addr_limit"`
	Typos      int    `json:"typos"`
	Mnemonic   string `json:"mnemonic"`
}

// Result is what the engine reports for a candidate.
// The zero value means "no match".
type Result struct {
	Mnemonic string `json:"mnemonic,omitempty"`
	PathCoin string `json:"path_coin,omitempty"`
}

// Found reports whether the engine recovered a mnemonic.
func (r Result) Found() bool {
	return strings.TrimSpace(r.Mnemonic) != ""
}
