package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/tyler-smith/go-bip39"

	"github.com/aretw0/wallethunt/pkg/domain"
)

// Issue is a problem spotted in a hunt file that the engine would likely trip over.
type Issue struct {
	// Position is the 1-based mnemonic position, or 0 for the address.
	Position int
	Word     string
	Message  string
}

func (i Issue) String() string {
	if i.Position == 0 {
		return fmt.Sprintf("address: %s", i.Message)
	}
	return fmt.Sprintf("position %d: %q %s", i.Position, i.Word, i.Message)
}

// Lint checks the file against the BIP39 English word list and, for known
// wallet types, the address format. It does not validate checksums.
func Lint(hf *File, walletType string) []Issue {
	var issues []Issue

	if msg := checkAddress(hf.Address, walletType); msg != "" {
		issues = append(issues, Issue{Message: msg})
	}

	for p, words := range hf.Positions {
		for _, w := range words {
			if _, ok := bip39.GetWordIndex(w); !ok {
				issues = append(issues, Issue{Position: p + 1, Word: w, Message: "is not in the BIP39 English word list"})
			}
		}
	}
	return issues
}

// LintError folds issues into a single error wrapping domain.ErrMalformedInput.
// It returns nil when there are no issues.
func LintError(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	errs := make([]error, 0, len(issues))
	for _, i := range issues {
		errs = append(errs, errors.New(i.String()))
	}
	return fmt.Errorf("%w: %w", domain.ErrMalformedInput, errors.Join(errs...))
}

func checkAddress(address, walletType string) string {
	switch strings.ToLower(walletType) {
	case "ethereum":
		if !common.IsHexAddress(address) {
			return fmt.Sprintf("%q is not a hex ethereum address", address)
		}
		// Hex() always renders a lower-case "0x" prefix.
		hex := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
		if hasMixedCase(hex) && common.HexToAddress(hex).Hex() != "0x"+hex {
			return fmt.Sprintf("%q has an invalid EIP-55 checksum", address)
		}
	case "bitcoin":
		if _, err := btcutil.DecodeAddress(address, &chaincfg.MainNetParams); err != nil {
			return fmt.Sprintf("%q is not a mainnet bitcoin address: %v", address, err)
		}
	}
	return ""
}

func hasMixedCase(hex string) bool {
	return strings.ToLower(hex) != hex && strings.ToUpper(hex) != hex
}
