package input_test

import (
	"testing"

	"github.com/aretw0/wallethunt/pkg/domain"
	"github.com/aretw0/wallethunt/pkg/input"
	"github.com/stretchr/testify/assert"
)

func TestLint_Words(t *testing.T) {
	hf := &input.File{
		Address:   "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		Positions: [][]string{{"apology", "bitcoinz"}, {"cheese"}},
	}

	issues := input.Lint(hf, "ethereum")
	if assert.Len(t, issues, 1) {
		assert.Equal(t, 1, issues[0].Position)
		assert.Equal(t, "bitcoinz", issues[0].Word)
		assert.Contains(t, issues[0].String(), "BIP39")
	}

	err := input.LintError(issues)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
	assert.ErrorContains(t, err, "bitcoinz")
	assert.NoError(t, input.LintError(nil))
}

func TestLint_Address(t *testing.T) {
	words := [][]string{{"apology"}}

	tests := []struct {
		name       string
		walletType string
		address    string
		wantIssue  bool
	}{
		{"Ethereum Lowercase", "ethereum", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", false},
		{"Ethereum Checksummed", "ethereum", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"Ethereum Bad Checksum", "ethereum", "0x5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed", true},
		{"Ethereum Upper Prefix Checksummed", "ethereum", "0X5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"Ethereum Upper Prefix Bad Checksum", "ethereum", "0X5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed", true},
		{"Ethereum No Prefix Checksummed", "ethereum", "5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"Ethereum Not Hex", "ethereum", "0xnothex", true},
		{"Bitcoin Valid", "bitcoin", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", false},
		{"Bitcoin Bad Checksum", "bitcoin", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb", true},
		{"Unknown Wallet Type Not Checked", "electrum2", "anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := input.Lint(&input.File{Address: tt.address, Positions: words}, tt.walletType)
			if tt.wantIssue {
				if assert.Len(t, issues, 1) {
					assert.Equal(t, 0, issues[0].Position)
					assert.Contains(t, issues[0].String(), "address:")
				}
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}
