package tui

import (
	"bytes"
	"context"
	"os"
	"syscall"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/wallethunt/pkg/domain"
	"github.com/aretw0/wallethunt/pkg/input"
)

func TestPresenter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Banner("btcrecover 1.13.0")
	p.Warn(input.Issue{Position: 2, Word: "chese", Message: "is not in the BIP39 English word list"})
	p.Hooks(6).OnAttempt(context.Background(), &domain.AttemptEvent{Index: 4, Phrase: "argue cheese famous"})
	p.Found(domain.Result{Mnemonic: "argue cheese famous", PathCoin: "m/44'/60'/0'/0/0"})

	assert.Equal(t, ""+
		"\n>>> Starting btcrecover 1.13.0\n"+
		"warning: position 2: \"chese\" is not in the BIP39 English word list\n"+
		"\n[4/6] argue cheese famous\n"+
		"Found match: argue cheese famous\n"+
		"Derivation path: m/44'/60'/0'/0/0\n", buf.String())
}

func TestPresenter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, true)

	p.Banner("btcrecover")
	p.Start("0xabc", 10, 3)
	p.Attempt(1, 10, "apology cheese")
	p.Interrupted(os.Interrupt, domain.Outcome{})
	p.Exhausted(domain.Outcome{Attempted: 7, Skipped: 3})

	assert.Equal(t, "No solutions found\n", buf.String())
}

func TestPresenter_Interrupted(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Interrupted(syscall.SIGTERM, domain.Outcome{Attempted: 2})
	assert.Contains(t, buf.String(), ">>> Terminated after 2 attempts.")

	buf.Reset()
	p.Interrupted(os.Interrupt, domain.Outcome{Attempted: 1})
	assert.Contains(t, buf.String(), ">>> Interrupted after 1 attempts.")
}

func TestPrintLogo(t *testing.T) {
	var buf bytes.Buffer
	printLogo(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)))
	assert.Empty(t, buf.String())

	printLogo(termenv.NewOutput(&buf, termenv.WithProfile(termenv.TrueColor)))
	assert.Contains(t, buf.String(), "\x1b[38;2;")
}
