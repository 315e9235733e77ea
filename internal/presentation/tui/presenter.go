package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/wallethunt/pkg/domain"
	"github.com/aretw0/wallethunt/pkg/input"
)

// Presenter writes the human-readable hunt report.
type Presenter struct {
	out   *termenv.Output
	quiet bool
}

// NewPresenter creates a presenter writing to w. Colors are only used when w
// is a terminal. In quiet mode only the final result is printed.
func NewPresenter(w io.Writer, quiet bool) *Presenter {
	profile := termenv.Ascii
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		profile = termenv.EnvColorProfile()
	}
	return &Presenter{
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		quiet: quiet,
	}
}

// printSystemMessage prints a standardized system message.
func (p *Presenter) printSystemMessage(format string, args ...any) {
	fmt.Fprintf(p.out, ">>> %s\n", fmt.Sprintf(format, args...))
}

// Banner announces the engine version.
func (p *Presenter) Banner(engineVersion string) {
	if p.quiet {
		return
	}
	printLogo(p.out)
	fmt.Fprintln(p.out)
	p.printSystemMessage("Starting %s", p.out.String(engineVersion).Bold())
}

// Start summarizes the search before the first candidate.
func (p *Presenter) Start(address string, total uint64, excluded int) {
	if p.quiet {
		return
	}
	p.printSystemMessage("Target %s: %d candidates, %d exclusions on record", address, total, excluded)
}

// Warn reports a lint issue.
func (p *Presenter) Warn(issue input.Issue) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.out.String("warning: "+issue.String()).Foreground(p.out.Color("3")))
}

// Attempt prints the progress line for a dispatched candidate.
func (p *Presenter) Attempt(index, total uint64, phrase string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s %s\n", p.out.String(fmt.Sprintf("[%d/%d]", index, total)).Faint(), phrase)
}

// Found prints the recovered mnemonic.
func (p *Presenter) Found(res domain.Result) {
	fmt.Fprintln(p.out, p.out.String("Found match: "+res.Mnemonic).Bold().Foreground(p.out.Color("2")))
	if res.PathCoin != "" {
		fmt.Fprintf(p.out, "Derivation path: %s\n", res.PathCoin)
	}
}

// Recorded reports a match found by an earlier run.
func (p *Presenter) Recorded(path string, res domain.Result) {
	p.printSystemMessage("Match already recorded in %s (use --force to search again)", path)
	p.Found(res)
}

// Exhausted reports that no candidate matched.
func (p *Presenter) Exhausted(out domain.Outcome) {
	fmt.Fprintln(p.out, p.out.String("No solutions found").Foreground(p.out.Color("1")))
	if !p.quiet {
		p.printSystemMessage("%d attempted, %d skipped as already tried", out.Attempted, out.Skipped)
	}
}

// Interrupted reports a cancelled run.
func (p *Presenter) Interrupted(sig os.Signal, out domain.Outcome) {
	if p.quiet {
		return
	}
	verb := "Interrupted"
	if sig != nil && sig != os.Interrupt {
		verb = "Terminated"
	}
	fmt.Fprintln(p.out)
	p.printSystemMessage("%s after %d attempts. Progress is kept in the exclusion set.", verb, out.Attempted)
}

// Hooks returns lifecycle hooks that print progress lines.
func (p *Presenter) Hooks(total uint64) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAttempt: func(ctx context.Context, e *domain.AttemptEvent) {
			p.Attempt(e.Index, total, e.Phrase)
		},
	}
}
