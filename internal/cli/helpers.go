package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/wallethunt/internal/config"
	"github.com/aretw0/wallethunt/internal/logging"
	"github.com/aretw0/wallethunt/pkg/domain"
)

// Process exit codes.
const (
	ExitFound       = 0
	ExitExhausted   = 1
	ExitError       = 2
	ExitInterrupted = 130
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// NewLogger configures the application logger. Logs always go to w (stderr
// in production) so they never interleave with the progress lines on stdout.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	if cfg.Format == "json" {
		return logging.NewJSON(w, level)
	}
	return logging.NewText(w, level)
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

// ExitCode maps the result of a hunt to the process exit status.
func ExitCode(out domain.Outcome, err error) int {
	switch {
	case err != nil && isInterrupted(err):
		return ExitInterrupted
	case err != nil:
		return ExitError
	case out.Status == domain.StatusFound:
		return ExitFound
	default:
		return ExitExhausted
	}
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSkip: func(ctx context.Context, e *domain.CandidateEvent) {
			logger.Debug("Skip Candidate", "index", e.Index, "matched", e.MatchedKey)
		},
		OnResult: func(ctx context.Context, e *domain.AttemptEvent) {
			if e.Err != nil {
				logger.Debug("Engine Return (Error)", "index", e.Index, "duration", e.Duration, "err", e.Err)
				return
			}
			logger.Debug("Engine Return", "index", e.Index, "duration", e.Duration, "found", e.Result.Found())
		},
	}
}
