package hunt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/wallethunt/pkg/domain"
	"github.com/aretw0/wallethunt/pkg/exclusion"
	"github.com/aretw0/wallethunt/pkg/ports"
	"github.com/aretw0/wallethunt/pkg/space"
)

// Params holds the fixed engine parameters shared by every candidate.
type Params struct {
	Target    domain.Target
	AddrLimit int
	Typos     int
}

func (p Params) request(phrase string) domain.Request {
	return domain.Request{
		WalletType: p.Target.WalletType,
		Address:    p.Target.Address,
		AddrLimit:  p.AddrLimit,
		Typos:      p.Typos,
		Mnemonic:   phrase,
	}
}

// Hunter runs candidates through the recovery engine sequentially.
type Hunter struct {
	engine  ports.RecoveryEngine
	filter  *exclusion.Filter
	matches ports.MatchSink
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// New creates a Hunter.
func New(engine ports.RecoveryEngine, filter *exclusion.Filter, opts ...Option) *Hunter {
	h := &Hunter{
		engine: engine,
		filter: filter,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run searches s until the engine reports a match or every candidate has
// been tried or skipped.
//
// Engine and store errors end the run immediately and are returned along with
// the outcome so far. Cancelling ctx stops the run before the next dispatch.
func (h *Hunter) Run(ctx context.Context, s *space.Space, p Params) (domain.Outcome, error) {
	out := domain.Outcome{
		Status: domain.StatusSearching,
		Total:  s.Total(),
	}

	for idx, phrase := range s.All() {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		ev := &domain.CandidateEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCandidate},
			Index:     idx,
			Total:     out.Total,
			Phrase:    phrase,
		}
		if h.hooks.OnCandidate != nil {
			h.hooks.OnCandidate(ctx, ev)
		}

		excluded, key, err := h.filter.Excluded(ctx, phrase)
		if err != nil {
			return out, err
		}
		if excluded {
			out.Skipped++
			skip := *ev
			skip.Type = domain.EventSkip
			skip.MatchedKey = key
			if h.hooks.OnSkip != nil {
				h.hooks.OnSkip(ctx, &skip)
			}
			h.logger.Debug("candidate excluded", "index", idx, "matched", key)
			continue
		}

		res, err := h.attempt(ctx, idx, phrase, p)
		out.Attempted++
		if err != nil {
			return out, fmt.Errorf("candidate %d/%d: %w", idx, out.Total, err)
		}

		if res.Found() {
			out.Status = domain.StatusFound
			out.Result = res
			h.logger.Info("match found", "index", idx, "path_coin", res.PathCoin)
			if h.matches != nil {
				if err := h.matches.WriteMatch(ctx, p.Target.Address, res); err != nil {
					return out, fmt.Errorf("failed to persist match: %w", err)
				}
			}
			return out, nil
		}

		if err := h.filter.Record(ctx, phrase); err != nil {
			return out, err
		}
	}

	out.Status = domain.StatusExhausted
	return out, nil
}

func (h *Hunter) attempt(ctx context.Context, idx uint64, phrase string, p Params) (domain.Result, error) {
	ev := &domain.AttemptEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventAttempt},
		Index:     idx,
		Phrase:    phrase,
	}
	if h.hooks.OnAttempt != nil {
		h.hooks.OnAttempt(ctx, ev)
	}

	start := time.Now()
	res, err := h.engine.Recover(ctx, p.request(phrase))

	done := *ev
	done.Type = domain.EventResult
	done.Timestamp = time.Now()
	done.Duration = time.Since(start)
	done.Result = res
	done.Err = err
	if h.hooks.OnResult != nil {
		h.hooks.OnResult(ctx, &done)
	}
	h.logger.Debug("engine returned", "index", idx, "found", res.Found(), "duration", done.Duration, "err", err)

	return res, err
}
