package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCandidate EventType = "candidate"
	EventSkip      EventType = "skip"
	EventAttempt   EventType = "attempt"
	EventResult    EventType = "result"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CandidateEvent describes a candidate as it leaves the enumerator.
type CandidateEvent struct {
	EventBase
	Index  uint64 `json:"index"`
	Total  uint64 `json:"total"`
	Phrase string `json:"phrase"`
	// MatchedKey is the exclusion entry that caused a skip (Skip events only).
	MatchedKey string `json:"matched_key,omitempty"`
}

// AttemptEvent describes one engine invocation.
type AttemptEvent struct {
	EventBase
	Index    uint64        `json:"index"`
	Phrase   string        `json:"phrase"`
	Result   Result        `json:"result,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for hunt observability.
type LifecycleHooks struct {
	OnCandidate func(context.Context, *CandidateEvent)
	OnSkip      func(context.Context, *CandidateEvent)
	OnAttempt   func(context.Context, *AttemptEvent)
	OnResult    func(context.Context, *AttemptEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnCandidate: chainCandidate(h.OnCandidate, other.OnCandidate),
		OnSkip:      chainCandidate(h.OnSkip, other.OnSkip),
		OnAttempt:   chainAttempt(h.OnAttempt, other.OnAttempt),
		OnResult:    chainAttempt(h.OnResult, other.OnResult),
	}
}

func chainCandidate(a, b func(context.Context, *CandidateEvent)) func(context.Context, *CandidateEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *CandidateEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainAttempt(a, b func(context.Context, *AttemptEvent)) func(context.Context, *AttemptEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *AttemptEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
