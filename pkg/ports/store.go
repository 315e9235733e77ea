package ports

import (
	"context"

	"github.com/aretw0/wallethunt/pkg/domain"
)

// ExclusionStore defines the persistence of already-tried candidate phrases.
// Implementations are append-only: a phrase, once added, is never removed.
type ExclusionStore interface {
	// Contains reports whether the exact phrase has been recorded.
	Contains(ctx context.Context, phrase string) (bool, error)

	// Add records a phrase. Adding a phrase twice is not an error.
	Add(ctx context.Context, phrase string) error

	// Len returns the number of recorded phrases.
	Len(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}

// MatchSink records a successful recovery.
type MatchSink interface {
	// WriteMatch persists the result for the given target address.
	WriteMatch(ctx context.Context, address string, result domain.Result) error

	// ReadMatch returns a previously persisted result.
	// The boolean is false when no match has been recorded.
	ReadMatch(ctx context.Context, address string) (domain.Result, bool, error)
}
