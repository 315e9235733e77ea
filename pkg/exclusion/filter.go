// Package exclusion decides which candidates can be skipped because they, or
// a shorter phrase they extend, already failed.
package exclusion

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/wallethunt/pkg/ports"
)

// MaxTruncation is how many trailing words may be dropped when looking for an
// already-failed ancestor of a candidate.
const MaxTruncation = 2

// Filter wraps an ExclusionStore with the ancestor short-circuit.
type Filter struct {
	store ports.ExclusionStore
}

// New creates a Filter backed by store.
func New(store ports.ExclusionStore) *Filter {
	return &Filter{store: store}
}

// Keys returns the lookup keys for phrase: the phrase itself followed by its
// one- and two-word right truncations. Truncations that would leave no words
// are omitted.
func Keys(phrase string) []string {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return nil
	}
	keys := []string{strings.Join(words, " ")}
	for drop := 1; drop <= MaxTruncation && drop < len(words); drop++ {
		keys = append(keys, strings.Join(words[:len(words)-drop], " "))
	}
	return keys
}

// Excluded reports whether phrase must not be dispatched.
// When it is excluded, the matching exclusion entry is returned as well.
func (f *Filter) Excluded(ctx context.Context, phrase string) (bool, string, error) {
	for _, key := range Keys(phrase) {
		ok, err := f.store.Contains(ctx, key)
		if err != nil {
			return false, "", fmt.Errorf("failed to check exclusion for %q: %w", key, err)
		}
		if ok {
			return true, key, nil
		}
	}
	return false, "", nil
}

// Record appends phrase to the exclusion set after a failed attempt.
// The phrase is stored in the same normalized form Keys looks up.
func (f *Filter) Record(ctx context.Context, phrase string) error {
	keys := Keys(phrase)
	if len(keys) == 0 {
		return fmt.Errorf("cannot record an empty phrase")
	}
	if err := f.store.Add(ctx, keys[0]); err != nil {
		return fmt.Errorf("failed to record exclusion: %w", err)
	}
	return nil
}

// Len returns the number of recorded exclusions.
func (f *Filter) Len(ctx context.Context) (int, error) {
	return f.store.Len(ctx)
}
