package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/wallethunt/internal/config"
	"github.com/aretw0/wallethunt/internal/presentation/tui"
	"github.com/aretw0/wallethunt/pkg/exclusion"
)

// ListOptions selects a window of the enumeration.
type ListOptions struct {
	InputPath string
	Offset    uint64
	Limit     uint64 // 0 lists everything from Offset
}

// ListCandidates prints candidates in enumeration order, one per line as
// "<marker> <index> <phrase>". The marker is "x" for candidates the exclusion
// set already covers and "." for pending ones. Nothing is dispatched or recorded.
func ListCandidates(ctx context.Context, cfg config.Config, opts ListOptions, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	hf, s, err := loadInput(opts.InputPath, cfg, tui.NewPresenter(io.Discard, true))
	if err != nil {
		return err
	}
	if opts.Offset >= s.Total() {
		return fmt.Errorf("offset %d is past the end of the space (%d candidates)", opts.Offset, s.Total())
	}

	store, err := openStore(ctx, cfg, hf.Address, nil)
	if err != nil {
		return err
	}
	defer store.Close()
	filter := exclusion.New(store)

	var n uint64
	for idx, phrase := range s.From(opts.Offset) {
		if opts.Limit > 0 && n == opts.Limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		excluded, _, err := filter.Excluded(ctx, phrase)
		if err != nil {
			return err
		}
		marker := "."
		if excluded {
			marker = "x"
		}
		if _, err := fmt.Fprintf(w, "%s %d %s\n", marker, idx, phrase); err != nil {
			return err
		}
		n++
	}
	return nil
}
