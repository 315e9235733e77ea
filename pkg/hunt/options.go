package hunt

import (
	"log/slog"

	"github.com/aretw0/wallethunt/pkg/domain"
	"github.com/aretw0/wallethunt/pkg/ports"
)

// Option defines a functional option for configuring the Hunter.
type Option func(*Hunter)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hunter) {
		h.logger = logger
	}
}

// WithHooks registers lifecycle hooks. Multiple calls are merged in order.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(h *Hunter) {
		h.hooks = h.hooks.Merge(hooks)
	}
}

// WithMatchSink persists the result when a match is found.
func WithMatchSink(sink ports.MatchSink) Option {
	return func(h *Hunter) {
		h.matches = sink
	}
}
