package ports

import (
	"context"

	"github.com/aretw0/wallethunt/pkg/domain"
)

// RecoveryEngine defines the external collaborator that tests a candidate phrase.
// A zero Result with a nil error means the candidate did not match.
// A non-nil error means the engine itself failed; the driver does not retry.
type RecoveryEngine interface {
	Recover(ctx context.Context, req domain.Request) (domain.Result, error)
}

// RecoveryEngineFunc adapts a plain function to RecoveryEngine.
type RecoveryEngineFunc func(ctx context.Context, req domain.Request) (domain.Result, error)

// Recover calls f(ctx, req).
func (f RecoveryEngineFunc) Recover(ctx context.Context, req domain.Request) (domain.Result, error) {
	return f(ctx, req)
}
