package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/wallethunt/internal/adapters/file"
	redisstore "github.com/aretw0/wallethunt/internal/adapters/redis"
	"github.com/aretw0/wallethunt/internal/config"
	"github.com/aretw0/wallethunt/pkg/adapters/memory"
	"github.com/aretw0/wallethunt/pkg/persistence/middleware"
	"github.com/aretw0/wallethunt/pkg/ports"
)

// openStore opens the exclusion store for address on the configured backend,
// wrapped in the digest middleware when a digest key is configured.
//
// With a non-nil lease, a shared backend also takes the per-target lease so
// that a second driver on the same target fails fast. Close releases it.
func openStore(ctx context.Context, cfg config.Config, address string, lease *leaseOptions) (ports.ExclusionStore, error) {
	store, err := openBackend(ctx, cfg, address, lease)
	if err != nil || cfg.Store.DigestKey == "" {
		return store, err
	}

	dc := middleware.DigestConfig{ActiveKey: []byte(cfg.Store.DigestKey)}
	for _, k := range cfg.Store.DigestFallbackKeys {
		dc.FallbackKeys = append(dc.FallbackKeys, []byte(k))
	}
	mw, err := middleware.NewDigestMiddleware(dc)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return mw(store), nil
}

// leaseOptions configures the per-target lease of a shared backend.
type leaseOptions struct {
	Logger *slog.Logger
	// OnLost is called when the lease was taken over mid-run.
	OnLost func(key string)
}

func openBackend(ctx context.Context, cfg config.Config, address string, lease *leaseOptions) (ports.ExclusionStore, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.New(), nil

	case config.BackendRedis:
		rc := cfg.Store.Redis
		s := redisstore.New(rc.Addr, rc.Password, rc.DB, address, redisstore.WithPrefix(rc.Prefix))
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
		if lease == nil {
			return s, nil
		}
		var lockOpts []redisstore.LockerOption
		if lease.Logger != nil {
			lockOpts = append(lockOpts, redisstore.WithLockLogger(lease.Logger))
		}
		if lease.OnLost != nil {
			lockOpts = append(lockOpts, redisstore.OnLost(lease.OnLost))
		}
		unlock, err := s.Locker(lockOpts...).Lock(ctx, address, rc.LockTTL)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		return &leasedStore{ExclusionStore: s, unlock: unlock}, nil

	default:
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
		return file.Open(cfg.Dir, address)
	}
}

// leasedStore releases its lease before closing the underlying store.
type leasedStore struct {
	ports.ExclusionStore
	unlock ports.UnlockFunc
}

func (s *leasedStore) Close() error {
	err := s.unlock(context.Background())
	return errors.Join(err, s.ExclusionStore.Close())
}
