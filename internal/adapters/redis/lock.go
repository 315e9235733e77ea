package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/wallethunt/pkg/ports"
)

var (
	// ErrLocked is returned when another driver holds the lease.
	ErrLocked = errors.New("target is locked by another driver")
	// ErrLeaseLost is the cause a run is cancelled with when its lease was
	// taken over while the run still held it.
	ErrLeaseLost = errors.New("target lease lost to another driver")
)

const (
	refreshScript = `
		if redis.call("get", KEYS[1]) == ARGV[1] then
			return redis.call("pexpire", KEYS[1], ARGV[2])
		else
			return 0
		end
	`
	releaseScript = `
		if redis.call("get", KEYS[1]) == ARGV[1] then
			return redis.call("del", KEYS[1])
		else
			return 0
		end
	`
)

// Locker implements ports.Locker with a SET NX PX lease that is refreshed in
// the background while held.
type Locker struct {
	client *backend.Client
	prefix string
	logger *slog.Logger
	onLost func(key string)
}

// LockerOption configures a Locker.
type LockerOption func(*Locker)

// WithLockLogger sets the logger used to report refresh failures.
func WithLockLogger(logger *slog.Logger) LockerOption {
	return func(l *Locker) {
		l.logger = logger
	}
}

// OnLost registers fn to be called once when a held lease is found to belong
// to someone else (it expired and was taken over). Refreshing stops then.
func OnLost(fn func(key string)) LockerOption {
	return func(l *Locker) {
		l.onLost = fn
	}
}

// NewLocker creates a new Redis locker.
func NewLocker(client *backend.Client, prefix string, opts ...LockerOption) *Locker {
	l := &Locker{
		client: client,
		prefix: prefix,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locker returns a locker sharing the store's client and prefix.
func (s *Store) Locker(opts ...LockerOption) *Locker {
	return NewLocker(s.client, s.prefix, opts...)
}

// Lock takes the lease for key. It does not wait: a held lease yields ErrLocked.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("lock ttl must be positive")
	}
	lockKey := l.prefix + "lock:" + key

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	ok, err := l.client.SetNX(ctx, lockKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error acquiring lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, key)
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(ttl / 3)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				n, err := l.client.Eval(context.Background(), refreshScript, []string{lockKey}, token, ttl.Milliseconds()).Int()
				switch {
				case err != nil:
					l.logger.Warn("Lease refresh failed", "key", key, "err", err)
				case n == 0:
					l.logger.Warn("Lease lost", "key", key)
					if l.onLost != nil {
						l.onLost(key)
					}
					return
				}
			}
		}
	}()

	var once sync.Once
	return func(ctx context.Context) error {
		var err error
		once.Do(func() {
			close(stop)
			<-done
			err = l.client.Eval(ctx, releaseScript, []string{lockKey}, token).Err()
		})
		return err
	}, nil
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
