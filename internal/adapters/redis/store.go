package redis

import (
	"context"
	"fmt"
	"strings"

	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "wallethunt:"

// Store implements ports.ExclusionStore using a Redis SET per target address.
// Several hunters pointed at the same server share their progress.
type Store struct {
	client *backend.Client
	prefix string
	target string
	owned  bool
}

type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store for target, dialing the server at addr.
// The store owns the client and closes it on Close.
func New(addr, password string, db int, target string, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	store := NewFromClient(rdb, target, opts...)
	store.owned = true
	return store
}

// NewFromClient creates a new Redis store for target from an existing client.
// The caller keeps ownership of the client.
func NewFromClient(client *backend.Client, target string, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
		target: strings.TrimSpace(target),
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key() string {
	return s.prefix + "exclude:" + s.target
}

// Ping checks connectivity so that a bad address fails before the hunt starts.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

// Contains reports whether the phrase is a member of the target's set.
func (s *Store) Contains(ctx context.Context, phrase string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key(), phrase).Result()
	if err != nil {
		return false, fmt.Errorf("failed to query redis: %w", err)
	}
	return ok, nil
}

// Add records the phrase.
func (s *Store) Add(ctx context.Context, phrase string) error {
	if err := s.client.SAdd(ctx, s.key(), phrase).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Len returns the cardinality of the target's set.
func (s *Store) Len(ctx context.Context) (int, error) {
	n, err := s.client.SCard(ctx, s.key()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count exclusions: %w", err)
	}
	return int(n), nil
}

// Close closes the redis client if the store created it.
func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}
