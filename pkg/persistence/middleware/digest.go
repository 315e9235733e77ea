package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/aretw0/wallethunt/pkg/ports"
)

// MinKeySize is the shortest accepted digest key, in bytes.
const MinKeySize = 16

// DigestConfig holds the keys used to digest phrases.
type DigestConfig struct {
	// ActiveKey digests every phrase written from now on.
	ActiveKey []byte

	// FallbackKeys are older keys still honored on lookup, so a hunt keeps its
	// progress across a key rotation.
	FallbackKeys [][]byte
}

type digestMiddleware struct {
	next   ports.ExclusionStore
	config DigestConfig
}

// NewDigestMiddleware creates a middleware that stores the hex HMAC-SHA256 of
// each phrase instead of the phrase itself, so candidate seed words never
// reach the backing store in clear. Membership stays exact because the digest
// is deterministic for a given key.
func NewDigestMiddleware(config DigestConfig) (Middleware, error) {
	if len(config.ActiveKey) < MinKeySize {
		return nil, fmt.Errorf("digest key must be at least %d bytes", MinKeySize)
	}
	for i, k := range config.FallbackKeys {
		if len(k) < MinKeySize {
			return nil, fmt.Errorf("fallback digest key %d must be at least %d bytes", i, MinKeySize)
		}
	}
	return func(next ports.ExclusionStore) ports.ExclusionStore {
		return &digestMiddleware{
			next:   next,
			config: config,
		}
	}, nil
}

func (m *digestMiddleware) Contains(ctx context.Context, phrase string) (bool, error) {
	ok, err := m.next.Contains(ctx, Digest(m.config.ActiveKey, phrase))
	if err != nil || ok {
		return ok, err
	}
	for _, key := range m.config.FallbackKeys {
		ok, err := m.next.Contains(ctx, Digest(key, phrase))
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

func (m *digestMiddleware) Add(ctx context.Context, phrase string) error {
	return m.next.Add(ctx, Digest(m.config.ActiveKey, phrase))
}

func (m *digestMiddleware) Len(ctx context.Context) (int, error) {
	return m.next.Len(ctx)
}

func (m *digestMiddleware) Close() error {
	return m.next.Close()
}

// Digest returns the hex HMAC-SHA256 of phrase under key.
func Digest(key []byte, phrase string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(phrase))
	return hex.EncodeToString(mac.Sum(nil))
}
