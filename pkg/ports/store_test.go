package ports_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/wallethunt/pkg/domain"
	"github.com/aretw0/wallethunt/pkg/ports"
)

// MockStore is an in-memory implementation of ExclusionStore for testing purposes.
// Close is a no-op so that reopening returns the same backing set.
type MockStore struct {
	mu   sync.Mutex
	data map[string]struct{}
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string]struct{}),
	}
}

func (m *MockStore) Contains(ctx context.Context, phrase string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[phrase]
	return ok, nil
}

func (m *MockStore) Add(ctx context.Context, phrase string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[phrase] = struct{}{}
	return nil
}

func (m *MockStore) Len(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data), nil
}

func (m *MockStore) Close() error { return nil }

func TestExclusionStore_Contract(t *testing.T) {
	// This test verifies that the MockStore complies with the ExclusionStore logic.
	// It serves as a contract test for future implementations (Adapters).
	store := NewMockStore()
	ports.RunExclusionStoreContract(t, func(t *testing.T) ports.ExclusionStore {
		return store
	})
}

func TestRecoveryEngineFunc(t *testing.T) {
	called := false
	var engine ports.RecoveryEngine = ports.RecoveryEngineFunc(func(ctx context.Context, req domain.Request) (domain.Result, error) {
		called = true
		return domain.Result{Mnemonic: req.Mnemonic}, nil
	})

	res, err := engine.Recover(context.Background(), domain.Request{Mnemonic: "a b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || res.Mnemonic != "a b" {
		t.Errorf("expected passthrough result, got %+v (called=%v)", res, called)
	}
}
