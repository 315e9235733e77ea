package exclusion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/wallethunt/pkg/adapters/memory"
	"github.com/aretw0/wallethunt/pkg/exclusion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"a b c d", "a b c", "a b"}, exclusion.Keys("a b c d"))
	assert.Equal(t, []string{"a b c", "a b", "a"}, exclusion.Keys("a b c"))
	assert.Equal(t, []string{"a b", "a"}, exclusion.Keys("a b"))
	assert.Equal(t, []string{"a"}, exclusion.Keys("a"))
	assert.Nil(t, exclusion.Keys("   "))
	assert.Equal(t, []string{"a b", "a"}, exclusion.Keys("  a   b "), "whitespace is normalized")
}

func TestFilter_Excluded(t *testing.T) {
	ctx := context.Background()
	store := memory.New("apology cheese famous", "runway cheese")
	f := exclusion.New(store)

	tests := []struct {
		name    string
		phrase  string
		want    bool
		wantKey string
	}{
		{"Exact", "apology cheese famous", true, "apology cheese famous"},
		{"One Word Truncation", "apology cheese famous corn", true, "apology cheese famous"},
		{"Two Word Truncation", "apology cheese famous corn giggle", true, "apology cheese famous"},
		{"Three Word Truncation Is Not Checked", "apology cheese famous corn giggle frame", false, ""},
		{"Shorter Ancestor", "runway cheese empty", true, "runway cheese"},
		{"Unrelated", "argue cheese famous", false, ""},
		{"Prefix Of Entry Is Not Excluded", "apology cheese", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, key, err := f.Excluded(ctx, tt.phrase)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestFilter_Record(t *testing.T) {
	ctx := context.Background()
	f := exclusion.New(memory.New())

	excluded, _, err := f.Excluded(ctx, "a b c")
	require.NoError(t, err)
	assert.False(t, excluded)

	require.NoError(t, f.Record(ctx, "a b c"))

	excluded, _, err = f.Excluded(ctx, "a b c")
	require.NoError(t, err)
	assert.True(t, excluded)

	n, err := f.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFilter_RecordNormalizes(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	f := exclusion.New(store)

	require.NoError(t, f.Record(ctx, "  a   b c "))
	ok, err := store.Contains(ctx, "a b c")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Error(t, f.Record(ctx, " \t "))
}

type failingStore struct{ memory.Store }

func (*failingStore) Contains(context.Context, string) (bool, error) {
	return false, errors.New("backend down")
}

func TestFilter_PropagatesStoreErrors(t *testing.T) {
	f := exclusion.New(&failingStore{})
	_, _, err := f.Excluded(context.Background(), "a b")
	assert.ErrorContains(t, err, "backend down")
}
