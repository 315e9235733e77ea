package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunExclusionStoreContract runs a suite of tests to verify that an ExclusionStore
// implementation adheres to the defined interface contract.
//
// open must return a store over the same backing data every time it is called;
// the suite calls it again after Close to simulate a process restart.
func RunExclusionStoreContract(t *testing.T, open func(t *testing.T) ExclusionStore) {
	ctx := context.Background()
	suffix := time.Now().Format("20060102150405.000000000")
	phrase := func(name string) string {
		return fmt.Sprintf("contract %s %s", name, suffix)
	}

	t.Run("Add and Contains", func(t *testing.T) {
		store := open(t)
		defer store.Close()

		p := phrase("add")
		ok, err := store.Contains(ctx, p)
		require.NoError(t, err)
		assert.False(t, ok, "fresh phrase must not be present")

		require.NoError(t, store.Add(ctx, p))

		ok, err = store.Contains(ctx, p)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Exact Membership Only", func(t *testing.T) {
		store := open(t)
		defer store.Close()

		p := phrase("exact")
		require.NoError(t, store.Add(ctx, p))

		ok, err := store.Contains(ctx, p+" extra")
		require.NoError(t, err)
		assert.False(t, ok, "longer phrase must not match")

		ok, err = store.Contains(ctx, "contract exact")
		require.NoError(t, err)
		assert.False(t, ok, "prefix must not match")
	})

	t.Run("Duplicate Add", func(t *testing.T) {
		store := open(t)
		defer store.Close()

		before, err := store.Len(ctx)
		require.NoError(t, err)

		p := phrase("dup")
		require.NoError(t, store.Add(ctx, p))
		require.NoError(t, store.Add(ctx, p))

		after, err := store.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, after, "duplicate add must not grow the set twice")
	})

	t.Run("Survives Restart", func(t *testing.T) {
		p := phrase("restart")

		first := open(t)
		require.NoError(t, first.Add(ctx, p))
		require.NoError(t, first.Close())

		second := open(t)
		defer second.Close()

		ok, err := second.Contains(ctx, p)
		require.NoError(t, err)
		assert.True(t, ok, "phrase must persist across reopen")
	})
}
