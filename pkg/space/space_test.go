package space_test

import (
	"testing"

	"github.com/aretw0/wallethunt/pkg/domain"
	"github.com/aretw0/wallethunt/pkg/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *space.Space, start uint64) ([]uint64, []string) {
	var idx []uint64
	var phrases []string
	for i, p := range s.From(start) {
		idx = append(idx, i)
		phrases = append(phrases, p)
	}
	return idx, phrases
}

func TestSpace_RowMajorOrder(t *testing.T) {
	s, err := space.New([][]string{
		{"apology", "runway"},
		{"cheese"},
		{"famous", "empty", "corn"},
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(6), s.Total())
	assert.Equal(t, 3, s.Len())

	idx, phrases := collect(s, 0)
	assert.Equal(t, []uint64{0, 1, 2, 3, 4, 5}, idx)
	assert.Equal(t, []string{
		"apology cheese famous",
		"apology cheese empty",
		"apology cheese corn",
		"runway cheese famous",
		"runway cheese empty",
		"runway cheese corn",
	}, phrases)
}

func TestSpace_VisitsExactlyTotal(t *testing.T) {
	s, err := space.New([][]string{
		{"a", "b", "c"},
		{"d", "e"},
		{"f"},
		{"g", "h", "i", "j"},
	})
	require.NoError(t, err)

	seen := map[string]bool{}
	count := uint64(0)
	for _, p := range s.All() {
		assert.False(t, seen[p], "duplicate candidate %q", p)
		seen[p] = true
		count++
	}
	assert.Equal(t, uint64(24), count)
	assert.Equal(t, s.Total(), count)
}

func TestSpace_Deterministic(t *testing.T) {
	positions := [][]string{{"x", "y"}, {"z", "w"}}
	a, err := space.New(positions)
	require.NoError(t, err)
	b, err := space.New(positions)
	require.NoError(t, err)

	_, pa := collect(a, 0)
	_, pb := collect(b, 0)
	assert.Equal(t, pa, pb)
}

func TestSpace_AtMatchesIteration(t *testing.T) {
	s, err := space.New([][]string{{"a", "b"}, {"c", "d", "e"}, {"f", "g"}})
	require.NoError(t, err)

	for i, p := range s.All() {
		got, err := s.At(i)
		require.NoError(t, err)
		assert.Equal(t, p, got, "index %d", i)
	}

	_, err = s.At(s.Total())
	assert.Error(t, err)
}

func TestSpace_From(t *testing.T) {
	s, err := space.New([][]string{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)

	idx, phrases := collect(s, 2)
	assert.Equal(t, []uint64{2, 3}, idx)
	assert.Equal(t, []string{"b c", "b d"}, phrases)

	idx, _ = collect(s, 10)
	assert.Empty(t, idx)
}

func TestSpace_EarlyStop(t *testing.T) {
	s, err := space.New([][]string{{"a", "b", "c"}})
	require.NoError(t, err)

	var got []string
	for _, p := range s.All() {
		got = append(got, p)
		if p == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSpace_CopiesInput(t *testing.T) {
	positions := [][]string{{"a", "b"}}
	s, err := space.New(positions)
	require.NoError(t, err)

	positions[0][0] = "mutated"
	first, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", first)
}

func TestSpace_Errors(t *testing.T) {
	t.Run("No Positions", func(t *testing.T) {
		_, err := space.New(nil)
		assert.ErrorIs(t, err, domain.ErrEmptySpace)
	})

	t.Run("Empty Position", func(t *testing.T) {
		_, err := space.New([][]string{{"a"}, {}})
		assert.ErrorIs(t, err, domain.ErrEmptySpace)
	})

	t.Run("Overflow", func(t *testing.T) {
		wide := make([]string, 1<<16)
		for i := range wide {
			wide[i] = "w"
		}
		positions := [][]string{wide, wide, wide, wide, wide}
		_, err := space.New(positions)
		assert.ErrorIs(t, err, domain.ErrSpaceTooLarge)
	})
}
