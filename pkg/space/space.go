// Package space enumerates candidate mnemonics as the Cartesian product of
// per-position word lists.
package space

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/aretw0/wallethunt/pkg/domain"
)

// Space is an ordered sequence of positions, each holding the words that may
// occupy it. Candidates are produced in row-major order: the last position
// varies fastest, and words keep their input order.
type Space struct {
	positions [][]string
	total     uint64
}

// New builds a Space from the given positions.
// The slices are copied; later changes to positions do not affect the Space.
func New(positions [][]string) (*Space, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: no positions", domain.ErrEmptySpace)
	}

	s := &Space{
		positions: make([][]string, len(positions)),
		total:     1,
	}
	for i, words := range positions {
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: position %d has no words", domain.ErrEmptySpace, i+1)
		}
		hi, lo := bits.Mul64(s.total, uint64(len(words)))
		if hi != 0 {
			return nil, fmt.Errorf("%w: overflow at position %d", domain.ErrSpaceTooLarge, i+1)
		}
		s.total = lo
		s.positions[i] = append([]string(nil), words...)
	}
	return s, nil
}

// Total returns the number of candidates (the product of the list lengths).
func (s *Space) Total() uint64 {
	return s.total
}

// Len returns the number of positions, i.e. the words per candidate.
func (s *Space) Len() int {
	return len(s.positions)
}

// At returns the candidate at row-major index i.
func (s *Space) At(i uint64) (string, error) {
	if i >= s.total {
		return "", fmt.Errorf("index %d out of range [0, %d)", i, s.total)
	}
	picks := make([]string, len(s.positions))
	for p := len(s.positions) - 1; p >= 0; p-- {
		n := uint64(len(s.positions[p]))
		picks[p] = s.positions[p][i%n]
		i /= n
	}
	return strings.Join(picks, " "), nil
}

// All lazily yields every candidate with its row-major index.
func (s *Space) All() iter.Seq2[uint64, string] {
	return s.From(0)
}

// From lazily yields candidates starting at row-major index start.
// A start beyond Total yields nothing.
func (s *Space) From(start uint64) iter.Seq2[uint64, string] {
	return func(yield func(uint64, string) bool) {
		if start >= s.total {
			return
		}

		// Odometer over word indexes, seeded from start.
		odo := make([]int, len(s.positions))
		rem := start
		for p := len(s.positions) - 1; p >= 0; p-- {
			n := uint64(len(s.positions[p]))
			odo[p] = int(rem % n)
			rem /= n
		}

		picks := make([]string, len(s.positions))
		for idx := start; idx < s.total; idx++ {
			for p, w := range odo {
				picks[p] = s.positions[p][w]
			}
			if !yield(idx, strings.Join(picks, " ")) {
				return
			}
			for p := len(odo) - 1; p >= 0; p-- {
				odo[p]++
				if odo[p] < len(s.positions[p]) {
					break
				}
				odo[p] = 0
			}
		}
	}
}
