// Package candidate tracks which eligible words remain consistent with the
// feedback received so far.
package candidate

import (
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/hint"
)

// Store is the working set of candidate words. It is not safe for concurrent mutation.
type Store struct {
	words []hangul.Word
	live  *bitset.BitSet
}

// New builds a store over words. The input is copied, sorted and deduplicated;
// all words start live.
func New(words []hangul.Word) *Store {
	ws := slices.Clone(words)
	slices.SortFunc(ws, hangul.Word.Compare)
	ws = slices.Compact(ws)
	s := &Store{words: ws}
	s.Reset()
	return s
}

// Reset makes every eligible word live again.
func (s *Store) Reset() {
	n := uint(len(s.words))
	s.live = bitset.New(n)
	s.live.FlipRange(0, n)
}

// Len returns the number of live words.
func (s *Store) Len() int { return int(s.live.Count()) }

// Total returns the number of eligible words.
func (s *Store) Total() int { return len(s.words) }

// Words returns the live words in order.
func (s *Store) Words() []hangul.Word {
	out := make([]hangul.Word, 0, s.Len())
	for i, ok := s.live.NextSet(0); ok; i, ok = s.live.NextSet(i + 1) {
		out = append(out, s.words[i])
	}
	return out
}

// All returns every eligible word, live or not.
func (s *Store) All() []hangul.Word { return slices.Clone(s.words) }

// Contains reports whether w is live.
func (s *Store) Contains(w hangul.Word) bool {
	i, ok := slices.BinarySearchFunc(s.words, w, hangul.Word.Compare)
	return ok && s.live.Test(uint(i))
}

// Eligible reports whether w is in the eligible set, live or not.
func (s *Store) Eligible(w hangul.Word) bool {
	_, ok := slices.BinarySearchFunc(s.words, w, hangul.Word.Compare)
	return ok
}

// Filter keeps only live words compatible with both hints of p and returns the
// remaining count. The new live set is computed before it replaces the old one.
func (s *Store) Filter(p hint.Pair) int {
	return s.Keep(p.Compatible)
}

// Keep keeps only live words for which keep returns true.
func (s *Store) Keep(keep func(hangul.Word) bool) int {
	next := bitset.New(uint(len(s.words)))
	for i, ok := s.live.NextSet(0); ok; i, ok = s.live.NextSet(i + 1) {
		if keep(s.words[i]) {
			next.Set(i)
		}
	}
	s.live = next
	return s.Len()
}

// Count returns how many live words are compatible with p without mutating the store.
func (s *Store) Count(p hint.Pair) int {
	n := 0
	for i, ok := s.live.NextSet(0); ok; i, ok = s.live.NextSet(i + 1) {
		if p.Compatible(s.words[i]) {
			n++
		}
	}
	return n
}
