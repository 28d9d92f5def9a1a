package hangul

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidWord is returned when a string is not exactly two Hangul syllables.
var ErrInvalidWord = errors.New("invalid word")

// Word is a two-syllable Hangul word. Words compare by value.
type Word [2]rune

// ParseWord parses s (surrounding whitespace ignored) as a two-syllable word.
func ParseWord(s string) (Word, error) {
	rs := []rune(strings.TrimSpace(s))
	if len(rs) != 2 {
		return Word{}, fmt.Errorf("%w: %q must have exactly 2 syllables", ErrInvalidWord, s)
	}
	if !IsHangul(rs[0]) || !IsHangul(rs[1]) {
		return Word{}, fmt.Errorf("%w: %q must be hangul", ErrInvalidWord, s)
	}
	return Word{rs[0], rs[1]}, nil
}

// MustParseWord is ParseWord that panics on error. Intended for literals in tests and tables.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string { return string(w[:]) }

// Valid reports whether both syllables are Hangul.
func (w Word) Valid() bool { return IsHangul(w[0]) && IsHangul(w[1]) }

// Set returns the union of both syllables' jamo sets.
func (w Word) Set() Set { return SetOf(w[0]) | SetOf(w[1]) }

// Contains reports whether either syllable contains jamo j.
func (w Word) Contains(j Jamo) bool { return w.Set().Has(j) }

// Compare orders words by their first syllable, then their second.
func (w Word) Compare(o Word) int {
	for i := range w {
		switch {
		case w[i] < o[i]:
			return -1
		case w[i] > o[i]:
			return 1
		}
	}
	return 0
}

func (w Word) Less(o Word) bool { return w.Compare(o) < 0 }

func (w Word) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWord, string(w[:]))
	}
	return []byte(w.String()), nil
}

func (w *Word) UnmarshalText(b []byte) error {
	p, err := ParseWord(string(b))
	if err != nil {
		return err
	}
	*w = p
	return nil
}

// Frequency counts jamo occurrences across words, multiplicity included.
type Frequency [numJamo]int

// FrequencyOf counts the atomic jamo of both syllables of every word.
func FrequencyOf(words []Word) *Frequency {
	f := new(Frequency)
	for _, w := range words {
		f.Add(w)
	}
	return f
}

func (f *Frequency) Add(w Word) {
	for _, r := range w {
		if !IsHangul(r) {
			continue
		}
		each(r, func(j Jamo) { f[j-firstJamo]++ })
	}
}

// Of returns the count of j.
func (f *Frequency) Of(j Jamo) int {
	if !IsJamo(j) {
		return 0
	}
	return f[j-firstJamo]
}

// Score sums the counts of the distinct jamo of w.
func (f *Frequency) Score(w Word) int {
	score := 0
	for v := uint64(w.Set()); v != 0; v &= v - 1 {
		score += f[bits.TrailingZeros64(v)]
	}
	return score
}
