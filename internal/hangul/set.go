package hangul

import (
	"fmt"
	"math/bits"
	"unicode/utf8"
)

const (
	firstJamo = 0x3131
	numJamo   = 0x3163 - firstJamo + 1
)

// Set is a set of compatibility jamo stored as a bitmask.
type Set uint64

// IsJamo reports whether j lies in the compatibility jamo block.
func IsJamo(j Jamo) bool {
	return j >= firstJamo && j < firstJamo+numJamo
}

// ParseJamo parses s as a single compatibility jamo.
func ParseJamo(s string) (Jamo, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || !IsJamo(Jamo(r)) {
		return 0, fmt.Errorf("%w: %q is not a jamo", ErrInvalidInput, s)
	}
	return Jamo(r), nil
}

// Add returns s with j included. Runes outside the jamo block are ignored.
func (s Set) Add(j Jamo) Set {
	if !IsJamo(j) {
		return s
	}
	return s | 1<<uint(j-firstJamo)
}

// Has reports whether j is in s.
func (s Set) Has(j Jamo) bool {
	return IsJamo(j) && s&(1<<uint(j-firstJamo)) != 0
}

// Len returns the number of distinct jamo in s.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

func (s Set) Intersect(o Set) Set { return s & o }

func (s Set) Union(o Set) Set { return s | o }

// Jamo returns the members of s in code point order.
func (s Set) Jamo() []Jamo {
	out := make([]Jamo, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, Jamo(firstJamo+bits.TrailingZeros64(v)))
	}
	return out
}

func (s Set) String() string {
	js := s.Jamo()
	rs := make([]rune, len(js))
	for i, j := range js {
		rs[i] = rune(j)
	}
	return string(rs)
}
