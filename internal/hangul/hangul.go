// Package hangul decomposes precomposed Hangul syllables into compatibility jamo.
package hangul

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Syllable block layout.
const (
	Base  = 0xAC00
	Count = 11172

	numMedials    = 21
	numFinals     = 28
	initialStride = numMedials * numFinals
)

// ErrInvalidInput is returned when a string is not exactly one Hangul syllable.
var ErrInvalidInput = errors.New("invalid hangul input")

// Jamo is a compatibility jamo (U+3131..U+3163).
type Jamo rune

func (j Jamo) String() string { return string(rune(j)) }

var (
	initials = []Jamo("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")
	medials  = []Jamo("ㅏㅐㅑㅒㅓㅔㅕㅖㅗㅘㅙㅚㅛㅜㅝㅞㅟㅠㅡㅢㅣ")
	// index 0 is the empty final
	finals = append([]Jamo{0}, []Jamo("ㄱㄲㄳㄴㄵㄶㄷㄹㄺㄻㄼㄽㄾㄿㅀㅁㅂㅄㅅㅆㅇㅈㅊㅋㅌㅍㅎ")...)
)

var medialSplit = map[Jamo][]Jamo{
	'ㅘ': {'ㅗ', 'ㅏ'},
	'ㅙ': {'ㅗ', 'ㅐ'},
	'ㅚ': {'ㅗ', 'ㅣ'},
	'ㅝ': {'ㅜ', 'ㅓ'},
	'ㅞ': {'ㅜ', 'ㅔ'},
	'ㅟ': {'ㅜ', 'ㅣ'},
	'ㅢ': {'ㅡ', 'ㅣ'},
}

var finalSplit = map[Jamo][]Jamo{
	'ㄳ': {'ㄱ', 'ㅅ'},
	'ㄵ': {'ㄴ', 'ㅈ'},
	'ㄶ': {'ㄴ', 'ㅎ'},
	'ㄺ': {'ㄹ', 'ㄱ'},
	'ㄻ': {'ㄹ', 'ㅁ'},
	'ㄼ': {'ㄹ', 'ㅂ'},
	'ㄽ': {'ㄹ', 'ㅅ'},
	'ㄾ': {'ㄹ', 'ㅌ'},
	'ㄿ': {'ㄹ', 'ㅍ'},
	'ㅀ': {'ㄹ', 'ㅎ'},
	'ㅄ': {'ㅂ', 'ㅅ'},
}

// entry is the precomputed decomposition of one syllable.
type entry struct {
	jamo [5]Jamo
	n    uint8
	set  Set
}

var table [Count]entry

func init() {
	for i := range table {
		e := &table[i]
		push := func(j Jamo) {
			e.jamo[e.n] = j
			e.n++
			e.set = e.set.Add(j)
		}
		push(initials[i/initialStride])
		m := medials[(i%initialStride)/numFinals]
		if parts, ok := medialSplit[m]; ok {
			for _, p := range parts {
				push(p)
			}
		} else {
			push(m)
		}
		if f := finals[i%numFinals]; f != 0 {
			if parts, ok := finalSplit[f]; ok {
				for _, p := range parts {
					push(p)
				}
			} else {
				push(f)
			}
		}
	}
}

// IsHangul reports whether r is a precomposed syllable in U+AC00..U+D7A3.
func IsHangul(r rune) bool {
	return r >= Base && r < Base+Count
}

// IsHangulString reports whether s is exactly one Hangul syllable.
func IsHangulString(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && size == len(s) && IsHangul(r)
}

// Decompose returns the atomic jamo of the single syllable in s:
// initial, medial (split if compound) and final (split if compound, omitted if absent).
func Decompose(s string) ([]Jamo, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return nil, fmt.Errorf("%w: %q is not a single character", ErrInvalidInput, s)
	}
	return DecomposeRune(r)
}

// DecomposeRune is Decompose for a single rune.
func DecomposeRune(r rune) ([]Jamo, error) {
	if !IsHangul(r) {
		return nil, fmt.Errorf("%w: %q is not a hangul syllable", ErrInvalidInput, r)
	}
	e := &table[r-Base]
	out := make([]Jamo, e.n)
	copy(out, e.jamo[:e.n])
	return out, nil
}

// SetOf returns the jamo set of syllable r. The result is empty for non-Hangul runes.
func SetOf(r rune) Set {
	if !IsHangul(r) {
		return 0
	}
	return table[r-Base].set
}

// InitialOf returns the initial consonant of syllable r, or 0 for non-Hangul runes.
func InitialOf(r rune) Jamo {
	if !IsHangul(r) {
		return 0
	}
	return initials[(r-Base)/initialStride]
}

// MedialOf returns the vowel of syllable r without splitting compounds.
func MedialOf(r rune) Jamo {
	if !IsHangul(r) {
		return 0
	}
	return medials[((r-Base)%initialStride)/numFinals]
}

// FinalOf returns the final consonant of syllable r without splitting compounds.
// It is 0 when the syllable has no final.
func FinalOf(r rune) Jamo {
	if !IsHangul(r) {
		return 0
	}
	return finals[(r-Base)%numFinals]
}

// each calls fn for every atomic jamo of r in order, multiplicity included.
func each(r rune, fn func(Jamo)) {
	e := &table[r-Base]
	for _, j := range e.jamo[:e.n] {
		fn(j)
	}
}
