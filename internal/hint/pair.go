package hint

import (
	"fmt"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
)

// Pair holds the hints for the first and second syllables of one guess.
type Pair [2]Hint

// NewPair builds the pair of hints a guess received.
func NewPair(guess hangul.Word, first, second Kind) (Pair, error) {
	h1, err := New(first, guess[0], First)
	if err != nil {
		return Pair{}, fmt.Errorf("first hint: %w", err)
	}
	h2, err := New(second, guess[1], Second)
	if err != nil {
		return Pair{}, fmt.Errorf("second hint: %w", err)
	}
	return Pair{h1, h2}, nil
}

// ParsePair builds a pair from canonical hint tokens.
func ParsePair(guess hangul.Word, first, second string) (Pair, error) {
	k1, err := ParseKind(first)
	if err != nil {
		return Pair{}, err
	}
	k2, err := ParseKind(second)
	if err != nil {
		return Pair{}, err
	}
	return NewPair(guess, k1, k2)
}

// Compatible reports whether w satisfies both hints.
func (p Pair) Compatible(w hangul.Word) bool {
	return p[0].Compatible(w) && p[1].Compatible(w)
}

// Guess returns the word the pair was given for.
func (p Pair) Guess() hangul.Word { return hangul.Word{p[0].ref, p[1].ref} }

// Kinds returns the kinds of both hints.
func (p Pair) Kinds() (Kind, Kind) { return p[0].kind, p[1].kind }

// Key packs the two kinds into an index in [0, NumKinds*NumKinds).
func (p Pair) Key() int { return Key(p[0].kind, p[1].kind) }

// Key packs two kinds into an index in [0, NumKinds*NumKinds).
func Key(first, second Kind) int { return int(first)*NumKinds + int(second) }

// Derive returns, for each position of guess, the first kind in declared order
// that is compatible with truth.
func Derive(truth, guess hangul.Word) (Pair, error) {
	var out Pair
	for pos := First; pos <= Second; pos++ {
		ref := guess[pos]
		if !hangul.IsHangul(ref) || !truth.Valid() {
			return Pair{}, fmt.Errorf("%w: %s / %s", hangul.ErrInvalidWord, truth, guess)
		}
		set := hangul.SetOf(ref)
		found := false
		for _, k := range Kinds {
			if matches(k, ref, set, truth[pos.direct()], truth[pos.indirect()]) {
				out[pos] = Hint{kind: k, ref: ref, pos: pos, set: set}
				found = true
				break
			}
		}
		if !found {
			return Pair{}, fmt.Errorf("%w: truth %s, guess %s, %s syllable", ErrInconsistent, truth, guess, pos)
		}
	}
	return out, nil
}

// DeriveKey is Derive reduced to its pair key. Both words must be valid.
func DeriveKey(truth, guess hangul.Word) int {
	return Key(
		Classify(guess[0], truth[0], truth[1]),
		Classify(guess[1], truth[1], truth[0]),
	)
}
