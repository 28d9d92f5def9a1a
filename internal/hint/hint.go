// Package hint classifies a guessed syllable against a candidate word into one of
// six closed hint kinds and filters words by those hints.
package hint

import (
	"errors"
	"fmt"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
)

var (
	// ErrUnknownKind is returned for a hint name outside the six canonical tokens.
	ErrUnknownKind = errors.New("unknown hint")
	// ErrInconsistent is returned when no kind matches a (truth, guess) pair.
	ErrInconsistent = errors.New("no hint kind matches")
)

// Kind is one of the six hint categories. The declared order is the derivation order.
type Kind uint8

const (
	NoMatch Kind = iota
	IndirectMatch
	SingleMatch
	MultiMatchDiffInitial
	MultiMatchSameInitial
	ExactMatch
)

// Kinds lists every kind in derivation order.
var Kinds = [...]Kind{NoMatch, IndirectMatch, SingleMatch, MultiMatchDiffInitial, MultiMatchSameInitial, ExactMatch}

// NumKinds is the number of hint kinds.
const NumKinds = len(Kinds)

var names = [...]string{"사과", "바나나", "가지", "마늘", "버섯", "당근"}

var aliases = [...]string{"Apple", "Banana", "Eggplant", "Garlic", "Mushroom", "Carrot"}

// String returns the canonical Korean token used by every external interface.
func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return names[k]
}

// Alias returns the English display name.
func (k Kind) Alias() string {
	if !k.IsValid() {
		return ""
	}
	return aliases[k]
}

func (k Kind) IsValid() bool { return int(k) < NumKinds }

// ParseKind maps a canonical token to its kind. Matching is exact.
func ParseKind(s string) (Kind, error) {
	for i, n := range names {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(names[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	p, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = p
	return nil
}

// Position is the slot of the guessed syllable a hint refers to.
type Position uint8

const (
	First Position = iota
	Second
)

func (p Position) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("Position(%d)", uint8(p))
	}
}

// direct returns the index of the syllable a hint at p inspects directly.
func (p Position) direct() int { return int(p) }

func (p Position) indirect() int { return 1 - int(p) }

// Classify returns the kind that syllables (direct, indirect) of a word receive
// against reference syllable ref. All three must be Hangul.
func Classify(ref, direct, indirect rune) Kind {
	s := hangul.SetOf(ref)
	shared := s.Intersect(hangul.SetOf(direct)).Len()
	switch {
	case shared == 0:
		if s.Intersect(hangul.SetOf(indirect)).Len() == 0 {
			return NoMatch
		}
		return IndirectMatch
	case shared == 1:
		return SingleMatch
	case direct == ref:
		return ExactMatch
	case hangul.InitialOf(direct) != hangul.InitialOf(ref):
		return MultiMatchDiffInitial
	default:
		return MultiMatchSameInitial
	}
}

// matches is the compatibility predicate of kind k.
func matches(k Kind, ref rune, refSet hangul.Set, direct, indirect rune) bool {
	shared := refSet.Intersect(hangul.SetOf(direct)).Len()
	switch k {
	case NoMatch:
		return shared == 0 && refSet.Intersect(hangul.SetOf(indirect)).Len() == 0
	case IndirectMatch:
		return shared == 0 && refSet.Intersect(hangul.SetOf(indirect)).Len() > 0
	case SingleMatch:
		return shared == 1
	case MultiMatchDiffInitial:
		return shared >= 2 && direct != ref && hangul.InitialOf(direct) != hangul.InitialOf(ref)
	case MultiMatchSameInitial:
		return shared >= 2 && direct != ref && hangul.InitialOf(direct) == hangul.InitialOf(ref)
	case ExactMatch:
		return direct == ref
	}
	return false
}

// Hint is an immutable (kind, reference syllable, position) triple.
type Hint struct {
	kind Kind
	ref  rune
	pos  Position
	set  hangul.Set
}

// New builds a hint. ref must be a Hangul syllable.
func New(kind Kind, ref rune, pos Position) (Hint, error) {
	if !kind.IsValid() {
		return Hint{}, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}
	if !hangul.IsHangul(ref) {
		return Hint{}, fmt.Errorf("%w: %q", hangul.ErrInvalidInput, ref)
	}
	if pos != First && pos != Second {
		return Hint{}, fmt.Errorf("invalid position %d", pos)
	}
	return Hint{kind: kind, ref: ref, pos: pos, set: hangul.SetOf(ref)}, nil
}

func (h Hint) Kind() Kind { return h.kind }

func (h Hint) Ref() rune { return h.ref }

func (h Hint) Position() Position { return h.pos }

// Compatible reports whether w could be the answer given this hint.
func (h Hint) Compatible(w hangul.Word) bool {
	return matches(h.kind, h.ref, h.set, w[h.pos.direct()], w[h.pos.indirect()])
}

func (h Hint) String() string {
	return fmt.Sprintf("%s(%c, %s)", h.kind, h.ref, h.pos)
}
