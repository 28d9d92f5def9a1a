package hint

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
)

func mustHint(t *testing.T, k Kind, ref rune, pos Position) Hint {
	t.Helper()
	h, err := New(k, ref, pos)
	require.NoError(t, err)
	return h
}

func TestCompatibleReferenceCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   Kind
		accept string
		reject string
	}{
		{NoMatch, "보법", "고수"},
		{IndirectMatch, "보물", "고명"},
		{SingleMatch, "미숙", "망상"},
		{MultiMatchDiffInitial, "악마", "망상"},
		{MultiMatchSameInitial, "막상", "강수"},
		{ExactMatch, "맑음", "막막"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Alias(), func(t *testing.T) {
			t.Parallel()
			h := mustHint(t, tt.kind, '맑', First)
			assert.True(t, h.Compatible(hangul.MustParseWord(tt.accept)), "accept %s", tt.accept)
			assert.False(t, h.Compatible(hangul.MustParseWord(tt.reject)), "reject %s", tt.reject)
		})
	}
}

func TestCompatibleSecondPosition(t *testing.T) {
	t.Parallel()

	// direct syllable is the second one
	h := mustHint(t, MultiMatchSameInitial, '안', Second)
	assert.True(t, h.Compatible(hangul.MustParseWord("치아")))
	assert.False(t, h.Compatible(hangul.MustParseWord("아치")))

	h = mustHint(t, IndirectMatch, '안', Second)
	assert.True(t, h.Compatible(hangul.MustParseWord("바소")))
	assert.False(t, h.Compatible(hangul.MustParseWord("소바")))
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	for _, in := range []string{"", "apple", "Apple", "사과 ", "호박"} {
		_, err := ParseKind(in)
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ParseKind(%q): expected ErrUnknownKind, got %v", in, err)
		}
	}
}

func TestKindOrder(t *testing.T) {
	t.Parallel()

	want := []string{"사과", "바나나", "가지", "마늘", "버섯", "당근"}
	for i, k := range Kinds {
		assert.Equal(t, want[i], k.String())
		assert.Equal(t, Kind(i), k)
	}
	assert.Equal(t, "Mushroom", MultiMatchSameInitial.Alias())
}

func TestPositionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "first", First.String())
	assert.Equal(t, "second", Second.String())
	assert.Equal(t, "Position(7)", Position(7).String())
}

func TestNewRejectsInvalidRef(t *testing.T) {
	t.Parallel()

	_, err := New(NoMatch, 'a', First)
	require.ErrorIs(t, err, hangul.ErrInvalidInput)

	_, err = New(Kind(9), '가', First)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestDeriveSelf(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"사과", "맑음", "광장", "가가"} {
		w := hangul.MustParseWord(s)
		p, err := Derive(w, w)
		require.NoError(t, err)
		k1, k2 := p.Kinds()
		assert.Equal(t, ExactMatch, k1, s)
		assert.Equal(t, ExactMatch, k2, s)
		assert.True(t, p.Compatible(w))
	}
}

func TestDerive(t *testing.T) {
	t.Parallel()

	p, err := Derive(hangul.MustParseWord("악마"), hangul.MustParseWord("맑음"))
	require.NoError(t, err)
	k1, k2 := p.Kinds()
	assert.Equal(t, MultiMatchDiffInitial, k1)
	// 음 = ㅇㅡㅁ; 마 has ㅁ, 악 has ㅇ
	assert.Equal(t, SingleMatch, k2)
	assert.Equal(t, hangul.MustParseWord("맑음"), p.Guess())
}

func TestDeriveRejectsInvalidWords(t *testing.T) {
	t.Parallel()

	_, err := Derive(hangul.Word{'a', '가'}, hangul.MustParseWord("가가"))
	require.ErrorIs(t, err, hangul.ErrInvalidWord)
}

func randomWord(r *rand.Rand) hangul.Word {
	return hangul.Word{
		rune(hangul.Base + r.IntN(hangul.Count)),
		rune(hangul.Base + r.IntN(hangul.Count)),
	}
}

func TestKindsExhaustiveAndExclusive(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20000; i++ {
		truth, guess := randomWord(r), randomWord(r)
		if i%7 == 0 {
			// share syllables often enough to hit the multi-match kinds
			guess[0] = truth[0]
		}
		for pos := First; pos <= Second; pos++ {
			n := 0
			for _, k := range Kinds {
				h := Hint{kind: k, ref: guess[pos], pos: pos, set: hangul.SetOf(guess[pos])}
				if h.Compatible(truth) {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("truth %s guess %s pos %s: %d kinds compatible", truth, guess, pos, n)
			}
		}
	}
}

func TestDeriveKeyMatchesDerive(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 5000; i++ {
		truth, guess := randomWord(r), randomWord(r)
		p, err := Derive(truth, guess)
		require.NoError(t, err)
		require.Equal(t, p.Key(), DeriveKey(truth, guess))
		require.True(t, p.Compatible(truth))
	}
}

func TestParsePair(t *testing.T) {
	t.Parallel()

	g := hangul.MustParseWord("맑음")
	p, err := ParsePair(g, "당근", "바나나")
	require.NoError(t, err)
	assert.True(t, p.Compatible(hangul.MustParseWord("맑다")))
	assert.False(t, p.Compatible(hangul.MustParseWord("맑음")))

	_, err = ParsePair(g, "당근", "pumpkin")
	require.ErrorIs(t, err, ErrUnknownKind)
}
