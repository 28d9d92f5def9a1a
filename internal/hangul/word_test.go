package hangul

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	t.Parallel()

	w, err := ParseWord(" 사과\n")
	require.NoError(t, err)
	assert.Equal(t, Word{'사', '과'}, w)
	assert.Equal(t, "사과", w.String())

	for _, in := range []string{"", "사", "바나나", "ab", "사a", "ㅅㄱ"} {
		_, err := ParseWord(in)
		if !errors.Is(err, ErrInvalidWord) {
			t.Errorf("ParseWord(%q): expected ErrInvalidWord, got %v", in, err)
		}
	}
}

func TestWordCompare(t *testing.T) {
	t.Parallel()

	a, b := MustParseWord("가나"), MustParseWord("가다")
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, MustParseWord("나가").Compare(b))
}

func TestWordJSONKey(t *testing.T) {
	t.Parallel()

	m := map[Word]string{MustParseWord("사과"): "possible"}
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"사과":"possible"}`, string(b))

	var back map[Word]string
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, m, back)

	require.Error(t, json.Unmarshal([]byte(`{"사":"possible"}`), &back))
}

func TestWordContains(t *testing.T) {
	t.Parallel()

	w := MustParseWord("맑음")
	assert.True(t, w.Contains('ㄹ'))
	assert.True(t, w.Contains('ㅡ'))
	assert.False(t, w.Contains('ㅂ'))
}

func TestFrequency(t *testing.T) {
	t.Parallel()

	words := []Word{MustParseWord("갉다"), MustParseWord("가나")}
	f := FrequencyOf(words)
	// 갉 = ㄱㅏㄹㄱ, 다 = ㄷㅏ, 가 = ㄱㅏ, 나 = ㄴㅏ
	assert.Equal(t, 3, f.Of('ㄱ'))
	assert.Equal(t, 4, f.Of('ㅏ'))
	assert.Equal(t, 1, f.Of('ㄹ'))
	assert.Equal(t, 0, f.Of('ㅎ'))

	// distinct jamo of 갉다: ㄱ ㅏ ㄹ ㄷ
	assert.Equal(t, 3+4+1+1, f.Score(words[0]))
}
