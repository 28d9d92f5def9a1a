package vocab

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
)

const sample = `{
    "가지": "impossible",
    "사과": "possible",
    "당근": "maybe_possible",
    "마늘": "maybe_impossible"
}`

func TestDecodeAndEligible(t *testing.T) {
	t.Parallel()

	v, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())

	l, ok := v.Get(hangul.MustParseWord("가지"))
	assert.True(t, ok)
	assert.Equal(t, Impossible, l)

	withMaybe := v.Eligible(true)
	assert.Equal(t, []hangul.Word{hangul.MustParseWord("당근"), hangul.MustParseWord("사과")}, withMaybe)

	without := v.Eligible(false)
	assert.Equal(t, []hangul.Word{hangul.MustParseWord("사과")}, without)
}

func TestDecodeRejectsBadEntries(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"사과": "certain"}`))
	require.ErrorIs(t, err, ErrInvalidLabel)

	_, err = Decode(strings.NewReader(`{"바나나": "possible"}`))
	require.ErrorIs(t, err, hangul.ErrInvalidWord)

	_, err = Decode(strings.NewReader(`[`))
	require.Error(t, err)
}

func TestEncodeSortedIndented(t *testing.T) {
	t.Parallel()

	v, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, v))
	want := "{\n" +
		"    \"가지\": \"impossible\",\n" +
		"    \"당근\": \"maybe_possible\",\n" +
		"    \"마늘\": \"maybe_impossible\",\n" +
		"    \"사과\": \"possible\"\n" +
		"}\n"
	assert.Equal(t, want, buf.String())

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, v.Entries(), back.Entries())
}

func TestMergeOverwrites(t *testing.T) {
	t.Parallel()

	v, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	merged, err := v.Merge(WithLabel([]hangul.Word{
		hangul.MustParseWord("가지"),
		hangul.MustParseWord("버섯"),
	}, Possible)...)
	require.NoError(t, err)

	assert.Equal(t, 5, merged.Len())
	l, _ := merged.Get(hangul.MustParseWord("가지"))
	assert.Equal(t, Possible, l)

	// receiver untouched
	l, _ = v.Get(hangul.MustParseWord("가지"))
	assert.Equal(t, Impossible, l)

	_, err = v.Merge(Entry{Word: hangul.MustParseWord("호박"), Label: "nope"})
	require.ErrorIs(t, err, ErrInvalidLabel)
}

func TestReadWordList(t *testing.T) {
	t.Parallel()

	in := "사과\n\n  당근  \n# comment\n사과\n바나나\n마늘\n"
	words, err := ReadWordList(strings.NewReader(in))
	require.ErrorIs(t, err, hangul.ErrInvalidWord)
	assert.Contains(t, err.Error(), "line 6")
	assert.Equal(t, []hangul.Word{
		hangul.MustParseWord("사과"),
		hangul.MustParseWord("당근"),
		hangul.MustParseWord("마늘"),
	}, words)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	v := Default()
	assert.Greater(t, v.Len(), 100)
	counts := v.Counts()
	for _, l := range Labels {
		assert.Positive(t, counts[l], l)
	}
	assert.NotEmpty(t, v.Eligible(false))
}

func TestParseLabel(t *testing.T) {
	t.Parallel()

	for _, l := range Labels {
		got, err := ParseLabel(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := ParseLabel("Possible")
	require.ErrorIs(t, err, ErrInvalidLabel)
}
