package hangul

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"각", "ㄱㅏㄱ"},
		{"강", "ㄱㅏㅇ"},
		{"갉", "ㄱㅏㄹㄱ"},
		{"광", "ㄱㅗㅏㅇ"},
		{"가", "ㄱㅏ"},
		{"의", "ㅇㅡㅣ"},
		{"뷁", "ㅂㅜㅔㄹㄱ"},
		{"힣", "ㅎㅣㅎ"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := Decompose(tt.in)
			require.NoError(t, err)
			assert.Equal(t, []Jamo(tt.want), got)
		})
	}
}

func TestDecomposeInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "a", "가나", "ㄱ", "ㅏ", "A가"} {
		_, err := Decompose(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Decompose(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestDecomposeAllSyllables(t *testing.T) {
	t.Parallel()

	isInitial := map[Jamo]bool{}
	for _, j := range initials {
		isInitial[j] = true
	}
	for r := rune(Base); r < Base+Count; r++ {
		got, err := DecomposeRune(r)
		if err != nil {
			t.Fatalf("%q: %v", r, err)
		}
		if len(got) < 2 || len(got) > 5 {
			t.Fatalf("%q: unexpected length %d", r, len(got))
		}
		if !isInitial[got[0]] {
			t.Fatalf("%q: first jamo %q is not an initial", r, got[0])
		}
		if got[0] != InitialOf(r) {
			t.Fatalf("%q: InitialOf mismatch", r)
		}
		var s Set
		for _, j := range got {
			s = s.Add(j)
		}
		if s != SetOf(r) {
			t.Fatalf("%q: SetOf mismatch", r)
		}
	}
}

func TestDecomposeReturnsFreshSlice(t *testing.T) {
	t.Parallel()

	a, _ := Decompose("갉")
	a[0] = 'ㅎ'
	b, _ := Decompose("갉")
	assert.Equal(t, Jamo('ㄱ'), b[0])
}

func TestSlots(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Jamo('ㄱ'), InitialOf('강'))
	assert.Equal(t, Jamo('ㅇ'), InitialOf('안'))
	assert.Equal(t, Jamo('ㅏ'), MedialOf('강'))
	assert.Equal(t, Jamo('ㅏ'), MedialOf('안'))
	assert.Equal(t, Jamo('ㅇ'), FinalOf('강'))
	assert.Equal(t, Jamo('ㄴ'), FinalOf('안'))
	assert.Equal(t, Jamo(0), FinalOf('가'))
	assert.Equal(t, Jamo('ㄺ'), FinalOf('갉'))
	assert.Equal(t, Jamo('ㅘ'), MedialOf('광'))
}

func TestIsHangul(t *testing.T) {
	t.Parallel()

	assert.True(t, IsHangul('가'))
	assert.True(t, IsHangul('힣'))
	assert.False(t, IsHangul('ㄱ'))
	assert.False(t, IsHangul('a'))
	assert.True(t, IsHangulString("한"))
	assert.False(t, IsHangulString("한글"))
	assert.False(t, IsHangulString(""))
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := SetOf('맑')
	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Has('ㅁ'))
	assert.True(t, s.Has('ㄱ'))
	assert.False(t, s.Has('ㅗ'))
	assert.Equal(t, 1, s.Intersect(SetOf('고')).Len())
	assert.Equal(t, "ㄱㄹㅁㅏ", s.String())

	// repeated jamo collapse
	assert.Equal(t, 3, SetOf('갉').Len())
}

func TestParseJamo(t *testing.T) {
	t.Parallel()

	j, err := ParseJamo("ㄹ")
	require.NoError(t, err)
	assert.Equal(t, Jamo('ㄹ'), j)

	for _, in := range []string{"", "가", "ㄹㄹ", "r"} {
		_, err := ParseJamo(in)
		require.ErrorIs(t, err, ErrInvalidInput, in)
	}
}
