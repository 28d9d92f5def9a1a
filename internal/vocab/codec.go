package vocab

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
)

//go:embed default_vocab.json
var defaultVocab []byte

// Default returns the embedded seed vocabulary.
func Default() Vocabulary {
	v, err := Decode(bytes.NewReader(defaultVocab))
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary: %v", err))
	}
	return v
}

// Decode reads a JSON object mapping words to labels.
func Decode(r io.Reader) (Vocabulary, error) {
	var raw map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Vocabulary{}, fmt.Errorf("decode vocabulary: %w", err)
	}
	m := make(map[hangul.Word]Label, len(raw))
	var errs []error
	for k, l := range raw {
		w, err := hangul.ParseWord(k)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		label, err := ParseLabel(l)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
			continue
		}
		m[w] = label
	}
	if len(errs) > 0 {
		return Vocabulary{}, errors.Join(errs...)
	}
	return New(m)
}

// Encode writes v as a JSON object with keys in order and four-space indentation.
func Encode(w io.Writer, v Vocabulary) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	m := v.labels
	if m == nil {
		m = map[hangul.Word]Label{}
	}
	return enc.Encode(m)
}

// ReadWordList reads newline-delimited words. Blank lines and lines starting with
// '#' are skipped; duplicates keep their first position. Every invalid line is
// reported in the joined error, and the valid words are still returned.
func ReadWordList(r io.Reader) ([]hangul.Word, error) {
	seen := mapset.NewThreadUnsafeSet[hangul.Word]()
	var out []hangul.Word
	var errs []error

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w, err := hangul.ParseWord(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if seen.Add(w) {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("read word list: %w", err)
	}
	return out, errors.Join(errs...)
}
