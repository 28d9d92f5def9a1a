// Package vocab holds the labelled word list the solver draws candidates from.
package vocab

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
)

// ErrInvalidLabel is returned for a label outside the four known values.
var ErrInvalidLabel = errors.New("invalid label")

// Label classifies whether a word may be an answer.
type Label string

const (
	Possible        Label = "possible"
	Impossible      Label = "impossible"
	MaybePossible   Label = "maybe_possible"
	MaybeImpossible Label = "maybe_impossible"
)

// Labels lists every valid label.
var Labels = []Label{Possible, Impossible, MaybePossible, MaybeImpossible}

func (l Label) IsValid() bool {
	switch l {
	case Possible, Impossible, MaybePossible, MaybeImpossible:
		return true
	}
	return false
}

func (l Label) String() string { return string(l) }

// ParseLabel validates s as a label.
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	return l, nil
}

// Eligible reports whether a word with label l enters the candidate pool.
func (l Label) Eligible(includeMaybe bool) bool {
	return l == Possible || (includeMaybe && l == MaybePossible)
}

// Vocabulary is a read-only word to label mapping. The zero value is empty.
type Vocabulary struct {
	labels map[hangul.Word]Label
}

// New copies m into a vocabulary. Every label must be valid.
func New(m map[hangul.Word]Label) (Vocabulary, error) {
	out := make(map[hangul.Word]Label, len(m))
	for w, l := range m {
		if !w.Valid() {
			return Vocabulary{}, fmt.Errorf("%w: %s", hangul.ErrInvalidWord, w)
		}
		if !l.IsValid() {
			return Vocabulary{}, fmt.Errorf("%s: %w: %q", w, ErrInvalidLabel, l)
		}
		out[w] = l
	}
	return Vocabulary{labels: out}, nil
}

// Len returns the number of words.
func (v Vocabulary) Len() int { return len(v.labels) }

// Get returns the label of w.
func (v Vocabulary) Get(w hangul.Word) (Label, bool) {
	l, ok := v.labels[w]
	return l, ok
}

// Words returns every word in order.
func (v Vocabulary) Words() []hangul.Word {
	return slices.SortedFunc(maps.Keys(v.labels), hangul.Word.Compare)
}

// Eligible returns, in order, the words that may be answers. Words labelled
// maybe_possible are included only when includeMaybe is set.
func (v Vocabulary) Eligible(includeMaybe bool) []hangul.Word {
	out := make([]hangul.Word, 0, len(v.labels))
	for w, l := range v.labels {
		if l.Eligible(includeMaybe) {
			out = append(out, w)
		}
	}
	slices.SortFunc(out, hangul.Word.Compare)
	return out
}

// Counts returns the number of words per label.
func (v Vocabulary) Counts() map[Label]int {
	out := make(map[Label]int, len(Labels))
	for _, l := range v.labels {
		out[l]++
	}
	return out
}

// Entry is a single word with its label.
type Entry struct {
	Word  hangul.Word `json:"word"`
	Label Label       `json:"label"`
}

// Entries returns every (word, label) in word order.
func (v Vocabulary) Entries() []Entry {
	ws := v.Words()
	out := make([]Entry, len(ws))
	for i, w := range ws {
		out[i] = Entry{Word: w, Label: v.labels[w]}
	}
	return out
}

// Merge returns a new vocabulary with entries applied on top of v. Later entries win.
func (v Vocabulary) Merge(entries ...Entry) (Vocabulary, error) {
	m := maps.Clone(v.labels)
	if m == nil {
		m = make(map[hangul.Word]Label, len(entries))
	}
	for _, e := range entries {
		m[e.Word] = e.Label
	}
	return New(m)
}

// WithLabel pairs every word with label.
func WithLabel(words []hangul.Word, label Label) []Entry {
	out := make([]Entry, len(words))
	for i, w := range words {
		out[i] = Entry{Word: w, Label: label}
	}
	return out
}
