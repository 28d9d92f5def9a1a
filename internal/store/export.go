package store

import (
	"context"
	"fmt"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

// ExportAll returns every stored word as a vocabulary, optionally restricted to one label.
func (s *SQLiteStore) ExportAll(ctx context.Context, label string) (vocab.Vocabulary, error) {
	entries, err := s.List(ctx, ListParams{Label: label})
	if err != nil {
		return vocab.Vocabulary{}, err
	}
	m := make(map[hangul.Word]vocab.Label, len(entries))
	for _, e := range entries {
		w, err := hangul.ParseWord(e.Word)
		if err != nil {
			return vocab.Vocabulary{}, fmt.Errorf("stored word %q: %w", e.Word, err)
		}
		m[w] = vocab.Label(e.Label)
	}
	return vocab.New(m)
}

// Import stores every word of v with its label. Existing words are relabelled.
func (s *SQLiteStore) Import(ctx context.Context, v vocab.Vocabulary) (int, error) {
	byLabel := map[vocab.Label][]string{}
	for _, e := range v.Entries() {
		byLabel[e.Label] = append(byLabel[e.Label], e.Word.String())
	}

	imported := 0
	for _, l := range vocab.Labels {
		words := byLabel[l]
		if len(words) == 0 {
			continue
		}
		n, err := s.Put(ctx, PutParams{Words: words, Label: string(l)})
		if err != nil {
			return imported, err
		}
		imported += n
	}
	return imported, nil
}
