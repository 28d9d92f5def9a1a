package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	n, err := s.Put(ctx, PutParams{Words: []string{"사과", " 당근 "}, Label: "possible"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 written, got %d", n)
	}

	got, err := s.Get(ctx, "당근")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Label != "possible" {
		t.Errorf("expected 'possible', got %q", got.Label)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("expected updated_at to be set")
	}
}

func TestPutRelabels(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Words: []string{"사과"}, Label: "possible"})
	s.Put(ctx, PutParams{Words: []string{"사과"}, Label: "impossible"})

	got, _ := s.Get(ctx, "사과")
	if got.Label != "impossible" {
		t.Errorf("expected 'impossible', got %q", got.Label)
	}

	all, _ := s.List(ctx, ListParams{})
	if len(all) != 1 {
		t.Errorf("expected 1 word, got %d", len(all))
	}
}

func TestPutValidates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Put(ctx, PutParams{Words: []string{"사과"}, Label: "sure"}); !errors.Is(err, vocab.ErrInvalidLabel) {
		t.Errorf("expected ErrInvalidLabel, got %v", err)
	}
	if _, err := s.Put(ctx, PutParams{Words: []string{"사과", "바나나"}, Label: "possible"}); !errors.Is(err, hangul.ErrInvalidWord) {
		t.Errorf("expected ErrInvalidWord, got %v", err)
	}

	// nothing written when any word is invalid
	all, _ := s.List(ctx, ListParams{})
	if len(all) != 0 {
		t.Errorf("expected 0 words, got %d", len(all))
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Words: []string{"사과", "가지", "마늘"}, Label: "possible"})
	s.Put(ctx, PutParams{Words: []string{"당근"}, Label: "maybe_possible"})

	// List all, in word order
	all, _ := s.List(ctx, ListParams{})
	if len(all) != 4 {
		t.Fatalf("expected 4, got %d", len(all))
	}
	if all[0].Word != "가지" || all[3].Word != "사과" {
		t.Errorf("unexpected order: %s .. %s", all[0].Word, all[3].Word)
	}

	// List by label
	maybe, _ := s.List(ctx, ListParams{Label: "maybe_possible"})
	if len(maybe) != 1 || maybe[0].Word != "당근" {
		t.Errorf("expected [당근], got %v", maybe)
	}

	// Limit
	limited, _ := s.List(ctx, ListParams{Limit: 2})
	if len(limited) != 2 {
		t.Errorf("expected 2, got %d", len(limited))
	}
}

func TestRm(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Words: []string{"사과", "가지"}, Label: "possible"})
	n, err := s.Rm(ctx, []string{"사과"})
	if err != nil {
		t.Fatalf("rm: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted, got %d", n)
	}

	if _, err := s.Get(ctx, "사과"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after rm, got %v", err)
	}
	if _, err := s.Rm(ctx, []string{"사과"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second rm, got %v", err)
	}
}

func TestVocabulary(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Words: []string{"사과", "가지"}, Label: "possible"})
	s.Put(ctx, PutParams{Words: []string{"당근"}, Label: "maybe_possible"})
	s.Put(ctx, PutParams{Words: []string{"마늘"}, Label: "impossible"})

	v, err := s.Vocabulary(ctx)
	if err != nil {
		t.Fatalf("vocabulary: %v", err)
	}
	if v.Len() != 4 {
		t.Errorf("expected 4, got %d", v.Len())
	}
	if got := len(v.Eligible(true)); got != 3 {
		t.Errorf("expected 3 eligible with maybe, got %d", got)
	}
	if got := len(v.Eligible(false)); got != 2 {
		t.Errorf("expected 2 eligible without maybe, got %d", got)
	}
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)
	dst := newTestStore(t)

	n, err := src.Import(ctx, vocab.Default())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != vocab.Default().Len() {
		t.Errorf("expected %d imported, got %d", vocab.Default().Len(), n)
	}

	v, err := src.ExportAll(ctx, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := dst.Import(ctx, v); err != nil {
		t.Fatalf("import: %v", err)
	}

	back, _ := dst.ExportAll(ctx, "")
	if back.Len() != v.Len() {
		t.Errorf("expected %d after round trip, got %d", v.Len(), back.Len())
	}

	possible, _ := src.ExportAll(ctx, "possible")
	if possible.Len() != len(vocab.Default().Eligible(false)) {
		t.Errorf("label filter: got %d", possible.Len())
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "stats.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer s.Close()

	s.Put(ctx, PutParams{Words: []string{"사과", "가지"}, Label: "possible"})
	s.Put(ctx, PutParams{Words: []string{"마늘"}, Label: "impossible"})
	sess, _ := s.CreateSession(ctx)
	s.AppendTurn(ctx, TurnParams{SessionID: sess.ID, Kind: "ban", Guess: "마늘", First: "사과", Second: "사과", Remaining: 2})

	st, err := s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalWords != 3 {
		t.Errorf("expected 3 words, got %d", st.TotalWords)
	}
	if len(st.Labels) != 2 || st.Labels[0].Label != "possible" || st.Labels[0].Count != 2 {
		t.Errorf("unexpected label stats: %+v", st.Labels)
	}
	if st.Sessions != 1 || st.OpenSessions != 1 || st.Turns != 1 {
		t.Errorf("unexpected session stats: %+v", st)
	}
	if st.DBSizeBytes == 0 {
		t.Error("expected non-zero db size")
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}
