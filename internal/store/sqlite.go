package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/model"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS words (
		word       TEXT PRIMARY KEY,
		label      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_words_label ON words(label);

	CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		created_at  TEXT NOT NULL,
		finished_at TEXT,
		answer      TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);

	CREATE TABLE IF NOT EXISTS turns (
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		kind       TEXT NOT NULL,
		guess      TEXT,
		first      TEXT,
		second     TEXT,
		jamo       TEXT,
		remaining  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		PRIMARY KEY (session_id, seq)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (int, error) {
	label, err := vocab.ParseLabel(p.Label)
	if err != nil {
		return 0, err
	}

	words := make([]string, 0, len(p.Words))
	for _, raw := range p.Words {
		w, err := hangul.ParseWord(raw)
		if err != nil {
			return 0, err
		}
		words = append(words, w.String())
	}

	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO words (word, label, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET label = excluded.label, updated_at = excluded.updated_at`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, w, string(label), now); err != nil {
			return 0, fmt.Errorf("put word %s: %w", w, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(words), nil
}

func (s *SQLiteStore) Get(ctx context.Context, word string) (*model.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT word, label, updated_at FROM words WHERE word = ?`, strings.TrimSpace(word))
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("word %s: %w", word, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Entry, error) {
	query := `SELECT word, label, updated_at FROM words`
	var args []interface{}

	if p.Label != "" {
		query += ` WHERE label = ?`
		args = append(args, p.Label)
	}
	query += ` ORDER BY word`
	if p.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, p.Limit)
	}

	return s.queryEntries(ctx, query, args...)
}

func (s *SQLiteStore) Rm(ctx context.Context, words []string) (int, error) {
	deleted := 0
	for _, w := range words {
		res, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE word = ?`, strings.TrimSpace(w))
		if err != nil {
			return deleted, err
		}
		n, _ := res.RowsAffected()
		deleted += int(n)
	}
	if deleted == 0 && len(words) > 0 {
		return 0, fmt.Errorf("word %s: %w", strings.Join(words, ","), ErrNotFound)
	}
	return deleted, nil
}

// Vocabulary loads every stored word into an in-memory vocabulary.
func (s *SQLiteStore) Vocabulary(ctx context.Context) (vocab.Vocabulary, error) {
	entries, err := s.List(ctx, ListParams{})
	if err != nil {
		return vocab.Vocabulary{}, err
	}
	m := make(map[hangul.Word]vocab.Label, len(entries))
	for _, e := range entries {
		w, err := hangul.ParseWord(e.Word)
		if err != nil {
			return vocab.Vocabulary{}, err
		}
		m[w] = vocab.Label(e.Label)
	}
	return vocab.New(m)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) queryEntries(ctx context.Context, query string, args ...interface{}) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	var updatedAt string
	if err := row.Scan(&e.Word, &e.Label, &updatedAt); err != nil {
		return e, err
	}
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return e, nil
}
