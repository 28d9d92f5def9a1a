// Package store provides the vocabulary and session storage interface and its SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/Jaesu26/pairrot-solver/internal/model"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

// ErrNotFound is returned when a word or session does not exist.
var ErrNotFound = errors.New("not found")

// PutParams holds parameters for labelling words.
type PutParams struct {
	Words []string
	Label string
}

// ListParams holds parameters for listing words.
type ListParams struct {
	Label string
	Limit int // 0 means no limit
}

// TurnParams holds parameters for appending a turn to a session.
type TurnParams struct {
	SessionID string
	Kind      string
	Guess     string
	First     string
	Second    string
	Jamo      string
	Remaining int
}

// Store defines the vocabulary and session storage interface.
type Store interface {
	// Put inserts or relabels words. Returns the number written.
	Put(ctx context.Context, p PutParams) (int, error)

	// Get retrieves a single word.
	Get(ctx context.Context, word string) (*model.Entry, error)

	// List lists words in order, optionally filtered by label.
	List(ctx context.Context, p ListParams) ([]model.Entry, error)

	// Rm deletes words. Returns the number deleted.
	Rm(ctx context.Context, words []string) (int, error)

	// Vocabulary loads every stored word into memory.
	Vocabulary(ctx context.Context) (vocab.Vocabulary, error)

	// CreateSession starts a new game record.
	CreateSession(ctx context.Context) (*model.Session, error)

	// AppendTurn records feedback on a session.
	AppendTurn(ctx context.Context, p TurnParams) (*model.Turn, error)

	// GetSession retrieves a session with its turns.
	GetSession(ctx context.Context, id string) (*model.Session, error)

	// Close closes the store.
	Close() error
}
