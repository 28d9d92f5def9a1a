package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Jaesu26/pairrot-solver/internal/model"
)

// CreateSession starts a new game record.
func (s *SQLiteStore) CreateSession(ctx context.Context) (*model.Session, error) {
	now := time.Now().UTC()
	id := s.newID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at) VALUES (?, ?)`,
		id, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return &model.Session{ID: id, CreatedAt: now}, nil
}

// AppendTurn records feedback on a session. Sequence numbers start at 1.
func (s *SQLiteStore) AppendTurn(ctx context.Context, p TurnParams) (*model.Turn, error) {
	if !model.ValidTurnKinds[p.Kind] {
		return nil, fmt.Errorf("invalid turn kind %q", p.Kind)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var finished sql.NullString
	err = tx.QueryRowContext(ctx, `SELECT finished_at FROM sessions WHERE id = ?`, p.SessionID).Scan(&finished)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s: %w", p.SessionID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if finished.Valid {
		return nil, fmt.Errorf("session %s is finished", p.SessionID)
	}

	var seq int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM turns WHERE session_id = ?`, p.SessionID).Scan(&seq); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO turns (session_id, seq, kind, guess, first, second, jamo, remaining, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.SessionID, seq, p.Kind, nullable(p.Guess), nullable(p.First), nullable(p.Second),
		nullable(p.Jamo), p.Remaining, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert turn: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Turn{
		Seq:       seq,
		Kind:      p.Kind,
		Guess:     p.Guess,
		First:     p.First,
		Second:    p.Second,
		Jamo:      p.Jamo,
		Remaining: p.Remaining,
		CreatedAt: now,
	}, nil
}

// FinishSession marks a session solved with the given answer.
func (s *SQLiteStore) FinishSession(ctx context.Context, id, answer string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET finished_at = ?, answer = ? WHERE id = ? AND finished_at IS NULL`,
		now, answer, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("open session %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetSession retrieves a session with its turns in order.
func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*model.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT s.id, s.created_at, s.finished_at, s.answer,
		        (SELECT COUNT(*) FROM turns t WHERE t.session_id = s.id)
		 FROM sessions s WHERE s.id = ?`, id)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, kind, guess, first, second, jamo, remaining, created_at
		 FROM turns WHERE session_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		t, err := scanTurn(rows)
		if err != nil {
			return nil, err
		}
		sess.Turns = append(sess.Turns, t)
	}
	return &sess, rows.Err()
}

// ListSessions lists sessions newest first, without turns.
func (s *SQLiteStore) ListSessions(ctx context.Context, limit int, openOnly bool) ([]model.Session, error) {
	if limit <= 0 {
		limit = 20
	}
	where := ""
	if openOnly {
		where = "WHERE s.finished_at IS NULL"
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT s.id, s.created_at, s.finished_at, s.answer,
		       (SELECT COUNT(*) FROM turns t WHERE t.session_id = s.id)
		FROM sessions s %s
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT ?`, where), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// RmSession deletes a session and its turns.
func (s *SQLiteStore) RmSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanSession(row scanner) (model.Session, error) {
	var sess model.Session
	var createdAt string
	var finishedAt, answer sql.NullString
	if err := row.Scan(&sess.ID, &createdAt, &finishedAt, &answer, &sess.TurnCount); err != nil {
		return sess, err
	}
	sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if finishedAt.Valid {
		t, _ := time.Parse(time.RFC3339, finishedAt.String)
		sess.FinishedAt = &t
	}
	if answer.Valid {
		sess.Answer = answer.String
	}
	return sess, nil
}

func scanTurn(row scanner) (model.Turn, error) {
	var t model.Turn
	var guess, first, second, jamo sql.NullString
	var createdAt string
	if err := row.Scan(&t.Seq, &t.Kind, &guess, &first, &second, &jamo, &t.Remaining, &createdAt); err != nil {
		return t, err
	}
	t.Guess = guess.String
	t.First = first.String
	t.Second = second.String
	t.Jamo = jamo.String
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return t, nil
}
