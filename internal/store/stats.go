package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath       string       `json:"db_path"`
	DBSizeBytes  int64        `json:"db_size_bytes"`
	TotalWords   int          `json:"total_words"`
	Labels       []LabelStats `json:"labels"`
	Sessions     int          `json:"sessions"`
	OpenSessions int          `json:"open_sessions"`
	Turns        int          `json:"turns"`
}

// LabelStats holds per-label counts.
type LabelStats struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&st.TotalWords)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&st.Sessions)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE finished_at IS NULL`).Scan(&st.OpenSessions)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM turns`).Scan(&st.Turns)

	rows, err := s.db.QueryContext(ctx, `
		SELECT label, COUNT(*) as cnt
		FROM words
		GROUP BY label ORDER BY cnt DESC, label`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ls LabelStats
		rows.Scan(&ls.Label, &ls.Count)
		st.Labels = append(st.Labels, ls)
	}

	return st, nil
}
