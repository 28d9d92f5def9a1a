package store

import (
	"context"
	"strings"

	"github.com/Jaesu26/pairrot-solver/internal/model"
)

// SearchParams holds parameters for searching words.
type SearchParams struct {
	Query string
	Label string
	Limit int
}

// Search finds words containing the query substring. A query that is a single
// syllable matches either position.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Entry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{`word LIKE ? ESCAPE '\'`}
	args := []interface{}{"%" + escapeLike(strings.TrimSpace(p.Query)) + "%"}

	if p.Label != "" {
		where = append(where, "label = ?")
		args = append(args, p.Label)
	}

	query := `SELECT word, label, updated_at FROM words
	          WHERE ` + strings.Join(where, " AND ") + `
	          ORDER BY word LIMIT ?`
	args = append(args, limit)

	return s.queryEntries(ctx, query, args...)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
