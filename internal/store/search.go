package store

import (
	"context"
	"strings"

	"github.com/rcliao/memkeep/internal/model"
)

// Search filters and orders memories: importance descending, then
// created_at descending. Archived memories are excluded unless the
// caller opts in. The query matches when the lowercase query is a
// substring of search_text or a case-insensitive substring of content
// (SQLite LIKE is ASCII case-insensitive).
//
// The read phase computes the result set; when Touch is set, the
// access-bookkeeping batch runs in the same transaction so the two
// persist atomically.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Memory, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = s.searchLimit
	}

	where := []string{"1=1"}
	var args []any
	if !p.IncludeArchived {
		where = append(where, "is_archived = 0")
	}
	if p.Project != "" {
		where = append(where, "project_name = ?")
		args = append(args, p.Project)
	}
	if p.Category != "" {
		where = append(where, "category = ?")
		args = append(args, p.Category)
	}
	if p.Query != "" {
		where = append(where, "(search_text LIKE ? OR content LIKE ?)")
		args = append(args, "%"+strings.ToLower(p.Query)+"%", "%"+p.Query+"%")
	}
	args = append(args, limit)

	query := `SELECT ` + memoryColumns + ` FROM memories
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY importance DESC, created_at DESC
		LIMIT ?`

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	memories, err := collectMemories(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if p.Touch && len(memories) > 0 {
		ids := make([]string, len(memories))
		for i, m := range memories {
			ids[i] = m.ID
		}
		if err := touchTx(ctx, tx, ids); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return memories, nil
}
