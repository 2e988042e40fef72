package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rcliao/memkeep/internal/model"
)

// ListProjects returns every project with its memory count and the
// most recent creation time, ordered by count descending.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]ProjectInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT project_name, COUNT(*) AS memory_count, MAX(created_at) AS last_updated
		FROM memories
		GROUP BY project_name ORDER BY memory_count DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []ProjectInfo
	for rows.Next() {
		var p ProjectInfo
		var last sql.NullString
		if err := rows.Scan(&p.Project, &p.MemoryCount, &last); err != nil {
			return nil, err
		}
		if last.Valid {
			t, _ := time.Parse(time.RFC3339, last.String)
			p.LastUpdated = &t
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CategoryCounts returns per-category memory counts for a project.
func (s *SQLiteStore) CategoryCounts(ctx context.Context, project string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM memories WHERE project_name = ? GROUP BY category`, project)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		counts[cat] = n
	}
	return counts, rows.Err()
}

// Recent returns the n most recently created memories for a project.
func (s *SQLiteStore) Recent(ctx context.Context, project string, n int) ([]model.Memory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+memoryColumns+` FROM memories WHERE project_name = ?
		 ORDER BY created_at DESC LIMIT ?`, project, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMemories(rows)
}

// Important returns a project's memories at or above the given
// importance, highest first.
func (s *SQLiteStore) Important(ctx context.Context, project string, minImportance int) ([]model.Memory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+memoryColumns+` FROM memories WHERE project_name = ? AND importance >= ?
		 ORDER BY importance DESC`, project, minImportance)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMemories(rows)
}
