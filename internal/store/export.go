package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rcliao/memkeep/internal/model"
)

// ExportAll returns every memory (archived included), optionally
// filtered by project, ordered by id.
func (s *SQLiteStore) ExportAll(ctx context.Context, project string) ([]model.Memory, error) {
	query := `SELECT ` + memoryColumns + ` FROM memories`
	var args []any
	if project != "" {
		query += ` WHERE project_name = ?`
		args = append(args, project)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMemories(rows)
}

// Clear removes every memory. Used by replace-mode import.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM memories`)
	return err
}

// InsertRaw inserts a memory preserving its id and timestamps, as
// read from an export document. The caller owns dedup decisions.
func (s *SQLiteStore) InsertRaw(ctx context.Context, m model.Memory) error {
	if m.SearchText == "" {
		m.SearchText = model.DeriveSearchText(m.Content, m.Category, m.Tags)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO memories (id, project_name, category, content, tags, importance, context,
		                       created_at, updated_at, accessed_at, access_count,
		                       is_archived, archived_at, archived_reason, search_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ProjectName, m.Category, m.Content, jsonOrNull(m.Tags), m.Importance,
		jsonOrNull(m.Context), m.CreatedAt.UTC().Format(time.RFC3339),
		m.UpdatedAt.UTC().Format(time.RFC3339), timeOrNull(m.AccessedAt), m.AccessCount,
		boolToInt(m.IsArchived), timeOrNull(m.ArchivedAt), stringOrNull(m.ArchivedReason), m.SearchText)
	return err
}

// HasID reports whether a memory with the given id exists.
func (s *SQLiteStore) HasID(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM memories WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func timeOrNull(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func stringOrNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
