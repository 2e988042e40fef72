package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath           string        `json:"db_path"`
	DBSizeBytes      int64         `json:"db_size_bytes"`
	TotalMemories    int           `json:"total_memories"`
	ActiveMemories   int           `json:"active_memories"`
	ArchivedMemories int           `json:"archived_memories"`
	Projects         []ProjectInfo `json:"projects"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memories`).Scan(&st.TotalMemories)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memories WHERE is_archived = 0`).Scan(&st.ActiveMemories)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memories WHERE is_archived = 1`).Scan(&st.ArchivedMemories)

	projects, err := s.ListProjects(ctx)
	if err != nil {
		return st, err
	}
	st.Projects = projects
	return st, nil
}
