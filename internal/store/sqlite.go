package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/memkeep/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db             *sql.DB
	entropy        *rand.Rand
	defaultProject string
	searchLimit    int
}

var _ Store = (*SQLiteStore)(nil)

// Options configure store defaults taken from process configuration.
type Options struct {
	DefaultProject string
	SearchLimit    int
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string, opts Options) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if opts.DefaultProject == "" {
		opts.DefaultProject = "default"
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 20
	}

	s := &SQLiteStore{
		db:             db,
		entropy:        rand.New(rand.NewSource(time.Now().UnixNano())),
		defaultProject: opts.DefaultProject,
		searchLimit:    opts.SearchLimit,
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
	CREATE TABLE IF NOT EXISTS memories (
		id              TEXT PRIMARY KEY,
		project_name    TEXT NOT NULL,
		category        TEXT NOT NULL,
		content         TEXT NOT NULL,
		tags            TEXT,
		importance      INTEGER NOT NULL DEFAULT 5,
		context         TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL,
		accessed_at     TEXT,
		access_count    INTEGER NOT NULL DEFAULT 0,
		is_archived     INTEGER NOT NULL DEFAULT 0,
		archived_at     TEXT,
		archived_reason TEXT,
		search_text     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_memories_project_category ON memories(project_name, category);
	CREATE INDEX IF NOT EXISTS idx_memories_created ON memories(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_memories_importance ON memories(importance);
	CREATE INDEX IF NOT EXISTS idx_memories_archived ON memories(is_archived);
	CREATE INDEX IF NOT EXISTS idx_memories_project_archived ON memories(project_name, is_archived);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Create(ctx context.Context, p CreateParams) (*model.Memory, error) {
	if strings.TrimSpace(p.Content) == "" {
		return nil, fmt.Errorf("content is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return nil, fmt.Errorf("category is required")
	}

	now := time.Now().UTC()
	m := &model.Memory{
		ID:          s.newID(),
		ProjectName: p.Project,
		Category:    p.Category,
		Content:     p.Content,
		Tags:        model.NormalizeTags(p.Tags),
		Importance:  p.Importance,
		Context:     p.Context,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if m.ProjectName == "" {
		m.ProjectName = s.defaultProject
	}
	if m.Importance == 0 {
		m.Importance = model.DefaultImportance
	}
	m.SearchText = model.DeriveSearchText(m.Content, m.Category, m.Tags)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO memories (id, project_name, category, content, tags, importance, context,
		                       created_at, updated_at, access_count, is_archived, search_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?)`,
		m.ID, m.ProjectName, m.Category, m.Content, jsonOrNull(m.Tags), m.Importance,
		jsonOrNull(m.Context), now.Format(time.RFC3339), now.Format(time.RFC3339), m.SearchText)
	if err != nil {
		return nil, fmt.Errorf("insert memory: %w", err)
	}
	return m, nil
}

const memoryColumns = `id, project_name, category, content, tags, importance, context,
	created_at, updated_at, accessed_at, access_count, is_archived, archived_at, archived_reason, search_text`

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Memory, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+memoryColumns+` FROM memories WHERE id = ?`, id)
	m, err := scanMemory(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SQLiteStore) TouchAccess(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return touchTx(ctx, s.db, ids)
}

// execer covers *sql.DB and *sql.Tx for shared statements.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func touchTx(ctx context.Context, db execer, ids []string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	args := make([]any, 0, len(ids)+1)
	args = append(args, now)
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := db.ExecContext(ctx,
		`UPDATE memories SET accessed_at = ?, access_count = access_count + 1
		 WHERE id IN (`+placeholders(len(ids))+`)`, args...)
	return err
}

func (s *SQLiteStore) Update(ctx context.Context, p UpdateParams) (*model.Memory, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+memoryColumns+` FROM memories WHERE id = ?`, p.ID)
	m, err := scanMemory(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.Tags != nil {
		m.Tags = model.NormalizeTags(p.Tags)
	}
	if p.Importance != nil {
		m.Importance = *p.Importance
	}
	if p.Content != nil || p.Tags != nil {
		m.SearchText = model.DeriveSearchText(m.Content, m.Category, m.Tags)
	}
	m.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx,
		`UPDATE memories SET content = ?, tags = ?, importance = ?, updated_at = ?, search_text = ?
		 WHERE id = ?`,
		m.Content, jsonOrNull(m.Tags), m.Importance, m.UpdatedAt.Format(time.RFC3339), m.SearchText, m.ID)
	if err != nil {
		return nil, fmt.Errorf("update memory: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM memories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Memory, error) {
	where := []string{"1=1"}
	var args []any
	if !p.IncludeArchived {
		where = append(where, "is_archived = 0")
	}
	if p.Project != "" {
		where = append(where, "project_name = ?")
		args = append(args, p.Project)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+memoryColumns+` FROM memories WHERE `+strings.Join(where, " AND ")+` ORDER BY created_at`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMemories(rows)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMemory(row scanner) (model.Memory, error) {
	var m model.Memory
	var tagsJSON, contextJSON, accessedAt, archivedAt, archivedReason sql.NullString
	var createdAt, updatedAt string
	var archived int

	err := row.Scan(
		&m.ID, &m.ProjectName, &m.Category, &m.Content, &tagsJSON, &m.Importance,
		&contextJSON, &createdAt, &updatedAt, &accessedAt, &m.AccessCount,
		&archived, &archivedAt, &archivedReason, &m.SearchText,
	)
	if err != nil {
		return m, err
	}

	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	m.IsArchived = archived != 0
	if accessedAt.Valid {
		t, _ := time.Parse(time.RFC3339, accessedAt.String)
		m.AccessedAt = &t
	}
	if archivedAt.Valid {
		t, _ := time.Parse(time.RFC3339, archivedAt.String)
		m.ArchivedAt = &t
	}
	if archivedReason.Valid {
		m.ArchivedReason = archivedReason.String
	}
	if tagsJSON.Valid {
		json.Unmarshal([]byte(tagsJSON.String), &m.Tags)
	}
	if contextJSON.Valid {
		json.Unmarshal([]byte(contextJSON.String), &m.Context)
	}
	return m, nil
}

func collectMemories(rows *sql.Rows) ([]model.Memory, error) {
	var memories []model.Memory
	for rows.Next() {
		m, err := scanMemory(rows)
		if err != nil {
			return nil, err
		}
		memories = append(memories, m)
	}
	return memories, rows.Err()
}

// jsonOrNull marshals tags/context for storage; empty values store as
// NULL so absent and empty are indistinguishable, matching the model.
func jsonOrNull(v any) any {
	switch x := v.(type) {
	case []string:
		if len(x) == 0 {
			return nil
		}
	case map[string]any:
		if len(x) == 0 {
			return nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return string(b)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
