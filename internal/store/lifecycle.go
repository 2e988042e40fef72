package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/rcliao/memkeep/internal/advisor"
	"github.com/rcliao/memkeep/internal/model"
)

// Archive transitions the given ids to archived. Missing ids are
// skipped silently; only the memories actually archived are returned.
func (s *SQLiteStore) Archive(ctx context.Context, ids []string, reason string) ([]model.Memory, error) {
	if reason == "" {
		reason = "Manual archival"
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	var archived []model.Memory
	for _, id := range ids {
		row := tx.QueryRowContext(ctx, `SELECT `+memoryColumns+` FROM memories WHERE id = ?`, id)
		m, err := scanMemory(row)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE memories SET is_archived = 1, archived_at = ?, archived_reason = ? WHERE id = ?`,
			now, reason, id)
		if err != nil {
			return nil, err
		}
		m.IsArchived = true
		t, _ := time.Parse(time.RFC3339, now)
		m.ArchivedAt = &t
		m.ArchivedReason = reason
		archived = append(archived, m)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return archived, nil
}

// Unarchive clears the archived state. Ids that are missing or not
// archived are skipped silently.
func (s *SQLiteStore) Unarchive(ctx context.Context, ids []string) ([]model.Memory, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var unarchived []model.Memory
	for _, id := range ids {
		row := tx.QueryRowContext(ctx, `SELECT `+memoryColumns+` FROM memories WHERE id = ?`, id)
		m, err := scanMemory(row)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !m.IsArchived {
			continue
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE memories SET is_archived = 0, archived_at = NULL, archived_reason = NULL WHERE id = ?`, id)
		if err != nil {
			return nil, err
		}
		m.IsArchived = false
		m.ArchivedAt = nil
		m.ArchivedReason = ""
		unarchived = append(unarchived, m)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return unarchived, nil
}

// Cleanup runs the automated archival pass. The candidate read and
// the archive writes share one transaction: no candidate is mutated
// based on state read outside the snapshot.
func (s *SQLiteStore) Cleanup(ctx context.Context, p CleanupParams) (*CleanupResult, error) {
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -p.DaysOld).Format(time.RFC3339)

	where := []string{"is_archived = 0", "created_at < ?", "importance <= ?"}
	args := []any{cutoff, p.MaxImportance}
	if p.Project != "" {
		where = append(where, "project_name = ?")
		args = append(args, p.Project)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT `+memoryColumns+` FROM memories WHERE `+strings.Join(where, " AND "), args...)
	if err != nil {
		return nil, err
	}
	base, err := collectMemories(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	candidates := advisor.CleanupCandidates(base, p.DaysOld, p.MaxImportance, now)

	// Performed reports the mode: a real pass that found nothing still ran.
	result := &CleanupResult{Candidates: candidates, Performed: !p.DryRun}

	if !p.DryRun {
		reason := advisor.CleanupReason(p.DaysOld, p.MaxImportance)
		ts := now.Format(time.RFC3339)
		for _, m := range candidates {
			_, err := tx.ExecContext(ctx,
				`UPDATE memories SET is_archived = 1, archived_at = ?, archived_reason = ? WHERE id = ?`,
				ts, reason, m.ID)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}
