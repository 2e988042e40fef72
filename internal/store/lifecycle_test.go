package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rcliao/memkeep/internal/model"
)

func TestArchiveAndUnarchive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, _ := s.Create(ctx, CreateParams{Category: "general", Content: "a"})
	b, _ := s.Create(ctx, CreateParams{Category: "general", Content: "b"})

	archived, err := s.Archive(ctx, []string{a.ID, "nope", b.ID}, "project wrapped up")
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if len(archived) != 2 {
		t.Fatalf("expected 2 archived (missing id skipped), got %d", len(archived))
	}
	for _, m := range archived {
		if !m.IsArchived || m.ArchivedAt == nil {
			t.Errorf("memory %s not marked archived", m.ID)
		}
		if m.ArchivedReason != "project wrapped up" {
			t.Errorf("reason = %q", m.ArchivedReason)
		}
	}

	// Archived memory is still retrievable by id
	got, err := s.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get archived: %v", err)
	}
	if !got.IsArchived {
		t.Error("archived flag not persisted")
	}

	unarchived, err := s.Unarchive(ctx, []string{a.ID, "nope"})
	if err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	if len(unarchived) != 1 {
		t.Fatalf("expected 1 unarchived, got %d", len(unarchived))
	}

	got, _ = s.Get(ctx, a.ID)
	if got.IsArchived || got.ArchivedAt != nil || got.ArchivedReason != "" {
		t.Error("unarchive did not clear archival state")
	}

	// Unarchiving an active memory is a silent skip
	again, _ := s.Unarchive(ctx, []string{a.ID})
	if len(again) != 0 {
		t.Errorf("expected 0, got %d", len(again))
	}
}

func TestArchiveDefaultReason(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	m, _ := s.Create(ctx, CreateParams{Category: "general", Content: "x"})
	archived, _ := s.Archive(ctx, []string{m.ID}, "")
	if archived[0].ArchivedReason != "Manual archival" {
		t.Errorf("reason = %q", archived[0].ArchivedReason)
	}
}

// backdated inserts a memory with an old created_at, bypassing Create.
func backdated(t *testing.T, s *SQLiteStore, ageDays, importance, accessCount int, content string) model.Memory {
	t.Helper()
	now := time.Now().UTC()
	m := model.Memory{
		ID:          "bd-" + strings.ReplaceAll(content, " ", "-"),
		ProjectName: "default",
		Category:    "general",
		Content:     content,
		Importance:  importance,
		AccessCount: accessCount,
		CreatedAt:   now.AddDate(0, 0, -ageDays),
		UpdatedAt:   now.AddDate(0, 0, -ageDays),
	}
	if err := s.InsertRaw(context.Background(), m); err != nil {
		t.Fatalf("insert raw: %v", err)
	}
	return m
}

func TestCleanupDryRun(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	old := backdated(t, s, 200, 2, 0, "stale low value note")
	keep := backdated(t, s, 200, 8, 0, "important old note")
	s.Create(ctx, CreateParams{Category: "general", Content: "fresh note"})

	res, err := s.Cleanup(ctx, CleanupParams{DaysOld: 180, MaxImportance: 3, DryRun: true})
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if res.Performed {
		t.Error("dry run must not perform")
	}
	if len(res.Candidates) != 1 || res.Candidates[0].ID != old.ID {
		t.Fatalf("expected 1 candidate (the stale note), got %d", len(res.Candidates))
	}

	// Dry run mutates nothing
	got, _ := s.Get(ctx, old.ID)
	if got.IsArchived {
		t.Error("dry run archived a memory")
	}
	got, _ = s.Get(ctx, keep.ID)
	if got.IsArchived {
		t.Error("important memory touched")
	}
}

func TestCleanupApply(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	old := backdated(t, s, 400, 2, 0, "forgotten detail")

	res, err := s.Cleanup(ctx, CleanupParams{DaysOld: 180, MaxImportance: 3})
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if !res.Performed {
		t.Error("expected cleanup to perform")
	}

	got, _ := s.Get(ctx, old.ID)
	if !got.IsArchived {
		t.Fatal("candidate not archived")
	}
	if !strings.Contains(got.ArchivedReason, "180+ days old") {
		t.Errorf("reason missing criteria: %q", got.ArchivedReason)
	}
	if !strings.Contains(got.ArchivedReason, "importance <= 3") {
		t.Errorf("reason missing criteria: %q", got.ArchivedReason)
	}
}

func TestCleanupPerformedWithoutCandidates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Create(ctx, CreateParams{Category: "general", Content: "too fresh to clean up"})

	res, err := s.Cleanup(ctx, CleanupParams{DaysOld: 180, MaxImportance: 3})
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if len(res.Candidates) != 0 {
		t.Fatalf("expected 0 candidates, got %d", len(res.Candidates))
	}
	// The pass ran even though it archived nothing
	if !res.Performed {
		t.Error("expected Performed for a non-dry-run pass")
	}
}

func TestCleanupSparesAccessedMemories(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// Old and unimportant, but read often enough to keep
	busy := backdated(t, s, 200, 2, 100, "well worn reference")

	res, err := s.Cleanup(ctx, CleanupParams{DaysOld: 180, MaxImportance: 3, DryRun: true})
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	for _, c := range res.Candidates {
		if c.ID == busy.ID {
			t.Error("frequently accessed memory selected for cleanup")
		}
	}
}

func TestCleanupProjectScope(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now().UTC()
	a := model.Memory{
		ID: "cleanupscopeA", ProjectName: "alpha", Category: "general",
		Content: "old alpha note", Importance: 2,
		CreatedAt: now.AddDate(0, 0, -200), UpdatedAt: now.AddDate(0, 0, -200),
	}
	b := model.Memory{
		ID: "cleanupscopeB", ProjectName: "beta", Category: "general",
		Content: "old beta note", Importance: 2,
		CreatedAt: now.AddDate(0, 0, -200), UpdatedAt: now.AddDate(0, 0, -200),
	}
	s.InsertRaw(ctx, a)
	s.InsertRaw(ctx, b)

	res, err := s.Cleanup(ctx, CleanupParams{Project: "alpha", DaysOld: 180, MaxImportance: 3})
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].ID != "cleanupscopeA" {
		t.Fatalf("expected only alpha candidate, got %d", len(res.Candidates))
	}

	got, _ := s.Get(ctx, "cleanupscopeB")
	if got.IsArchived {
		t.Error("beta memory archived by alpha-scoped cleanup")
	}
}
