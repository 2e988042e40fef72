package store

import (
	"context"
	"testing"
	"time"

	"github.com/rcliao/memkeep/internal/model"
)

func TestExportAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Create(ctx, CreateParams{Project: "a", Category: "general", Content: "one"})
	m, _ := s.Create(ctx, CreateParams{Project: "b", Category: "general", Content: "two"})
	s.Archive(ctx, []string{m.ID}, "done")

	all, err := s.ExportAll(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 (archived included), got %d", len(all))
	}

	onlyB, err := s.ExportAll(ctx, "b")
	if err != nil {
		t.Fatal(err)
	}
	if len(onlyB) != 1 || !onlyB[0].IsArchived {
		t.Fatalf("expected the archived b memory, got %d", len(onlyB))
	}
}

func TestInsertRawPreservesFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	accessed := created.AddDate(0, 0, 5)
	src := model.Memory{
		ID:          "raw-fixed-id",
		ProjectName: "imported",
		Category:    "decision",
		Content:     "kept exactly",
		Tags:        []string{"x"},
		Importance:  7,
		CreatedAt:   created,
		UpdatedAt:   created,
		AccessedAt:  &accessed,
		AccessCount: 3,
	}

	if err := s.InsertRaw(ctx, src); err != nil {
		t.Fatalf("insert raw: %v", err)
	}

	got, err := s.Get(ctx, "raw-fixed-id")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created)
	}
	if got.AccessCount != 3 {
		t.Errorf("access_count = %d", got.AccessCount)
	}
	if got.AccessedAt == nil || !got.AccessedAt.Equal(accessed) {
		t.Errorf("accessed_at = %v", got.AccessedAt)
	}
	if got.SearchText == "" {
		t.Error("expected search text derived on insert")
	}
}

func TestHasIDAndClear(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	m, _ := s.Create(ctx, CreateParams{Category: "general", Content: "here"})

	ok, err := s.HasID(ctx, m.ID)
	if err != nil || !ok {
		t.Fatalf("HasID = %v, %v", ok, err)
	}
	ok, err = s.HasID(ctx, "absent")
	if err != nil || ok {
		t.Fatalf("HasID(absent) = %v, %v", ok, err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	ok, _ = s.HasID(ctx, m.ID)
	if ok {
		t.Error("memory survived clear")
	}
}
