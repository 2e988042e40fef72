package store

import (
	"context"
	"testing"
)

func TestListProjects(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Create(ctx, CreateParams{Project: "big", Category: "general", Content: "one"})
	s.Create(ctx, CreateParams{Project: "big", Category: "general", Content: "two"})
	s.Create(ctx, CreateParams{Project: "small", Category: "general", Content: "three"})

	projects, err := s.ListProjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Project != "big" || projects[0].MemoryCount != 2 {
		t.Errorf("expected big first with 2, got %s/%d", projects[0].Project, projects[0].MemoryCount)
	}
	if projects[0].LastUpdated == nil {
		t.Error("expected last_updated to be set")
	}
}

func TestCategoryCounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Create(ctx, CreateParams{Project: "p", Category: "decision", Content: "a"})
	s.Create(ctx, CreateParams{Project: "p", Category: "decision", Content: "b"})
	s.Create(ctx, CreateParams{Project: "p", Category: "todo", Content: "c"})
	s.Create(ctx, CreateParams{Project: "other", Category: "decision", Content: "d"})

	counts, err := s.CategoryCounts(ctx, "p")
	if err != nil {
		t.Fatal(err)
	}
	if counts["decision"] != 2 || counts["todo"] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if len(counts) != 2 {
		t.Errorf("expected 2 categories, got %d", len(counts))
	}
}

func TestRecentAndImportant(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Create(ctx, CreateParams{Project: "p", Category: "general", Content: "minor", Importance: 2})
	s.Create(ctx, CreateParams{Project: "p", Category: "decision", Content: "critical", Importance: 9})
	s.Create(ctx, CreateParams{Project: "p", Category: "general", Content: "routine", Importance: 5})

	recent, err := s.Recent(ctx, "p", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent, got %d", len(recent))
	}

	important, err := s.Important(ctx, "p", 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(important) != 1 || important[0].Content != "critical" {
		t.Fatalf("expected only the critical memory, got %d", len(important))
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	m, _ := s.Create(ctx, CreateParams{Project: "p", Category: "general", Content: "a"})
	s.Create(ctx, CreateParams{Project: "p", Category: "general", Content: "b"})
	s.Archive(ctx, []string{m.ID}, "")

	st, err := s.Stats(ctx, "unknown-path")
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalMemories != 2 || st.ActiveMemories != 1 || st.ArchivedMemories != 1 {
		t.Errorf("stats = %+v", st)
	}
	if len(st.Projects) != 1 {
		t.Errorf("expected 1 project, got %d", len(st.Projects))
	}
}
