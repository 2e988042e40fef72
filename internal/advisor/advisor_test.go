package advisor

import (
	"strings"
	"testing"
	"time"

	"github.com/rcliao/memkeep/internal/model"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func mem(ageDays, importance, accessCount int, category, content string) model.Memory {
	created := testNow.AddDate(0, 0, -ageDays)
	return model.Memory{
		ID:          "m-" + category,
		ProjectName: "p",
		Category:    category,
		Content:     content,
		Importance:  importance,
		AccessCount: accessCount,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestSuggestArchivalMultipleReasons(t *testing.T) {
	m := mem(200, 2, 0, "general", "this content is long enough to not be short")

	got := SuggestArchival([]model.Memory{m}, testNow)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if !strings.Contains(got[0].Reason, "old and low importance") {
		t.Errorf("missing reason: %q", got[0].Reason)
	}
	if !strings.Contains(got[0].Reason, "never accessed") {
		t.Errorf("missing reason: %q", got[0].Reason)
	}
	if strings.Contains(got[0].Reason, "very short content") {
		t.Errorf("unexpected reason: %q", got[0].Reason)
	}
}

func TestSuggestArchivalShortContent(t *testing.T) {
	// Fresh and important, but too short to be worth keeping
	m := mem(1, 9, 50, "general", "tiny note")

	got := SuggestArchival([]model.Memory{m}, testNow)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Reason != "very short content" {
		t.Errorf("reason = %q", got[0].Reason)
	}
}

func TestSuggestArchivalStaleTodo(t *testing.T) {
	stale := mem(200, 8, 10, "todo", "refactor the payment retry loop eventually")
	fresh := mem(30, 8, 10, "todo", "refactor the payment retry loop eventually")

	got := SuggestArchival([]model.Memory{stale, fresh}, testNow)
	if len(got) != 1 {
		t.Fatalf("expected only the stale todo, got %d", len(got))
	}
	if got[0].Reason != "old todo item" {
		t.Errorf("reason = %q", got[0].Reason)
	}
}

func TestSuggestArchivalKeepsHealthyMemories(t *testing.T) {
	healthy := mem(30, 7, 5, "decision", "switched the queue to at-least-once delivery")

	if got := SuggestArchival([]model.Memory{healthy}, testNow); len(got) != 0 {
		t.Fatalf("expected 0 candidates, got %d (%q)", len(got), got[0].Reason)
	}
}

func TestSuggestArchivalRecentLowImportanceKept(t *testing.T) {
	// Low importance alone is not enough inside the window
	m := mem(30, 1, 1, "general", "a low importance but recent observation")

	if got := SuggestArchival([]model.Memory{m}, testNow); len(got) != 0 {
		t.Fatalf("expected 0 candidates, got %d", len(got))
	}
}

func TestCleanupCandidatesBaseFilter(t *testing.T) {
	tooYoung := mem(30, 2, 0, "general", "recent low importance unaccessed note")
	tooImportant := mem(300, 8, 0, "general", "old but important decision record here")
	eligible := mem(300, 2, 0, "general", "old unimportant unaccessed note indeed")

	got := CleanupCandidates([]model.Memory{tooYoung, tooImportant, eligible}, 180, 3, testNow)
	if len(got) != 1 {
		t.Fatalf("expected 1, got %d", len(got))
	}
	if got[0].ID != eligible.ID {
		t.Errorf("wrong candidate: %s", got[0].ID)
	}
}

func TestCleanupCandidatesSkipsArchived(t *testing.T) {
	m := mem(300, 2, 0, "general", "already archived old note should be skipped")
	m.IsArchived = true

	if got := CleanupCandidates([]model.Memory{m}, 180, 3, testNow); len(got) != 0 {
		t.Fatalf("expected 0, got %d", len(got))
	}
}

func TestCleanupCandidatesAccessRate(t *testing.T) {
	// 200 days old, accessed once: rate 0.005 < 0.01, still cleanup
	rare := mem(200, 2, 1, "general", "rarely consulted low importance reference")
	// 200 days old, accessed 100 times: rate 0.5, keep
	busy := mem(200, 2, 100, "general", "frequently consulted low importance cheat sheet")

	got := CleanupCandidates([]model.Memory{rare, busy}, 180, 3, testNow)
	if len(got) != 1 {
		t.Fatalf("expected 1, got %d", len(got))
	}
	if got[0].ID != rare.ID {
		t.Errorf("wrong candidate: %s", got[0].ID)
	}
}

func TestCleanupCandidatesOldTodo(t *testing.T) {
	// Accessed regularly, but a todo past a year gets cleaned anyway
	m := mem(400, 2, 200, "todo", "someday maybe migrate the legacy importer")

	got := CleanupCandidates([]model.Memory{m}, 180, 3, testNow)
	if len(got) != 1 {
		t.Fatalf("expected 1, got %d", len(got))
	}
}

func TestCleanupReason(t *testing.T) {
	got := CleanupReason(180, 3)
	want := "Automatic cleanup: 180+ days old, importance <= 3"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
