package summarize

import (
	"strings"
	"testing"

	"github.com/rcliao/memkeep/internal/model"
)

func TestOptimizeStorageEmpty(t *testing.T) {
	report := fixed().OptimizeStorage(nil)
	if report.Total != 0 {
		t.Errorf("total = %d", report.Total)
	}
	if report.Suggestions == nil || len(report.Suggestions) != 0 {
		t.Errorf("suggestions = %v", report.Suggestions)
	}
}

func TestOptimizeStorageCategoryStats(t *testing.T) {
	memories := []model.Memory{
		mem("decision", "picked the layered design approach here", 8, 4, 10),
		mem("decision", "selected the retry pattern for the client", 6, 2, 10),
		mem("command", "run make lint before pushing anything", 5, 0, 10),
	}

	report := fixed().OptimizeStorage(memories)
	if report.Total != 3 {
		t.Errorf("total = %d", report.Total)
	}

	dec := report.Categories["decision"]
	if dec.Count != 2 || dec.AvgImportance != 7.0 || dec.AvgAccess != 3.0 {
		t.Errorf("decision stats = %+v", dec)
	}
	if report.Categories["command"].Count != 1 {
		t.Errorf("command stats = %+v", report.Categories["command"])
	}
}

func TestOptimizeStorageSuggestions(t *testing.T) {
	// 12 never-accessed low-importance memories trip both the
	// low-importance share and the unused count thresholds.
	var memories []model.Memory
	for i := 0; i < 12; i++ {
		m := mem("general", "some forgettable operational note number", 2, 0, 10)
		memories = append(memories, m)
	}

	report := fixed().OptimizeStorage(memories)

	foundLow, foundUnused := false, false
	for _, s := range report.Suggestions {
		if strings.Contains(s, "low-importance") {
			foundLow = true
		}
		if strings.Contains(s, "never-accessed") {
			foundUnused = true
		}
	}
	if !foundLow {
		t.Errorf("missing low-importance suggestion: %v", report.Suggestions)
	}
	if !foundUnused {
		t.Errorf("missing never-accessed suggestion: %v", report.Suggestions)
	}
}

func TestOptimizeStorageTodoShare(t *testing.T) {
	memories := []model.Memory{
		mem("todo", "ship the importer rewrite sometime soon", 5, 1, 10),
		mem("todo", "update the deploy runbook with new steps", 5, 1, 10),
		mem("general", "the staging box lives in the second rack", 5, 1, 10),
	}

	report := fixed().OptimizeStorage(memories)
	found := false
	for _, s := range report.Suggestions {
		if strings.Contains(s, "TODO") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing todo suggestion: %v", report.Suggestions)
	}
}

func TestOptimizeStorageCountsArchivalCandidates(t *testing.T) {
	memories := []model.Memory{
		mem("general", "old unaccessed low importance leftover note", 2, 0, 200),
		mem("general", "fresh and well used note worth keeping here", 8, 9, 5),
	}

	report := fixed().OptimizeStorage(memories)
	if report.ArchivalCandidates != 1 {
		t.Errorf("archival candidates = %d", report.ArchivalCandidates)
	}
}

func TestOptimizeStorageHealthyNoSuggestions(t *testing.T) {
	memories := []model.Memory{
		mem("decision", "chose the simpler approach for onboarding", 8, 5, 10),
		mem("command", "run the smoke tests after every deploy", 6, 3, 10),
	}

	report := fixed().OptimizeStorage(memories)
	if len(report.Suggestions) != 0 {
		t.Errorf("unexpected suggestions: %v", report.Suggestions)
	}
}
