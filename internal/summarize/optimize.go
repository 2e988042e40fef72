package summarize

import (
	"fmt"

	"github.com/rcliao/memkeep/internal/advisor"
	"github.com/rcliao/memkeep/internal/model"
)

// Advisory thresholds. All produce suggestion text only; nothing here
// mutates state.
const (
	lowImportanceShare = 0.3
	unusedCountLimit   = 10
	todoShare          = 0.4
	oldMemoryDays      = 180
	oldMemoryLimit     = 20
)

// CategoryStats holds per-category aggregates.
type CategoryStats struct {
	Count         int     `json:"count"`
	AvgImportance float64 `json:"avg_importance"`
	AvgAccess     float64 `json:"avg_access"`
}

// StorageReport is the storage-optimization analysis result.
type StorageReport struct {
	Total              int                      `json:"total"`
	Categories         map[string]CategoryStats `json:"categories,omitempty"`
	ArchivalCandidates int                      `json:"archival_candidates"`
	Suggestions        []string                 `json:"suggestions"`
}

// OptimizeStorage computes per-category stats and advisory
// suggestions triggered by independent thresholds.
func (s *Summarizer) OptimizeStorage(memories []model.Memory) StorageReport {
	report := StorageReport{Total: len(memories), Suggestions: []string{}}
	if len(memories) == 0 {
		return report
	}

	groups, _ := GroupByCategory(memories)
	report.Categories = make(map[string]CategoryStats, len(groups))
	for cat, members := range groups {
		var imp, acc int
		for _, m := range members {
			imp += m.Importance
			acc += m.AccessCount
		}
		report.Categories[cat] = CategoryStats{
			Count:         len(members),
			AvgImportance: float64(imp) / float64(len(members)),
			AvgAccess:     float64(acc) / float64(len(members)),
		}
	}

	now := s.now().UTC()
	total := float64(len(memories))

	lowImportance := 0
	unused := 0
	old := 0
	oldCutoff := now.AddDate(0, 0, -oldMemoryDays)
	for _, m := range memories {
		if m.Importance <= 3 {
			lowImportance++
		}
		if m.AccessCount == 0 {
			unused++
		}
		if m.CreatedAt.Before(oldCutoff) {
			old++
		}
	}

	if float64(lowImportance) > total*lowImportanceShare {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("Consider archiving %d low-importance memories", lowImportance))
	}
	if unused > unusedCountLimit {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("Review %d never-accessed memories", unused))
	}
	if st, ok := report.Categories["todo"]; ok && float64(st.Count) > total*todoShare {
		report.Suggestions = append(report.Suggestions,
			"High number of TODO items - consider completing or archiving")
	}
	if old > oldMemoryLimit {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("Consider summarizing %d memories older than 6 months", old))
	}

	report.ArchivalCandidates = len(advisor.SuggestArchival(memories, now))
	return report
}
