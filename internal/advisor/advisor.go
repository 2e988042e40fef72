// Package advisor scores memories against archival eligibility rules.
// It operates on in-memory slices only; loading and state transitions
// belong to the store.
package advisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/rcliao/memkeep/internal/model"
)

// suggestWindowDays is the age window for the suggestion rules. It is
// intentionally independent of the days_threshold parameter callers
// pass to the public suggest operation, which is only used for
// display grouping.
const suggestWindowDays = 90

const (
	shortContentLen  = 20
	staleTodoDays    = 180
	cleanupTodoDays  = 365
	lowAccessPerDay  = 0.01
	lowImportanceMax = 3
)

// Candidate pairs a memory with the joined reasons it fired.
type Candidate struct {
	Memory model.Memory
	Reason string
}

// SuggestArchival returns every memory for which at least one
// eligibility rule fires, with all firing reasons joined. The rules
// are independent; a memory with none is excluded.
func SuggestArchival(memories []model.Memory, now time.Time) []Candidate {
	cutoff := now.AddDate(0, 0, -suggestWindowDays)

	var candidates []Candidate
	for _, m := range memories {
		var reasons []string

		if m.CreatedAt.Before(cutoff) && m.Importance <= lowImportanceMax {
			reasons = append(reasons, "old and low importance")
		}
		if m.AccessCount == 0 && m.CreatedAt.Before(cutoff) {
			reasons = append(reasons, "never accessed")
		}
		if len(m.Content) < shortContentLen {
			reasons = append(reasons, "very short content")
		}
		if m.Category == "todo" && m.CreatedAt.Before(now.AddDate(0, 0, -staleTodoDays)) {
			reasons = append(reasons, "old todo item")
		}

		if len(reasons) > 0 {
			candidates = append(candidates, Candidate{Memory: m, Reason: strings.Join(reasons, "; ")})
		}
	}
	return candidates
}

// CleanupCandidates applies the stricter, caller-parameterized rules
// used for automated archival. The base filter (not archived, older
// than daysOld, importance <= maxImportance) narrows the set; a base
// member is a true candidate when any usage rule fires.
func CleanupCandidates(memories []model.Memory, daysOld, maxImportance int, now time.Time) []model.Memory {
	cutoff := now.AddDate(0, 0, -daysOld)

	var candidates []model.Memory
	for _, m := range memories {
		if m.IsArchived || !m.CreatedAt.Before(cutoff) || m.Importance > maxImportance {
			continue
		}

		cleanup := m.AccessCount == 0

		ageDays := m.AgeDays(now)
		if ageDays > 0 && float64(m.AccessCount)/float64(ageDays) < lowAccessPerDay {
			cleanup = true
		}
		if m.Category == "todo" && ageDays > cleanupTodoDays {
			cleanup = true
		}

		if cleanup {
			candidates = append(candidates, m)
		}
	}
	return candidates
}

// CleanupReason is the archived_reason recorded for automated cleanup,
// naming the criteria that selected the memory.
func CleanupReason(daysOld, maxImportance int) string {
	return fmt.Sprintf("Automatic cleanup: %d+ days old, importance <= %d", daysOld, maxImportance)
}
