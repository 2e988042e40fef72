// Package model defines the core memory data types.
package model

import (
	"sort"
	"strings"
	"time"
)

// Memory represents a single stored note with project context.
type Memory struct {
	ID             string         `json:"id"`
	ProjectName    string         `json:"project_name"`
	Category       string         `json:"category"`
	Content        string         `json:"content"`
	Tags           []string       `json:"tags,omitempty"`
	Importance     int            `json:"importance"`
	Context        map[string]any `json:"context,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	AccessedAt     *time.Time     `json:"accessed_at,omitempty"`
	AccessCount    int            `json:"access_count"`
	IsArchived     bool           `json:"is_archived"`
	ArchivedAt     *time.Time     `json:"archived_at,omitempty"`
	ArchivedReason string         `json:"archived_reason,omitempty"`

	// SearchText is the derived lowercase match target. It is
	// recomputed whenever content or tags change and never leaves
	// the process.
	SearchText string `json:"-"`
}

// DefaultImportance is used when the caller doesn't supply one.
const DefaultImportance = 5

// KnownCategories are the conventional categories. Free-form values
// are accepted; these exist for documentation and CLI help.
var KnownCategories = []string{
	"architecture", "setup", "bug_fix", "todo", "pattern", "command", "general",
}

// DeriveSearchText builds the lowercase concatenation of content,
// category, and tags used as a cheap search pre-filter.
func DeriveSearchText(content, category string, tags []string) string {
	parts := []string{content, category}
	parts = append(parts, tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// NormalizeTags removes duplicates and empty entries. Order is not
// significant, so the result is sorted for stable storage.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// AgeDays returns whole days elapsed since the memory was created.
func (m *Memory) AgeDays(now time.Time) int {
	return int(now.Sub(m.CreatedAt).Hours() / 24)
}
