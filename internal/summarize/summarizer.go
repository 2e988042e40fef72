// Package summarize extracts key points from memory content and
// renders prioritized project digests.
package summarize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rcliao/memkeep/internal/model"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Keyword classes score sentences additively. Weights: decisions
// outrank technical and problem/solution vocabulary, which outrank
// command/setup vocabulary.
var (
	techKeywords = []string{
		"api", "database", "authentication", "authorization", "jwt", "oauth",
		"redis", "postgres", "mysql", "mongodb", "docker", "kubernetes",
		"react", "angular", "vue", "python", "javascript", "typescript",
		"fastapi", "django", "flask", "express", "nextjs", "nginx",
	}
	decisionKeywords = []string{
		"decided", "chose", "selected", "implemented", "because", "due to",
		"architecture", "design", "pattern", "approach", "solution",
	}
	problemKeywords = []string{
		"fixed", "solved", "resolved", "bug", "issue", "problem", "error",
		"works", "solution", "workaround",
	}
	commandKeywords = []string{
		"run", "install", "deploy", "build", "test", "start", "setup",
		"configure", "command", "script",
	}
)

// categoryPriority orders categories in project summaries. Categories
// not listed render after these, in discovery order.
var categoryPriority = map[string]int{
	"architecture": 1,
	"setup":        2,
	"bug_fix":      3,
	"pattern":      4,
	"command":      5,
	"todo":         6,
}

var titleCaser = cases.Title(language.English)

// Summarizer renders digests from memory slices. It holds no state
// beyond the clock, injected for testability.
type Summarizer struct {
	now func() time.Time
}

// New returns a Summarizer using the wall clock.
func New() *Summarizer {
	return &Summarizer{now: time.Now}
}

// NewAt returns a Summarizer with a fixed clock.
func NewAt(now func() time.Time) *Summarizer {
	return &Summarizer{now: now}
}

// ExtractKeyPoints splits content into sentences, scores each by
// keyword weight, and returns up to the top 3. Sentences scoring zero
// are dropped; ties keep discovery order.
func (s *Summarizer) ExtractKeyPoints(content string) []string {
	var sentences []string
	for _, raw := range sentenceSplit.Split(content, -1) {
		if t := strings.TrimSpace(raw); t != "" {
			sentences = append(sentences, t)
		}
	}

	type scored struct {
		text  string
		score int
	}
	var candidates []scored
	for _, sentence := range sentences {
		if sc := scoreSentence(sentence); sc > 0 {
			candidates = append(candidates, scored{sentence, sc})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var points []string
	for i := 0; i < len(candidates) && i < 3; i++ {
		points = append(points, candidates[i].text)
	}
	return points
}

func scoreSentence(sentence string) int {
	lower := strings.ToLower(sentence)
	score := 0
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			score += 2
		}
	}
	for _, kw := range decisionKeywords {
		if strings.Contains(lower, kw) {
			score += 3
		}
	}
	for _, kw := range problemKeywords {
		if strings.Contains(lower, kw) {
			score += 2
		}
	}
	for _, kw := range commandKeywords {
		if strings.Contains(lower, kw) {
			score += 1
		}
	}
	return score
}

// GroupByCategory buckets memories by category, keeping discovery
// order of both categories and members.
func GroupByCategory(memories []model.Memory) (map[string][]model.Memory, []string) {
	groups := map[string][]model.Memory{}
	var order []string
	for _, m := range memories {
		if _, ok := groups[m.Category]; !ok {
			order = append(order, m.Category)
		}
		groups[m.Category] = append(groups[m.Category], m)
	}
	return groups, order
}

// SummarizeCategory renders a digest for one category: the top 5
// deduplicated key points across all members, plus a key-decision
// callout when the highest-ranked memory has importance >= 8.
func (s *Summarizer) SummarizeCategory(memories []model.Memory, category string) string {
	if len(memories) == 0 {
		return ""
	}

	sorted := make([]model.Memory, len(memories))
	copy(sorted, memories)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Importance != sorted[j].Importance {
			return sorted[i].Importance > sorted[j].Importance
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var allPoints []string
	for _, m := range sorted {
		allPoints = append(allPoints, s.ExtractKeyPoints(m.Content)...)
	}

	// Deduplicate by normalized text, dropping trivial fragments.
	seen := map[string]bool{}
	var unique []string
	for _, p := range allPoints {
		norm := strings.TrimSpace(strings.ToLower(p))
		if len(norm) <= 10 || seen[norm] {
			continue
		}
		seen[norm] = true
		unique = append(unique, p)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s Summary** (%d memories):", categoryTitle(category), len(sorted))
	for i, p := range unique {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "\n%d. %s", i+1, p)
	}

	if top := sorted[0]; top.Importance >= 8 {
		fmt.Fprintf(&b, "\n\n**Key Decision**: %s", truncate(top.Content, 100))
	}
	return b.String()
}

// CreateProjectSummary renders the full project digest: category
// sections in priority order, recent highlights, and a most-referenced
// section when anything has been accessed more than once.
func (s *Summarizer) CreateProjectSummary(memories []model.Memory, projectName string) string {
	if len(memories) == 0 {
		return fmt.Sprintf("No memories found for project: %s", projectName)
	}

	groups, discovered := GroupByCategory(memories)
	sort.SliceStable(discovered, func(i, j int) bool {
		return priorityOf(discovered[i]) < priorityOf(discovered[j])
	})

	var parts []string
	parts = append(parts,
		fmt.Sprintf("# Project Summary: %s", projectName),
		fmt.Sprintf("Generated: %s", s.now().UTC().Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Total memories: %d", len(memories)),
		"")

	for _, cat := range discovered {
		if digest := s.SummarizeCategory(groups[cat], cat); digest != "" {
			parts = append(parts, digest, "")
		}
	}

	recent := make([]model.Memory, len(memories))
	copy(recent, memories)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	parts = append(parts, "## Recent Highlights:")
	for i := 0; i < len(recent) && i < 3; i++ {
		parts = append(parts, fmt.Sprintf("- %s (importance: %d)", truncate(recent[i].Content, 80), recent[i].Importance))
	}
	parts = append(parts, "")

	popular := make([]model.Memory, len(memories))
	copy(popular, memories)
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].AccessCount > popular[j].AccessCount
	})
	if popular[0].AccessCount > 1 {
		parts = append(parts, "## Most Referenced:")
		for i := 0; i < len(popular) && i < 3; i++ {
			parts = append(parts, fmt.Sprintf("- %s (accessed %d times)", truncate(popular[i].Content, 80), popular[i].AccessCount))
		}
	}

	return strings.Join(parts, "\n")
}

func priorityOf(category string) int {
	if p, ok := categoryPriority[category]; ok {
		return p
	}
	return 99
}

func categoryTitle(category string) string {
	return titleCaser.String(strings.ReplaceAll(category, "_", " "))
}

// truncate limits text to max characters, never splitting a rune.
func truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
