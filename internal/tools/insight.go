package tools

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rcliao/memkeep/internal/store"
	"github.com/rcliao/memkeep/internal/summarize"
)

// SummarizeProjectTool renders the intelligent project digest with
// analytics.
type SummarizeProjectTool struct {
	store      *store.SQLiteStore
	summarizer *summarize.Summarizer
}

func NewSummarizeProjectTool(s *store.SQLiteStore, sum *summarize.Summarizer) *SummarizeProjectTool {
	return &SummarizeProjectTool{store: s, summarizer: sum}
}

func (t *SummarizeProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_summarize_project",
		mcp.WithDescription("Generate an intelligent summary of all memories for a project"),
		mcp.WithString("project", mcp.Required(),
			mcp.Description("Project name to summarize")),
		mcp.WithBoolean("include_archived",
			mcp.Description("Include archived memories in the summary (default: false)")),
	)
}

func (t *SummarizeProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := req.RequireString("project")
	if err != nil || project == "" {
		return validationError("project is required"), nil
	}

	memories, err := t.store.List(ctx, store.ListParams{
		Project:         project,
		IncludeArchived: req.GetBool("include_archived", false),
	})
	if err != nil {
		return failure("summarize project", err), nil
	}
	if len(memories) == 0 {
		return validationError(fmt.Sprintf("No memories found for project: %s", project)), nil
	}

	summary := t.summarizer.CreateProjectSummary(memories, project)

	groups, _ := summarize.GroupByCategory(memories)
	categories := make([]string, 0, len(groups))
	for cat := range groups {
		categories = append(categories, cat)
	}

	totalImportance := 0
	oldest, newest := memories[0].CreatedAt, memories[0].CreatedAt
	recentCutoff := time.Now().UTC().AddDate(0, 0, -7)
	recentActivity := 0
	for _, m := range memories {
		totalImportance += m.Importance
		if m.CreatedAt.Before(oldest) {
			oldest = m.CreatedAt
		}
		if m.CreatedAt.After(newest) {
			newest = m.CreatedAt
		}
		if m.CreatedAt.After(recentCutoff) {
			recentActivity++
		}
	}
	avgImportance := math.Round(float64(totalImportance)/float64(len(memories))*10) / 10

	return result(map[string]any{
		"project": project,
		"summary": summary,
		"analytics": map[string]any{
			"total_memories":     len(memories),
			"categories":         categories,
			"average_importance": avgImportance,
			"recent_activity":    recentActivity,
			"oldest_memory":      oldest,
			"newest_memory":      newest,
		},
	}), nil
}

// AnalyzeStorageTool runs the storage-optimization analysis.
type AnalyzeStorageTool struct {
	store      *store.SQLiteStore
	summarizer *summarize.Summarizer
}

func NewAnalyzeStorageTool(s *store.SQLiteStore, sum *summarize.Summarizer) *AnalyzeStorageTool {
	return &AnalyzeStorageTool{store: s, summarizer: sum}
}

func (t *AnalyzeStorageTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_analyze_storage",
		mcp.WithDescription("Analyze memory storage and suggest optimizations"),
		mcp.WithString("project",
			mcp.Description("Project to analyze (optional, analyzes all if not provided)")),
	)
}

func (t *AnalyzeStorageTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project := req.GetString("project", "")

	memories, err := t.store.List(ctx, store.ListParams{Project: project, IncludeArchived: true})
	if err != nil {
		return failure("analyze storage", err), nil
	}
	if len(memories) == 0 {
		return result(map[string]any{"analysis": "No memories found to analyze"}), nil
	}

	report := t.summarizer.OptimizeStorage(memories)

	projects, err := t.store.ListProjects(ctx)
	if err != nil {
		return failure("analyze storage", err), nil
	}

	return result(map[string]any{
		"scope":        scopeLabel(project),
		"optimization": report,
		"database_stats": map[string]any{
			"total_projects":    len(projects),
			"analyzed_memories": len(memories),
		},
	}), nil
}

func scopeLabel(project string) string {
	if project == "" {
		return "all projects"
	}
	return "project: " + project
}
