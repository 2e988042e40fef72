package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rcliao/memkeep/internal/advisor"
	"github.com/rcliao/memkeep/internal/store"
)

// SuggestArchivalTool scores memories against the archival
// eligibility rules and groups candidates by reason.
type SuggestArchivalTool struct {
	store *store.SQLiteStore
}

func NewSuggestArchivalTool(s *store.SQLiteStore) *SuggestArchivalTool {
	return &SuggestArchivalTool{store: s}
}

func (t *SuggestArchivalTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_suggest_archival",
		mcp.WithDescription("Suggest memories that could be archived or cleaned up"),
		mcp.WithString("project",
			mcp.Description("Project to analyze (optional, analyzes all if not provided)")),
		mcp.WithNumber("days_threshold",
			mcp.Description("Display threshold in days (default: 90)")),
	)
}

func (t *SuggestArchivalTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project := req.GetString("project", "")
	daysThreshold := req.GetInt("days_threshold", 90)

	memories, err := t.store.List(ctx, store.ListParams{Project: project, IncludeArchived: true})
	if err != nil {
		return failure("suggest archival", err), nil
	}
	if len(memories) == 0 {
		return result(map[string]any{"suggestions": "No memories found to analyze"}), nil
	}

	candidates := advisor.SuggestArchival(memories, time.Now().UTC())

	byReason := map[string][]map[string]any{}
	for _, c := range candidates {
		byReason[c.Reason] = append(byReason[c.Reason], map[string]any{
			"id":           c.Memory.ID,
			"content":      truncate(c.Memory.Content, 80),
			"created_at":   c.Memory.CreatedAt,
			"importance":   c.Memory.Importance,
			"access_count": c.Memory.AccessCount,
			"category":     c.Memory.Category,
		})
	}

	return result(map[string]any{
		"scope":            scopeLabel(project),
		"days_threshold":   daysThreshold,
		"total_candidates": len(candidates),
		"archival_suggestions": byReason,
		"summary": fmt.Sprintf("Found %d memories that could be archived out of %d total",
			len(candidates), len(memories)),
	}), nil
}

// ArchiveTool archives one or more memories.
type ArchiveTool struct {
	store *store.SQLiteStore
}

func NewArchiveTool(s *store.SQLiteStore) *ArchiveTool {
	return &ArchiveTool{store: s}
}

func (t *ArchiveTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_archive",
		mcp.WithDescription("Archive one or more memories"),
		mcp.WithArray("memory_ids", mcp.Required(),
			mcp.Description("List of memory IDs to archive"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("reason",
			mcp.Description("Reason for archiving (optional)")),
	)
}

func (t *ArchiveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := req.GetStringSlice("memory_ids", nil)
	if len(ids) == 0 {
		return validationError("memory_ids is required"), nil
	}
	reason := req.GetString("reason", "")

	archived, err := t.store.Archive(ctx, ids, reason)
	if err != nil {
		return failure("archive memories", err), nil
	}

	previews := make([]preview, 0, len(archived))
	for _, m := range archived {
		previews = append(previews, previewOf(m, 50))
	}
	if reason == "" {
		reason = "Manual archival"
	}

	return result(map[string]any{
		"archived_count":    len(archived),
		"archived_memories": previews,
		"reason":            reason,
	}), nil
}

// UnarchiveTool restores archived memories.
type UnarchiveTool struct {
	store *store.SQLiteStore
}

func NewUnarchiveTool(s *store.SQLiteStore) *UnarchiveTool {
	return &UnarchiveTool{store: s}
}

func (t *UnarchiveTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_unarchive",
		mcp.WithDescription("Unarchive one or more memories"),
		mcp.WithArray("memory_ids", mcp.Required(),
			mcp.Description("List of memory IDs to unarchive"),
			mcp.Items(map[string]any{"type": "string"})),
	)
}

func (t *UnarchiveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := req.GetStringSlice("memory_ids", nil)
	if len(ids) == 0 {
		return validationError("memory_ids is required"), nil
	}

	unarchived, err := t.store.Unarchive(ctx, ids)
	if err != nil {
		return failure("unarchive memories", err), nil
	}

	previews := make([]preview, 0, len(unarchived))
	for _, m := range unarchived {
		previews = append(previews, previewOf(m, 50))
	}

	return result(map[string]any{
		"unarchived_count":    len(unarchived),
		"unarchived_memories": previews,
	}), nil
}

// CleanupTool runs the automated, threshold-driven archival pass.
type CleanupTool struct {
	store *store.SQLiteStore
}

func NewCleanupTool(s *store.SQLiteStore) *CleanupTool {
	return &CleanupTool{store: s}
}

func (t *CleanupTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_cleanup",
		mcp.WithDescription("Automatically clean up old, unused memories based on criteria"),
		mcp.WithString("project",
			mcp.Description("Project to clean up (optional, cleans all if not provided)")),
		mcp.WithNumber("days_old",
			mcp.Description("Archive memories older than this many days (default: 180)")),
		mcp.WithNumber("max_importance",
			mcp.Description("Only archive memories with importance <= this value (default: 3)")),
		mcp.WithBoolean("dry_run",
			mcp.Description("Show what would be archived without doing it (default: true)")),
	)
}

func (t *CleanupTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := store.CleanupParams{
		Project:       req.GetString("project", ""),
		DaysOld:       req.GetInt("days_old", 180),
		MaxImportance: req.GetInt("max_importance", 3),
		DryRun:        req.GetBool("dry_run", true),
	}
	if p.DaysOld <= 0 {
		return validationError("days_old must be positive"), nil
	}

	res, err := t.store.Cleanup(ctx, p)
	if err != nil {
		return failure("cleanup memories", err), nil
	}

	now := time.Now().UTC()
	previews := make([]preview, 0, len(res.Candidates))
	for _, m := range res.Candidates {
		pv := previewOf(m, 60)
		pv.Category = m.Category
		pv.Importance = m.Importance
		pv.AccessCount = m.AccessCount
		pv.AgeDays = m.AgeDays(now)
		previews = append(previews, pv)
	}

	scope := p.Project
	if scope == "" {
		scope = "all projects"
	}

	return result(map[string]any{
		"dry_run": p.DryRun,
		"criteria": map[string]any{
			"days_old":       p.DaysOld,
			"max_importance": p.MaxImportance,
			"project":        scope,
		},
		"total_candidates":  len(res.Candidates),
		"cleanup_performed": res.Performed,
		"memories":          previews,
	}), nil
}
