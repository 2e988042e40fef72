package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rcliao/memkeep/internal/store"
)

// ProjectSummaryTool reports category counts with recent and
// important memories for one project.
type ProjectSummaryTool struct {
	store *store.SQLiteStore
}

func NewProjectSummaryTool(s *store.SQLiteStore) *ProjectSummaryTool {
	return &ProjectSummaryTool{store: s}
}

func (t *ProjectSummaryTool) Definition() mcp.Tool {
	return mcp.NewTool("project_summary",
		mcp.WithDescription("Get a summary of memories for a project"),
		mcp.WithString("project", mcp.Required(),
			mcp.Description("Project name to summarize")),
	)
}

func (t *ProjectSummaryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := req.RequireString("project")
	if err != nil || project == "" {
		return validationError("project is required"), nil
	}

	categories, err := t.store.CategoryCounts(ctx, project)
	if err != nil {
		return failure("project summary", err), nil
	}
	recent, err := t.store.Recent(ctx, project, 5)
	if err != nil {
		return failure("project summary", err), nil
	}
	important, err := t.store.Important(ctx, project, 8)
	if err != nil {
		return failure("project summary", err), nil
	}

	total := 0
	for _, n := range categories {
		total += n
	}

	return result(map[string]any{
		"project": project,
		"summary": map[string]any{
			"total_memories":     total,
			"categories":         categories,
			"recent_memories":    recent,
			"important_memories": important,
		},
	}), nil
}

// ListProjectsTool lists every project with memory counts.
type ListProjectsTool struct {
	store *store.SQLiteStore
}

func NewListProjectsTool(s *store.SQLiteStore) *ListProjectsTool {
	return &ListProjectsTool{store: s}
}

func (t *ListProjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_list_projects",
		mcp.WithDescription("List all projects with memories"),
	)
}

func (t *ListProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := t.store.ListProjects(ctx)
	if err != nil {
		return failure("list projects", err), nil
	}
	return result(map[string]any{"projects": projects}), nil
}
