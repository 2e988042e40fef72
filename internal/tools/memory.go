package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rcliao/memkeep/internal/store"
)

// StoreTool stores a new memory.
type StoreTool struct {
	store *store.SQLiteStore
}

func NewStoreTool(s *store.SQLiteStore) *StoreTool {
	return &StoreTool{store: s}
}

func (t *StoreTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_store",
		mcp.WithDescription("Store a new memory with project context"),
		mcp.WithString("content", mcp.Required(),
			mcp.Description("The content to remember")),
		mcp.WithString("category", mcp.Required(),
			mcp.Description("Category: architecture, setup, bug_fix, todo, pattern, command, general")),
		mcp.WithString("project",
			mcp.Description("Project name (defaults to the configured default project)")),
		mcp.WithArray("tags",
			mcp.Description("Optional tags for better organization"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithNumber("importance",
			mcp.Description("Importance level (1-10, default 5)")),
	)
}

func (t *StoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil || strings.TrimSpace(content) == "" {
		return validationError("content is required"), nil
	}
	category, err := req.RequireString("category")
	if err != nil || strings.TrimSpace(category) == "" {
		return validationError("category is required"), nil
	}
	importance := req.GetInt("importance", 5)
	if !validImportance(importance) {
		return validationError("importance must be between 1 and 10"), nil
	}

	m, err := t.store.Create(ctx, store.CreateParams{
		Project:    req.GetString("project", ""),
		Category:   category,
		Content:    content,
		Tags:       req.GetStringSlice("tags", nil),
		Importance: importance,
	})
	if err != nil {
		return failure("store memory", err), nil
	}

	return result(map[string]any{
		"memory_id": m.ID,
		"message":   fmt.Sprintf("Memory stored successfully (ID: %s)", m.ID),
	}), nil
}

// SearchTool searches memories by query, project, or category.
type SearchTool struct {
	store *store.SQLiteStore
}

func NewSearchTool(s *store.SQLiteStore) *SearchTool {
	return &SearchTool{store: s}
}

func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_search",
		mcp.WithDescription("Search memories by query, project, or category"),
		mcp.WithString("query",
			mcp.Description("Search query (matches content, tags, category)")),
		mcp.WithString("project", mcp.Description("Filter by project name")),
		mcp.WithString("category", mcp.Description("Filter by category")),
		mcp.WithNumber("limit", mcp.Description("Maximum results to return")),
	)
}

func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	memories, err := t.store.Search(ctx, store.SearchParams{
		Query:    req.GetString("query", ""),
		Project:  req.GetString("project", ""),
		Category: req.GetString("category", ""),
		Limit:    req.GetInt("limit", 0),
		Touch:    true,
	})
	if err != nil {
		return failure("search memories", err), nil
	}

	return result(map[string]any{
		"count":    len(memories),
		"memories": memories,
	}), nil
}

// RetrieveTool fetches one memory by id, with access bookkeeping.
type RetrieveTool struct {
	store *store.SQLiteStore
}

func NewRetrieveTool(s *store.SQLiteStore) *RetrieveTool {
	return &RetrieveTool{store: s}
}

func (t *RetrieveTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_retrieve",
		mcp.WithDescription("Retrieve a specific memory by ID"),
		mcp.WithString("memory_id", mcp.Required(),
			mcp.Description("The ID of the memory to retrieve")),
	)
}

func (t *RetrieveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("memory_id")
	if err != nil || id == "" {
		return validationError("memory_id is required"), nil
	}

	m, err := t.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return validationError("Memory not found"), nil
	}
	if err != nil {
		return failure("retrieve memory", err), nil
	}
	if err := t.store.TouchAccess(ctx, []string{id}); err != nil {
		return failure("retrieve memory", err), nil
	}
	m.AccessCount++

	return result(map[string]any{"memory": m}), nil
}

// UpdateTool edits a memory's content, tags, or importance.
type UpdateTool struct {
	store *store.SQLiteStore
}

func NewUpdateTool(s *store.SQLiteStore) *UpdateTool {
	return &UpdateTool{store: s}
}

func (t *UpdateTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_update",
		mcp.WithDescription("Update an existing memory"),
		mcp.WithString("memory_id", mcp.Required(),
			mcp.Description("The ID of the memory to update")),
		mcp.WithString("content", mcp.Description("New content")),
		mcp.WithArray("tags",
			mcp.Description("New tags"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithNumber("importance", mcp.Description("New importance level (1-10)")),
	)
}

func (t *UpdateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("memory_id")
	if err != nil || id == "" {
		return validationError("memory_id is required"), nil
	}

	// Presence decides what changes: an explicit zero or empty value is
	// validated, not treated as unset.
	args := req.GetArguments()
	p := store.UpdateParams{ID: id}
	if _, ok := args["content"]; ok {
		content := req.GetString("content", "")
		if strings.TrimSpace(content) == "" {
			return validationError("content cannot be empty"), nil
		}
		p.Content = &content
	}
	if _, ok := args["tags"]; ok {
		tags := req.GetStringSlice("tags", nil)
		if tags == nil {
			tags = []string{}
		}
		p.Tags = tags
	}
	if _, ok := args["importance"]; ok {
		importance := req.GetInt("importance", 0)
		if !validImportance(importance) {
			return validationError("importance must be between 1 and 10"), nil
		}
		p.Importance = &importance
	}

	m, err := t.store.Update(ctx, p)
	if errors.Is(err, store.ErrNotFound) {
		return validationError("Memory not found"), nil
	}
	if err != nil {
		return failure("update memory", err), nil
	}

	return result(map[string]any{
		"message": "Memory updated successfully",
		"memory":  m,
	}), nil
}

// DeleteTool removes a memory.
type DeleteTool struct {
	store *store.SQLiteStore
}

func NewDeleteTool(s *store.SQLiteStore) *DeleteTool {
	return &DeleteTool{store: s}
}

func (t *DeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("memory_delete",
		mcp.WithDescription("Delete a memory"),
		mcp.WithString("memory_id", mcp.Required(),
			mcp.Description("The ID of the memory to delete")),
	)
}

func (t *DeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("memory_id")
	if err != nil || id == "" {
		return validationError("memory_id is required"), nil
	}

	err = t.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return validationError("Memory not found"), nil
	}
	if err != nil {
		return failure("delete memory", err), nil
	}

	return result(map[string]any{
		"message": fmt.Sprintf("Memory %s deleted successfully", id),
	}), nil
}
