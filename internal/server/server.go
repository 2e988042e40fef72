// Package server wires the store, summarizer, and tools into the MCP
// server instance. No business logic lives here, only composition.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/rcliao/memkeep/internal/config"
	"github.com/rcliao/memkeep/internal/store"
	"github.com/rcliao/memkeep/internal/summarize"
	"github.com/rcliao/memkeep/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with every lifecycle tool registered.
// The returned cleanup function closes the store and must be called
// on shutdown.
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	st, err := store.NewSQLiteStore(cfg.DBPath, store.Options{
		DefaultProject: cfg.DefaultProject,
		SearchLimit:    cfg.SearchLimit,
	})
	if err != nil {
		return nil, func() {}, fmt.Errorf("open store: %w", err)
	}
	cleanup := func() { st.Close() }

	summarizer := summarize.New()

	s := server.NewMCPServer(
		"memkeep",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions()),
	)

	// Core lifecycle
	storeTool := tools.NewStoreTool(st)
	s.AddTool(storeTool.Definition(), storeTool.Handle)

	searchTool := tools.NewSearchTool(st)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	retrieveTool := tools.NewRetrieveTool(st)
	s.AddTool(retrieveTool.Definition(), retrieveTool.Handle)

	updateTool := tools.NewUpdateTool(st)
	s.AddTool(updateTool.Definition(), updateTool.Handle)

	deleteTool := tools.NewDeleteTool(st)
	s.AddTool(deleteTool.Definition(), deleteTool.Handle)

	// Project views
	projectSummary := tools.NewProjectSummaryTool(st)
	s.AddTool(projectSummary.Definition(), projectSummary.Handle)

	listProjects := tools.NewListProjectsTool(st)
	s.AddTool(listProjects.Definition(), listProjects.Handle)

	// Summarization
	summarizeProject := tools.NewSummarizeProjectTool(st, summarizer)
	s.AddTool(summarizeProject.Definition(), summarizeProject.Handle)

	analyzeStorage := tools.NewAnalyzeStorageTool(st, summarizer)
	s.AddTool(analyzeStorage.Definition(), analyzeStorage.Handle)

	// Archival lifecycle
	suggestArchival := tools.NewSuggestArchivalTool(st)
	s.AddTool(suggestArchival.Definition(), suggestArchival.Handle)

	archiveTool := tools.NewArchiveTool(st)
	s.AddTool(archiveTool.Definition(), archiveTool.Handle)

	unarchiveTool := tools.NewUnarchiveTool(st)
	s.AddTool(unarchiveTool.Definition(), unarchiveTool.Handle)

	cleanupTool := tools.NewCleanupTool(st)
	s.AddTool(cleanupTool.Definition(), cleanupTool.Handle)

	return s, cleanup, nil
}

func instructions() string {
	return `memkeep is a personal knowledge-memory store. Store short notes
("memories") tagged by project, category, and importance, then search
them later. Use memory_store when you learn something worth keeping
(decisions, fixes, commands, setup steps), memory_search before
re-deriving anything, and project_summary or memory_summarize_project
to catch up on a project. memory_cleanup and memory_suggest_archival
keep the store small; both respect dry-run semantics.`
}
