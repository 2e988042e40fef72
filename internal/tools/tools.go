// Package tools implements the MCP tool surface. Each lifecycle
// operation is one tool struct exposing Definition and Handle, so
// every operation's parameter set is statically enumerable.
//
// Every handler converts internal failures into a uniform
// success/error JSON envelope; a bad request never crashes the host
// process.
package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rcliao/memkeep/internal/model"
)

// result marshals a success payload into a tool result.
func result(v map[string]any) *mcp.CallToolResult {
	v["success"] = true
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return failure("encode result", err)
	}
	return mcp.NewToolResultText(string(b))
}

// failure wraps an error into the uniform envelope.
func failure(op string, err error) *mcp.CallToolResult {
	slog.Error("tool call failed", "op", op, "error", err)
	b, _ := json.Marshal(map[string]any{
		"success": false,
		"error":   fmt.Sprintf("%s: %v", op, err),
	})
	r := mcp.NewToolResultText(string(b))
	r.IsError = true
	return r
}

// validationError rejects a request before it touches storage.
func validationError(msg string) *mcp.CallToolResult {
	b, _ := json.Marshal(map[string]any{"success": false, "error": msg})
	r := mcp.NewToolResultText(string(b))
	r.IsError = true
	return r
}

// validImportance bounds write-path importance. Out-of-range values
// already in storage (e.g. via import) are tolerated downstream.
func validImportance(n int) bool {
	return n >= 1 && n <= 10
}

// preview is the truncated memory rendering used in batch results.
type preview struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	Project     string `json:"project"`
	Category    string `json:"category,omitempty"`
	Importance  int    `json:"importance,omitempty"`
	AccessCount int    `json:"access_count,omitempty"`
	AgeDays     int    `json:"age_days,omitempty"`
}

func previewOf(m model.Memory, maxContent int) preview {
	return preview{
		ID:      m.ID,
		Content: truncate(m.Content, maxContent),
		Project: m.ProjectName,
	}
}

// truncate limits text to max characters, never splitting a rune.
func truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}
