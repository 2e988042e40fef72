// Package store provides the memory storage interface and SQLite
// implementation.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rcliao/memkeep/internal/model"
)

// ErrNotFound is returned when an id has no matching record.
var ErrNotFound = errors.New("memory not found")

// CreateParams holds parameters for storing a memory.
type CreateParams struct {
	Project    string
	Category   string
	Content    string
	Tags       []string
	Importance int
	Context    map[string]any
}

// SearchParams holds parameters for searching memories.
//
// Touch selects whether the read applies access bookkeeping. The read
// and the bookkeeping write are two distinct phases; with Touch set
// they run inside one transaction.
type SearchParams struct {
	Query           string
	Project         string
	Category        string
	Limit           int
	IncludeArchived bool
	Touch           bool
}

// UpdateParams holds parameters for editing a memory. Nil fields are
// left unchanged.
type UpdateParams struct {
	ID         string
	Content    *string
	Tags       []string // nil means unchanged
	Importance *int
}

// ListParams holds parameters for loading memories without ranking.
type ListParams struct {
	Project         string
	IncludeArchived bool
}

// CleanupParams holds parameters for the automated archival pass.
type CleanupParams struct {
	Project       string
	DaysOld       int
	MaxImportance int
	DryRun        bool
}

// CleanupResult reports what cleanup selected and whether it mutated.
type CleanupResult struct {
	Candidates []model.Memory
	Performed  bool
}

// ProjectInfo summarizes one project for listing.
type ProjectInfo struct {
	Project     string     `json:"project"`
	MemoryCount int        `json:"memory_count"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// Store defines the memory storage capability: create, read, update,
// delete, and predicate queries over Memory records.
type Store interface {
	// Create stores a new memory and returns it with its assigned id.
	Create(ctx context.Context, p CreateParams) (*model.Memory, error)

	// Get retrieves a memory by id without access bookkeeping.
	Get(ctx context.Context, id string) (*model.Memory, error)

	// TouchAccess applies access bookkeeping (accessed_at = now,
	// access_count + 1) to the given ids as one batch.
	TouchAccess(ctx context.Context, ids []string) error

	// Search filters and orders memories by importance then recency.
	Search(ctx context.Context, p SearchParams) ([]model.Memory, error)

	// Update edits a memory, recomputing search text when content or
	// tags change. Returns ErrNotFound for an unknown id.
	Update(ctx context.Context, p UpdateParams) (*model.Memory, error)

	// Delete removes a memory. Returns ErrNotFound for an unknown id.
	Delete(ctx context.Context, id string) error

	// List loads memories for advisory scoring, unranked.
	List(ctx context.Context, p ListParams) ([]model.Memory, error)

	// Archive transitions ids to archived; missing ids are skipped
	// silently. Returns the memories actually archived.
	Archive(ctx context.Context, ids []string, reason string) ([]model.Memory, error)

	// Unarchive clears the archived state; ids that are missing or
	// not archived are skipped. Returns the memories unarchived.
	Unarchive(ctx context.Context, ids []string) ([]model.Memory, error)

	// Cleanup reads candidates and, unless DryRun, archives them in
	// the same transaction so the candidate set is a snapshot.
	Cleanup(ctx context.Context, p CleanupParams) (*CleanupResult, error)

	// ListProjects returns per-project counts ordered by count.
	ListProjects(ctx context.Context) ([]ProjectInfo, error)

	// Close closes the store.
	Close() error
}
