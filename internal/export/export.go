// Package export reads and writes the sanitized memory interchange
// document. Export redacts secrets before memories leave the machine;
// import trusts the document as already sanitized.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rcliao/memkeep/internal/model"
	"github.com/rcliao/memkeep/internal/sanitize"
	"github.com/rcliao/memkeep/internal/store"
)

// Version identifies the document format.
const Version = "1.0"

// Record is a memory as it appears in the document: the entity plus
// sanitization markers set only when redactions occurred.
type Record struct {
	model.Memory
	Sanitized      bool `json:"_sanitized,omitempty"`
	RedactionCount int  `json:"_redaction_count,omitempty"`
}

// Document is the export file format.
type Document struct {
	Version         string    `json:"version"`
	ExportedAt      time.Time `json:"exported_at"`
	SourcePath      string    `json:"source_path"`
	TotalMemories   int       `json:"total_memories"`
	TotalRedactions int       `json:"total_redactions"`
	Memories        []Record  `json:"memories"`
}

// ImportMode selects duplicate handling on import.
type ImportMode int

const (
	// Merge skips memories whose id already exists in the target.
	Merge ImportMode = iota
	// Replace clears the target store before inserting.
	Replace
)

// ImportResult reports what an import did.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Exporter builds documents from a store through a sanitizer.
type Exporter struct {
	store      *store.SQLiteStore
	engine     *sanitize.Engine
	sourcePath string
}

// NewExporter returns an Exporter. sourcePath is recorded in the
// document for provenance only.
func NewExporter(s *store.SQLiteStore, engine *sanitize.Engine, sourcePath string) *Exporter {
	return &Exporter{store: s, engine: engine, sourcePath: sourcePath}
}

// Build loads all memories (optionally one project), sanitizes each
// content field, and assembles the document.
func (e *Exporter) Build(ctx context.Context, project string) (*Document, error) {
	memories, err := e.store.ExportAll(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("load memories: %w", err)
	}

	doc := &Document{
		Version:       Version,
		ExportedAt:    time.Now().UTC(),
		SourcePath:    e.sourcePath,
		TotalMemories: len(memories),
		Memories:      make([]Record, 0, len(memories)),
	}

	for _, m := range memories {
		rec := Record{Memory: m}
		clean, n := e.engine.Sanitize(m.Content)
		if n > 0 {
			rec.Content = clean
			rec.Sanitized = true
			rec.RedactionCount = n
			doc.TotalRedactions += n
		}
		doc.Memories = append(doc.Memories, rec)
	}
	return doc, nil
}

// WriteFile builds the document and writes it as indented JSON.
func (e *Exporter) WriteFile(ctx context.Context, project, path string) (*Document, error) {
	doc, err := e.Build(ctx, project)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("write export: %w", err)
	}
	return doc, nil
}

// ReadFile parses a document, failing fast when the file is missing.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &doc, nil
}

// Import applies a document to the store. Content is not
// re-sanitized. Merge mode skips ids already present; Replace clears
// the store first.
func Import(ctx context.Context, s *store.SQLiteStore, doc *Document, mode ImportMode) (*ImportResult, error) {
	if mode == Replace {
		if err := s.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear store: %w", err)
		}
	}

	res := &ImportResult{}
	for _, rec := range doc.Memories {
		if mode == Merge {
			exists, err := s.HasID(ctx, rec.ID)
			if err != nil {
				return res, err
			}
			if exists {
				res.Skipped++
				continue
			}
		}
		if err := s.InsertRaw(ctx, rec.Memory); err != nil {
			return res, fmt.Errorf("insert %s: %w", rec.ID, err)
		}
		res.Imported++
	}
	return res, nil
}
