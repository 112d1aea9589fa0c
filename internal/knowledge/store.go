// Package knowledge holds the solution knowledge base: loaded once at
// startup, keyed by category, read-only afterward, so concurrent pipelines
// share it without locking.
package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/supportloop/triage/internal/domain/models"
)

// Store is an in-memory category index over knowledge entries.
type Store struct {
	byCategory map[models.Category][]models.KnowledgeEntry
	total      int
}

// Load reads the solutions file. A missing file falls back to a single
// built-in entry so the pipeline stays operational.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return newStore(fallbackEntries()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var entries []models.KnowledgeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base %s: %w", path, err)
	}

	for i, e := range entries {
		if !e.Category.Valid() {
			return nil, fmt.Errorf("knowledge base entry %d: unknown category %q", i, e.Category)
		}
	}

	return newStore(entries), nil
}

func newStore(entries []models.KnowledgeEntry) *Store {
	byCategory := make(map[models.Category][]models.KnowledgeEntry)
	for _, e := range entries {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}
	return &Store{byCategory: byCategory, total: len(entries)}
}

// Lookup returns the entries for a category. The returned slice must be
// treated as read-only.
func (s *Store) Lookup(category models.Category) []models.KnowledgeEntry {
	return s.byCategory[category]
}

// Size returns the total number of entries loaded.
func (s *Store) Size() int {
	return s.total
}

func fallbackEntries() []models.KnowledgeEntry {
	return []models.KnowledgeEntry{
		{
			Category:           models.CategoryTechnical,
			Topic:              "General",
			Solution:           "Please try restarting the application and clearing your browser cache. If the issue persists, our technical team will investigate further.",
			EscalationRequired: false,
		},
	}
}
