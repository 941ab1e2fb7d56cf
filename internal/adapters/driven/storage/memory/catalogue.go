package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driven"
)

// Ensure CatalogueStore implements the interface.
var _ driven.CatalogueStore = (*CatalogueStore)(nil)

// CatalogueStore is an in-memory implementation of driven.CatalogueStore.
type CatalogueStore struct {
	mu      sync.RWMutex
	runs    []domain.Run
	entries map[string][]domain.CatalogueEntry
}

// NewCatalogueStore creates a new in-memory catalogue.
func NewCatalogueStore() *CatalogueStore {
	return &CatalogueStore{
		entries: make(map[string][]domain.CatalogueEntry),
	}
}

// SaveRun stores a run and its entries.
func (s *CatalogueStore) SaveRun(_ context.Context, run domain.Run, entries []domain.CatalogueEntry) error {
	if run.ID == "" {
		return fmt.Errorf("%w: run id is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[run.ID]; exists {
		return fmt.Errorf("run %s already saved", run.ID)
	}

	s.runs = append(s.runs, run)
	s.entries[run.ID] = append([]domain.CatalogueEntry{}, entries...)
	return nil
}

// LatestRun returns the run with the latest finish time.
func (s *CatalogueStore) LatestRun(_ context.Context) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.runs) == 0 {
		return nil, domain.ErrNotFound
	}

	latest := s.runs[0]
	for _, run := range s.runs[1:] {
		if run.FinishedAt.After(latest.FinishedAt) {
			latest = run
		}
	}
	return &latest, nil
}

// Entries returns the entries of a run in pull order.
func (s *CatalogueStore) Entries(_ context.Context, runID string) ([]domain.CatalogueEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.CatalogueEntry(nil), s.entries[runID]...), nil
}
