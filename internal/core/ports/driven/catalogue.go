package driven

import (
	"context"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
)

// CatalogueStore persists the record of completed pulls.
type CatalogueStore interface {
	// SaveRun stores a run and its entries atomically.
	SaveRun(ctx context.Context, run domain.Run, entries []domain.CatalogueEntry) error

	// LatestRun returns the most recently finished run.
	// Returns domain.ErrNotFound if no run has been saved.
	LatestRun(ctx context.Context) (*domain.Run, error)

	// Entries returns the entries of a run in pull order.
	Entries(ctx context.Context, runID string) ([]domain.CatalogueEntry, error)
}
