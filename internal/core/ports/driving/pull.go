package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
)

// Puller downloads every calendar and writes the HTML index.
type Puller interface {
	// Pull writes the index to page, then downloads each calendar below
	// outDir in index order. The first error aborts the run.
	Pull(ctx context.Context, outDir string, page io.Writer) (*domain.PullSummary, error)
}
