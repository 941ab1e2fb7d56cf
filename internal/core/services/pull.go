package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driven"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driving"
	"github.com/custodia-labs/eventor-calendars/internal/logger"
)

// Ensure PullService implements the interface.
var _ driving.Puller = (*PullService)(nil)

// PullService downloads every calendar of the index, one at a time.
type PullService struct {
	index     *IndexBuilder
	source    driven.CalendarSource
	inspector driven.CalendarInspector
	catalogue driven.CatalogueStore
	progress  io.Writer
	year      int

	now   func() time.Time
	newID func() string
}

// NewPullService creates a pull service.
// The inspector and catalogue are optional: with a nil inspector downloads
// are not parsed, with a nil catalogue nothing is recorded.
// Progress lines are written to progress; year 0 means the current year.
func NewPullService(
	index *IndexBuilder,
	source driven.CalendarSource,
	inspector driven.CalendarInspector,
	catalogue driven.CatalogueStore,
	progress io.Writer,
	year int,
) *PullService {
	if progress == nil {
		progress = io.Discard
	}
	return &PullService{
		index:     index,
		source:    source,
		inspector: inspector,
		catalogue: catalogue,
		progress:  progress,
		year:      year,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Pull writes the HTML index to page, then fetches each calendar into outDir.
// The first failure aborts the run; the catalogue is only written once every
// calendar has been fetched.
func (s *PullService) Pull(ctx context.Context, outDir string, page io.Writer) (*domain.PullSummary, error) {
	if outDir == "" {
		return nil, fmt.Errorf("%w: output directory is required", domain.ErrInvalidInput)
	}
	if s.source == nil {
		return nil, errors.New("calendar source not configured")
	}

	started := s.now()
	year := s.year
	if year <= 0 {
		year = started.Year()
	}

	logger.Section("Index")
	combos, err := s.index.Build(page)
	if err != nil {
		return nil, err
	}
	logger.Debug("planned %d calendars for %d", len(combos), year)

	logger.Section("Fetch")
	entries := make([]domain.CatalogueEntry, 0, len(combos))
	for _, c := range combos {
		entry, err := s.fetch(ctx, outDir, c, year)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", c.Name().Path(), err)
		}
		entries = append(entries, *entry)
	}

	summary := &domain.PullSummary{
		Run: domain.Run{
			ID:         s.newID(),
			Year:       year,
			OutputDir:  outDir,
			StartedAt:  started,
			FinishedAt: s.now(),
		},
		Entries: entries,
	}

	if s.catalogue != nil {
		if err := s.catalogue.SaveRun(ctx, summary.Run, entries); err != nil {
			return nil, fmt.Errorf("save catalogue: %w", err)
		}
		logger.Info("catalogued run %s", summary.Run.ID)
	}

	return summary, nil
}

// fetch downloads one calendar, overwriting any existing file.
func (s *PullService) fetch(
	ctx context.Context,
	outDir string,
	c domain.Combination,
	year int,
) (*domain.CatalogueEntry, error) {
	name := c.Name()
	filePath := filepath.Join(outDir, filepath.FromSlash(name.Path()))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("creating directory: %w", err)
	}

	if _, err := fmt.Fprintf(s.progress, "Fetching %s\n", name.Path()); err != nil {
		return nil, err
	}

	query := c.Query(year)
	logger.Debug("query %s", query.Values().Encode())

	written, digest, err := s.download(ctx, query, filePath)
	if err != nil {
		return nil, err
	}

	events := -1
	if s.inspector != nil {
		events, err = s.inspect(filePath)
		if err != nil {
			return nil, err
		}
		logger.Debug("%s: %d events", name.Path(), events)
	}

	return &domain.CatalogueEntry{
		Name:            name.Path(),
		Anchor:          name.Anchor(),
		Organisation:    c.Organisation,
		Classifications: c.Classifications,
		Disciplines:     c.Disciplines,
		Bytes:           written,
		SHA256:          digest,
		Events:          events,
	}, nil
}

// download streams the calendar body into filePath. The body is written to a
// temporary file in the same directory and renamed over filePath once
// complete, so a failed fetch never truncates an existing calendar.
func (s *PullService) download(ctx context.Context, query domain.Query, filePath string) (int64, string, error) {
	f, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*")
	if err != nil {
		return 0, "", fmt.Errorf("creating file: %w", err)
	}
	tmp := f.Name()

	hash := sha256.New()
	counter := &countingWriter{}
	if err := s.source.Fetch(ctx, query, io.MultiWriter(f, hash, counter)); err != nil {
		f.Close()
		os.Remove(tmp)
		return 0, "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return 0, "", fmt.Errorf("closing file: %w", err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return 0, "", fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		os.Remove(tmp)
		return 0, "", fmt.Errorf("replacing file: %w", err)
	}

	return counter.n, hex.EncodeToString(hash.Sum(nil)), nil
}

func (s *PullService) inspect(filePath string) (int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return s.inspector.Inspect(f)
}

type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
