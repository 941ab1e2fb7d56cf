package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driven"
)

// catalogueStore implements driven.CatalogueStore.
type catalogueStore struct {
	store *Store
}

var _ driven.CatalogueStore = (*catalogueStore)(nil)

// SaveRun stores a run and all of its entries in one transaction.
func (s *catalogueStore) SaveRun(ctx context.Context, run domain.Run, entries []domain.CatalogueEntry) error {
	if run.ID == "" {
		return fmt.Errorf("%w: run id is required", domain.ErrInvalidInput)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, year, output_dir, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Year, run.OutputDir, formatTime(run.StartedAt), formatTime(run.FinishedAt))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO calendars (run_id, position, name, anchor, organisation,
			classifications, disciplines, bytes, sha256, events)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing calendar insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		_, err := stmt.ExecContext(ctx, run.ID, i, e.Name, e.Anchor, e.Organisation.Code(),
			joinCodes(e.Classifications), joinCodes(e.Disciplines), e.Bytes, e.SHA256, e.Events)
		if err != nil {
			return fmt.Errorf("saving calendar %s: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// LatestRun returns the run with the latest finish time.
func (s *catalogueStore) LatestRun(ctx context.Context) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, year, output_dir, started_at, finished_at
		FROM runs ORDER BY finished_at DESC LIMIT 1
	`)

	var run domain.Run
	var started, finished string
	if err := row.Scan(&run.ID, &run.Year, &run.OutputDir, &started, &finished); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.StartedAt = parseTime(started)
	run.FinishedAt = parseTime(finished)
	return &run, nil
}

// Entries returns the calendars of a run in pull order.
func (s *catalogueStore) Entries(ctx context.Context, runID string) ([]domain.CatalogueEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name, anchor, organisation, classifications, disciplines, bytes, sha256, events
		FROM calendars WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying calendars: %w", err)
	}
	defer rows.Close()

	var entries []domain.CatalogueEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var e domain.CatalogueEntry
		var org int
		var classes, disciplines string
		if err := rows.Scan(&e.Name, &e.Anchor, &org, &classes, &disciplines,
			&e.Bytes, &e.SHA256, &e.Events); err != nil {
			return nil, fmt.Errorf("scanning calendar: %w", err)
		}

		e.Organisation = domain.Organisation(org)
		if e.Classifications, err = splitCodes[domain.Classification](classes); err != nil {
			return nil, err
		}
		if e.Disciplines, err = splitCodes[domain.Discipline](disciplines); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendars: %w", err)
	}
	return entries, nil
}

func joinCodes[T interface{ Code() int }](values []T) string {
	codes := make([]string, len(values))
	for i, v := range values {
		codes[i] = strconv.Itoa(v.Code())
	}
	return strings.Join(codes, ",")
}

func splitCodes[T ~int](s string) ([]T, error) {
	out := []T{}
	if s == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parsing code %q: %w", part, err)
		}
		out = append(out, T(n))
	}
	return out, nil
}

// timeLayout has fixed-width fractions so stored times sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
