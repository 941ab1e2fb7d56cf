package domain

import "time"

// CatalogueEntry records one calendar written by a successful pull.
type CatalogueEntry struct {
	// Name is the relative calendar path, slash separated.
	Name string

	// Anchor is the HTML anchor of the calendar's list item.
	Anchor string

	Organisation    Organisation
	Classifications []Classification
	Disciplines     []Discipline

	// Bytes is the size of the downloaded body.
	Bytes int64

	// SHA256 is the hex digest of the downloaded body.
	SHA256 string

	// Events is the VEVENT count, or -1 when the body was not inspected.
	Events int
}

// Run describes a completed pull.
type Run struct {
	ID         string
	Year       int
	OutputDir  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// PullSummary is returned by a successful pull.
type PullSummary struct {
	Run     Run
	Entries []CatalogueEntry
}

// TotalBytes returns the number of bytes downloaded.
func (s *PullSummary) TotalBytes() int64 {
	var total int64
	for _, e := range s.Entries {
		total += e.Bytes
	}
	return total
}
