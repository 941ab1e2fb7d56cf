// Package domain defines the core types of the calendar puller.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Organisation, Classification, Discipline: the Eventor filter dimensions
//   - Combination: one filter triple and its calendar
//   - Name: file path and anchor naming
//   - Query: the export request for a combination
//   - CatalogueEntry, Run: the record of a completed pull
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
