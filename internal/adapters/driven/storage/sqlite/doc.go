// Package sqlite provides a SQLite implementation of driven.CatalogueStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. The catalogue records each successful pull: one row in
// runs, and one row per calendar in calendars.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; only .up.sql files are applied.
//
// # Data Location
//
// The database is stored at <dir>/catalogue.db, where dir comes from the
// --catalogue flag or the catalogue.path config key.
package sqlite
