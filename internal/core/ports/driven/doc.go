// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
//
// # Required Interfaces
//
//   - CalendarSource: Fetches calendar exports (Eventor over HTTP)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil:
//
//   - CalendarInspector: Parses downloads. Without it, bodies are not checked.
//   - CatalogueStore: Records completed runs. Without it, nothing is recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
