package domain

import "time"

// DefaultBaseURL is the Eventor Australia iCalendar export endpoint.
const DefaultBaseURL = "https://eventor.orienteering.asn.au/Events/ExportICalendarEvents"

// PullSettings configures a pull run.
type PullSettings struct {
	// BaseURL is the export endpoint queried for every combination.
	BaseURL string

	// UserAgent is sent with every request. Empty leaves the HTTP default.
	UserAgent string

	// RequestsPerSecond paces requests. Zero or less disables pacing.
	RequestsPerSecond float64

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// CataloguePath is the SQLite catalogue directory. Empty disables it.
	CataloguePath string

	// Verify parses each download as iCalendar and counts its events.
	Verify bool

	// Year overrides the calendar year. Zero means the current year.
	Year int

	// Organisations narrows the organisations pulled. Empty means all.
	Organisations []Organisation
}

// DefaultPullSettings returns the settings used without configuration.
func DefaultPullSettings() PullSettings {
	return PullSettings{
		BaseURL: DefaultBaseURL,
	}
}
