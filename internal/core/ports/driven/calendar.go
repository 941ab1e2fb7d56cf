package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
)

// CalendarSource fetches calendar exports from a remote service.
type CalendarSource interface {
	// Fetch requests the calendar for query and copies the response body
	// verbatim to w. Any transport failure or non-success status is an error.
	Fetch(ctx context.Context, query domain.Query, w io.Writer) error
}

// CalendarInspector checks downloaded calendars.
type CalendarInspector interface {
	// Inspect parses r as iCalendar and returns the number of events.
	// Returns domain.ErrInvalidCalendar if r cannot be parsed.
	Inspect(r io.Reader) (int, error)
}
