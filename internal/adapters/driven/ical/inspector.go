// Package ical implements driven.CalendarInspector with golang-ical.
package ical

import (
	"fmt"
	"io"

	ics "github.com/arran4/golang-ical"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driven"
)

// Ensure Inspector implements the interface.
var _ driven.CalendarInspector = (*Inspector)(nil)

// Inspector parses downloaded calendars without modifying them.
type Inspector struct{}

// NewInspector creates an inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses r and counts its VEVENT components.
func (i *Inspector) Inspect(r io.Reader) (int, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidCalendar, err)
	}

	events := 0
	for _, component := range cal.Components {
		if _, ok := component.(*ics.VEvent); ok {
			events++
		}
	}
	return events, nil
}
