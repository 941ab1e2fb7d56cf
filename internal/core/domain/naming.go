package domain

import (
	"path"
	"strings"
)

// allDisciplines names the discipline segment of an unfiltered calendar.
const allDisciplines = "All"

// CalendarExt is the extension of every downloaded calendar.
const CalendarExt = ".ics"

// Name identifies a calendar file or a heading in the index.
// Organisation-only and organisation+classification names are used for
// headings; full names identify calendars.
type Name struct {
	Organisation    Organisation
	Classifications []Classification
	Disciplines     []Discipline

	// WithDisciplines adds the discipline segment. An empty Disciplines
	// slice then renders as "All".
	WithDisciplines bool
}

// Segments returns the name parts in order.
func (n Name) Segments() []string {
	segments := []string{n.Organisation.String()}
	if len(n.Classifications) > 0 {
		segments = append(segments, strings.Join(Names(n.Classifications), "-"))
	}
	if n.WithDisciplines {
		if len(n.Disciplines) > 0 {
			segments = append(segments, strings.Join(Names(n.Disciplines), "-"))
		} else {
			segments = append(segments, allDisciplines)
		}
	}
	return segments
}

// Path returns the slash-separated relative path of the calendar file.
func (n Name) Path() string {
	return path.Join(n.Segments()...) + CalendarExt
}

// Anchor returns the HTML anchor id for the name.
func (n Name) Anchor() string {
	return strings.Join(n.Segments(), ".")
}
