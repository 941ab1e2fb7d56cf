package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO date format Eventor expects.
const DateLayout = "2006-01-02"

// Query parameter names understood by the Eventor iCalendar export.
const (
	ParamStartDate       = "startDate"
	ParamEndDate         = "endDate"
	ParamOrganisations   = "organisations"
	ParamClassifications = "classifications"
	ParamDisciplines     = "disciplines"
)

// Query describes a single calendar export request.
type Query struct {
	Start           time.Time
	End             time.Time
	Organisation    Organisation
	Classifications []Classification
	Disciplines     []Discipline
}

// YearRange returns January 1 and December 31 of year.
func YearRange(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Values encodes the query. The disciplines parameter is omitted when no
// discipline filter applies.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set(ParamStartDate, q.Start.Format(DateLayout))
	v.Set(ParamEndDate, q.End.Format(DateLayout))
	v.Set(ParamOrganisations, strconv.Itoa(q.Organisation.Code()))
	v.Set(ParamClassifications, joinCodes(q.Classifications))
	if len(q.Disciplines) > 0 {
		v.Set(ParamDisciplines, joinCodes(q.Disciplines))
	}
	return v
}

func joinCodes[T interface{ Code() int }](values []T) string {
	codes := make([]string, len(values))
	for i, v := range values {
		codes[i] = strconv.Itoa(v.Code())
	}
	return strings.Join(codes, ",")
}
