package domain

// Combination is one filter triple whose calendar is downloaded.
type Combination struct {
	Organisation    Organisation
	Classifications []Classification
	Disciplines     []Discipline
}

// Name returns the calendar name of the combination. The discipline
// segment is always present.
func (c Combination) Name() Name {
	return Name{
		Organisation:    c.Organisation,
		Classifications: c.Classifications,
		Disciplines:     c.Disciplines,
		WithDisciplines: true,
	}
}

// Query returns the export query for the combination over the given year.
func (c Combination) Query(year int) Query {
	start, end := YearRange(year)
	return Query{
		Start:           start,
		End:             end,
		Organisation:    c.Organisation,
		Classifications: c.Classifications,
		Disciplines:     c.Disciplines,
	}
}
