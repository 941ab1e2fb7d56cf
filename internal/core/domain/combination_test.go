package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allCombinations mirrors the index traversal order.
func allCombinations(orgs []Organisation) []Combination {
	var out []Combination
	for _, org := range orgs {
		for _, classes := range ClassificationSets() {
			for _, disciplines := range DisciplineSets() {
				out = append(out, Combination{
					Organisation:    org,
					Classifications: classes,
					Disciplines:     disciplines,
				})
			}
		}
	}
	return out
}

func TestCombinations_CountAndUniqueness(t *testing.T) {
	combos := allCombinations(Organisations())
	require.Len(t, combos, 8*4*7)

	seen := make(map[string]bool, len(combos))
	for _, c := range combos {
		p := c.Name().Path()
		assert.False(t, seen[p], "duplicate %s", p)
		seen[p] = true
	}
}

func TestCombination_Query(t *testing.T) {
	c := Combination{
		Organisation:    OrganisationNSW,
		Classifications: []Classification{ClassificationLocal, ClassificationClub},
		Disciplines:     []Discipline{DisciplineFoot, DisciplineParkAndStreet},
	}

	q := c.Query(2026)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), q.Start)
	assert.Equal(t, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), q.End)

	v := q.Values()
	assert.Equal(t, "2026-01-01", v.Get(ParamStartDate))
	assert.Equal(t, "2026-12-31", v.Get(ParamEndDate))
	assert.Equal(t, "5", v.Get(ParamOrganisations))
	assert.Equal(t, "4,5", v.Get(ParamClassifications))
	assert.Equal(t, "0,1", v.Get(ParamDisciplines))
	assert.Equal(t,
		"classifications=4%2C5&disciplines=0%2C1&endDate=2026-12-31&organisations=5&startDate=2026-01-01",
		v.Encode())
}

func TestQuery_OmitsEmptyDisciplines(t *testing.T) {
	c := Combination{
		Organisation:    OrganisationAll,
		Classifications: ClassificationSets()[0],
		Disciplines:     []Discipline{},
	}

	v := c.Query(2025).Values()
	assert.Equal(t, "0,1,2,3,4,5", v.Get(ParamClassifications))
	assert.Equal(t, "2", v.Get(ParamOrganisations))
	_, ok := v[ParamDisciplines]
	assert.False(t, ok)
}

func TestDefaultPullSettings(t *testing.T) {
	s := DefaultPullSettings()
	assert.Equal(t, DefaultBaseURL, s.BaseURL)
	assert.Zero(t, s.Year)
	assert.Empty(t, s.Organisations)
	assert.False(t, s.Verify)
}

func TestPullSummary_TotalBytes(t *testing.T) {
	s := &PullSummary{Entries: []CatalogueEntry{{Bytes: 10}, {Bytes: 32}}}
	assert.Equal(t, int64(42), s.TotalBytes())
}
