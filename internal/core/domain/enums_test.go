package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganisations_Order(t *testing.T) {
	orgs := Organisations()
	require.Len(t, orgs, 8)

	var shorts []string
	for _, o := range orgs {
		shorts = append(shorts, o.String())
	}
	assert.Equal(t, []string{"All", "ACT", "NSW", "Qld", "SA", "Tas", "Vic", "WA"}, shorts)
}

func TestOrganisations_ReturnsCopy(t *testing.T) {
	orgs := Organisations()
	orgs[0] = OrganisationWA
	assert.Equal(t, OrganisationAll, Organisations()[0])
}

func TestOrganisation_CodesAndDescriptions(t *testing.T) {
	tests := []struct {
		org         Organisation
		code        int
		description string
	}{
		{OrganisationAll, 2, "All Organisations"},
		{OrganisationACT, 4, "Australian Capital Territory (ACT)"},
		{OrganisationNSW, 5, "New South Wales (NSW)"},
		{OrganisationQLD, 6, "Queensland"},
		{OrganisationSA, 7, "South Australia (SA)"},
		{OrganisationTAS, 8, "Tasmania"},
		{OrganisationVIC, 9, "Victoria"},
		{OrganisationWA, 10, "Western Australia (WA)"},
	}

	for _, tt := range tests {
		t.Run(tt.org.String(), func(t *testing.T) {
			assert.True(t, tt.org.Valid())
			assert.Equal(t, tt.code, tt.org.Code())
			assert.Equal(t, tt.description, tt.org.Description())
		})
	}
}

func TestOrganisation_Unknown(t *testing.T) {
	o := Organisation(3)
	assert.False(t, o.Valid())
	assert.Equal(t, "Organisation(3)", o.String())
	assert.Equal(t, unknownDescription, o.Description())
}

func TestParseOrganisation(t *testing.T) {
	o, err := ParseOrganisation("qld")
	require.NoError(t, err)
	assert.Equal(t, OrganisationQLD, o)

	o, err = ParseOrganisation(" NSW ")
	require.NoError(t, err)
	assert.Equal(t, OrganisationNSW, o)

	_, err = ParseOrganisation("NT")
	assert.True(t, errors.Is(err, ErrUnsupportedValue))
}

func TestClassifications(t *testing.T) {
	assert.Equal(t,
		[]string{"International", "Championship", "National", "Regional", "Local", "Club"},
		Names(Classifications()))
	assert.False(t, Classification(6).Valid())
	assert.Equal(t, "Classification(-1)", Classification(-1).String())
}

func TestClassificationSets(t *testing.T) {
	sets := ClassificationSets()
	require.Len(t, sets, 4)

	assert.Len(t, sets[0], 6)
	assert.Equal(t, []Classification{
		ClassificationInternational,
		ClassificationChampionship,
		ClassificationNational,
		ClassificationRegional,
	}, sets[1])
	assert.Equal(t, []Classification{
		ClassificationChampionship,
		ClassificationRegional,
		ClassificationLocal,
	}, sets[2])
	assert.Equal(t, []Classification{ClassificationLocal, ClassificationClub}, sets[3])

	// Mutating the result leaves the table alone.
	sets[3][0] = ClassificationClub
	assert.Equal(t, ClassificationLocal, ClassificationSets()[3][0])
}

func TestParseClassification(t *testing.T) {
	c, err := ParseClassification("regional")
	require.NoError(t, err)
	assert.Equal(t, ClassificationRegional, c)

	_, err = ParseClassification("Olympic")
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestDisciplines(t *testing.T) {
	ds := Disciplines()
	assert.Equal(t, []string{"Foot", "ParkAndStreet", "MountainBike", "Radio", "Ski"}, Names(ds))
	assert.Equal(t, []string{"Foot", "Urban", "Mountain Bike", "Radio", "Ski"}, Descriptions(ds))
	assert.Equal(t, unknownDescription, Discipline(9).Description())
}

func TestDisciplineSets(t *testing.T) {
	sets := DisciplineSets()
	require.Len(t, sets, 7)

	assert.NotNil(t, sets[0])
	assert.Empty(t, sets[0])
	for i, d := range Disciplines() {
		assert.Equal(t, []Discipline{d}, sets[i+1])
	}
	assert.Equal(t, []Discipline{DisciplineFoot, DisciplineParkAndStreet}, sets[6])
}

func TestParseDiscipline(t *testing.T) {
	d, err := ParseDiscipline("mountainbike")
	require.NoError(t, err)
	assert.Equal(t, DisciplineMountainBike, d)

	_, err = ParseDiscipline("Urban")
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}
