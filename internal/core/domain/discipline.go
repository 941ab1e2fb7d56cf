package domain

import (
	"fmt"
	"strings"
)

// Discipline is an orienteering discipline as known to Eventor.
type Discipline int

// Disciplines.
const (
	DisciplineFoot          Discipline = 0
	DisciplineParkAndStreet Discipline = 1
	DisciplineMountainBike  Discipline = 2
	DisciplineRadio         Discipline = 3
	DisciplineSki           Discipline = 4
)

type disciplineInfo struct {
	short       string
	description string
}

var disciplineInfos = []disciplineInfo{
	{"Foot", "Foot"},
	{"ParkAndStreet", "Urban"},
	{"MountainBike", "Mountain Bike"},
	{"Radio", "Radio"},
	{"Ski", "Ski"},
}

// Disciplines returns every discipline in code order.
func Disciplines() []Discipline {
	all := make([]Discipline, len(disciplineInfos))
	for i := range all {
		all[i] = Discipline(i)
	}
	return all
}

// DisciplineSets returns the curated discipline combinations in index order:
// the empty set (every discipline), each discipline alone, then foot with
// park and street.
func DisciplineSets() [][]Discipline {
	sets := [][]Discipline{{}}
	for _, d := range Disciplines() {
		sets = append(sets, []Discipline{d})
	}
	return append(sets, []Discipline{DisciplineFoot, DisciplineParkAndStreet})
}

// Code returns the Eventor discipline id.
func (d Discipline) Code() int {
	return int(d)
}

// Valid reports whether d is a known discipline.
func (d Discipline) Valid() bool {
	return d >= 0 && int(d) < len(disciplineInfos)
}

// String returns the short name used in file names and anchors.
func (d Discipline) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
	return disciplineInfos[d].short
}

// Description returns the link text for the discipline.
func (d Discipline) Description() string {
	if !d.Valid() {
		return unknownDescription
	}
	return disciplineInfos[d].description
}

// ParseDiscipline looks up a discipline by short name, ignoring case.
func ParseDiscipline(s string) (Discipline, error) {
	for i, info := range disciplineInfos {
		if strings.EqualFold(info.short, strings.TrimSpace(s)) {
			return Discipline(i), nil
		}
	}
	return 0, fmt.Errorf("%w: discipline %q", ErrUnsupportedValue, s)
}
