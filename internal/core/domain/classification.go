package domain

import (
	"fmt"
	"strings"
)

// Classification is the Eventor classification (level) of an event.
type Classification int

// Event classifications.
const (
	ClassificationInternational Classification = 0
	ClassificationChampionship  Classification = 1
	ClassificationNational      Classification = 2
	ClassificationRegional      Classification = 3
	ClassificationLocal         Classification = 4
	ClassificationClub          Classification = 5
)

var classificationNames = []string{
	"International",
	"Championship",
	"National",
	"Regional",
	"Local",
	"Club",
}

// classificationSets are the curated classification filters published in the index.
var classificationSets = [][]Classification{
	{
		ClassificationInternational,
		ClassificationChampionship,
		ClassificationNational,
		ClassificationRegional,
		ClassificationLocal,
		ClassificationClub,
	},
	{
		ClassificationInternational,
		ClassificationChampionship,
		ClassificationNational,
		ClassificationRegional,
	},
	{
		ClassificationChampionship,
		ClassificationRegional,
		ClassificationLocal,
	},
	{
		ClassificationLocal,
		ClassificationClub,
	},
}

// Classifications returns every classification in code order.
func Classifications() []Classification {
	all := make([]Classification, len(classificationNames))
	for i := range all {
		all[i] = Classification(i)
	}
	return all
}

// ClassificationSets returns the curated classification combinations in index order.
func ClassificationSets() [][]Classification {
	return copySets(classificationSets)
}

// Code returns the Eventor classification id.
func (c Classification) Code() int {
	return int(c)
}

// Valid reports whether c is a known classification.
func (c Classification) Valid() bool {
	return c >= 0 && int(c) < len(classificationNames)
}

// String returns the classification name.
func (c Classification) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Classification(%d)", int(c))
	}
	return classificationNames[c]
}

// ParseClassification looks up a classification by name, ignoring case.
func ParseClassification(s string) (Classification, error) {
	for i, name := range classificationNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Classification(i), nil
		}
	}
	return 0, fmt.Errorf("%w: classification %q", ErrUnsupportedValue, s)
}

func copySets[T any](sets [][]T) [][]T {
	out := make([][]T, len(sets))
	for i, set := range sets {
		out[i] = append(make([]T, 0, len(set)), set...)
	}
	return out
}
