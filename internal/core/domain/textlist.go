package domain

import "strings"

// TextList joins items as English prose: "A", "A and B", "A, B, and C".
// An empty list yields "".
func TextList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}

	last := len(items) - 1
	return strings.Join(items[:last], ", ") + ", and " + items[last]
}

// Names returns the String form of each value.
func Names[T interface{ String() string }](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

// Descriptions returns the descriptive form of each discipline.
func Descriptions(disciplines []Discipline) []string {
	out := make([]string, len(disciplines))
	for i, d := range disciplines {
		out[i] = d.Description()
	}
	return out
}
