package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{name: "Nil", input: nil, expected: ""},
		{name: "Empty", input: []string{}, expected: ""},
		{name: "One", input: []string{"Foot"}, expected: "Foot"},
		{name: "Two", input: []string{"Foot", "Ski"}, expected: "Foot and Ski"},
		{name: "Three", input: []string{"Foot", "Ski", "Radio"}, expected: "Foot, Ski, and Radio"},
		{
			name:     "Six",
			input:    Names(Classifications()),
			expected: "International, Championship, National, Regional, Local, and Club",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TextList(tt.input))
		})
	}
}

func TestTextList_DoesNotMutate(t *testing.T) {
	items := []string{"Foot", "Ski", "Radio"}
	_ = TextList(items)
	assert.Equal(t, []string{"Foot", "Ski", "Radio"}, items)
}
