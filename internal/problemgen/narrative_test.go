package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinNames(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"focal length"}, "focal length"},
		{[]string{"focal length", "magnification"}, "focal length and magnification"},
		{[]string{"a", "b", "c"}, "a, b, and c"},
		{[]string{"a", "b", "c", "d"}, "a, b, c, and d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinNames(tt.items))
	}
}

func TestAssembleNarrative(t *testing.T) {
	sentences := map[Quantity]string{
		FocalLength:    "F.",
		ObjectDistance: "DO.",
		ObjectHeight:   "HO.",
		ImageDistance:  "DI.",
		ImageHeight:    "HI.",
		Magnification:  "M.",
	}
	words := map[Quantity]string{
		FocalLength:    "focal length",
		ObjectDistance: "distance of object",
		ObjectHeight:   "height of object",
		ImageDistance:  "distance of image",
		ImageHeight:    "height of image",
		Magnification:  "magnification",
	}

	tests := []struct {
		name     string
		knowns   []Quantity
		unknowns []Quantity
		want     string
	}{
		{
			name:     "object distance introduces the object",
			knowns:   []Quantity{ObjectHeight, ImageDistance, ObjectDistance},
			unknowns: []Quantity{FocalLength, ImageHeight, Magnification},
			want:     "S. DO. HO. DI. Determine the focal length, height of image, and magnification for this lens system.",
		},
		{
			name:     "height needs an introduction",
			knowns:   []Quantity{ImageDistance, ObjectHeight, Magnification},
			unknowns: []Quantity{ObjectDistance, ImageHeight, FocalLength},
			want: "S. A lamp is placed in front of the lens. HO. DI. M. " +
				"Determine the distance of object, height of image, and focal length for this lens system.",
		},
		{
			name:     "focal length first",
			knowns:   []Quantity{ImageHeight, Magnification, FocalLength},
			unknowns: []Quantity{ObjectDistance, ObjectHeight, ImageDistance},
			want: "S. F. HI. M. A lamp is placed in front of the lens. " +
				"Determine the distance of object, height of object, and distance of image for this lens system.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssembleNarrative(Narrative{
				Scenario:  "S.",
				Object:    "lamp",
				Knowns:    tt.knowns,
				Unknowns:  tt.unknowns,
				Sentences: sentences,
				FullWords: words,
			})
			assert.Equal(t, tt.want, got)
		})
	}
}
