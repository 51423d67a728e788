package optics

import "math"

// Size compares image height to object height.
type Size string

const (
	Larger   Size = "Larger"
	Smaller  Size = "Smaller"
	SameSize Size = "Same size"
)

// Attitude reports whether the image is upright or inverted.
type Attitude string

const (
	Upright  Attitude = "Upright"
	Inverted Attitude = "Inverted"
)

// Location describes where the image forms.
type Location string

const (
	LocationBetweenFAnd2F Location = "Between f and 2f"
	LocationAt2F          Location = "At 2f"
	LocationBeyond2F      Location = "Beyond 2f"
	LocationNoImage       Location = "No image formed"
	LocationSameSide      Location = "Same side as object"
)

// ImageType is real, virtual, or absent.
type ImageType string

const (
	Real    ImageType = "Real"
	Virtual ImageType = "Virtual"
	NoImage ImageType = "No image"
)

// SALT is the Size, Attitude, Location and Type of an image.
type SALT struct {
	Size     Size
	Attitude Attitude
	Location Location
	Type     ImageType
}

// Rule maps an object position to an image location and type.
type Rule struct {
	// Condition is a human-readable form of the object position test.
	Condition string
	Location  Location
	Type      ImageType

	match func(do, f float64) bool
}

// convergingRules are evaluated in order; the first match wins.
var convergingRules = []Rule{
	{
		Condition: "do > 2f",
		Location:  LocationBetweenFAnd2F,
		Type:      Real,
		match:     func(do, f float64) bool { return do > 2*f && !nearlyEqual(do, 2*f) },
	},
	{
		Condition: "do = 2f",
		Location:  LocationAt2F,
		Type:      Real,
		match:     func(do, f float64) bool { return nearlyEqual(do, 2*f) },
	},
	{
		Condition: "f < do < 2f",
		Location:  LocationBeyond2F,
		Type:      Real,
		match:     func(do, f float64) bool { return do > f && !nearlyEqual(do, f) },
	},
	{
		Condition: "do = f",
		Location:  LocationNoImage,
		Type:      NoImage,
		match:     func(do, f float64) bool { return nearlyEqual(do, f) },
	},
	{
		Condition: "do < f",
		Location:  LocationSameSide,
		Type:      Virtual,
		match:     func(do, f float64) bool { return true },
	},
}

var divergingRules = []Rule{
	{
		Condition: "any do",
		Location:  LocationSameSide,
		Type:      Virtual,
		match:     func(do, f float64) bool { return true },
	},
}

// Rules returns the location rules for a lens type in evaluation order.
func Rules(lens LensType) []Rule {
	src := convergingRules
	if lens == Diverging {
		src = divergingRules
	}
	out := make([]Rule, len(src))
	copy(out, src)
	return out
}

// Classify derives the SALT description of an image. focalLength may be
// signed; only its magnitude is used. When no image forms, Size and
// Attitude report the limiting case of an object approaching the focal
// point from outside: an infinitely large, inverted image.
func Classify(lens LensType, focalLength, objectDistance, imageHeight, objectHeight float64) SALT {
	f := math.Abs(focalLength)

	var s SALT
	for _, r := range Rules(lens) {
		if r.match(objectDistance, f) {
			s.Location = r.Location
			s.Type = r.Type
			break
		}
	}

	if s.Type == NoImage {
		s.Size = Larger
		s.Attitude = Inverted
		return s
	}

	hi, ho := math.Abs(imageHeight), math.Abs(objectHeight)
	switch {
	case nearlyEqual(hi, ho):
		s.Size = SameSize
	case hi > ho:
		s.Size = Larger
	default:
		s.Size = Smaller
	}

	if imageHeight*objectHeight > 0 {
		s.Attitude = Upright
	} else {
		s.Attitude = Inverted
	}
	return s
}
