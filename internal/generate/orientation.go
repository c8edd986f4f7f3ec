package generate

import "math/rand"

// DimensionStep is the pixel granularity the inference backend accepts.
// All generated dimensions are multiples of this value.
const DimensionStep = 64

const (
	defaultDimension  = 512
	OrientationCustom = "custom"
	OrientationRandom = "random"
	OrientationSquare = "square"
)

// Orientation is a resolved aspect-ratio preset with concrete dimensions.
type Orientation struct {
	Name   string `json:"orientation"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

var orientationPresets = map[string]Orientation{
	"landscape-16x9": {Name: "landscape-16x9", Height: 576, Width: 1024},
	"landscape":      {Name: "landscape", Height: 512, Width: 768},
	"portrait":       {Name: "portrait", Height: 768, Width: 512},
	"phone-bg":       {Name: "phone-bg", Height: 1024, Width: 448},
	"ultrawide":      {Name: "ultrawide", Height: 448, Width: 1024},
	OrientationSquare: {Name: OrientationSquare, Height: defaultDimension, Width: defaultDimension},
}

// randomOrientationNames lists the presets eligible for random selection.
// "custom" and "random" are intentionally absent.
var randomOrientationNames = []string{
	"landscape-16x9",
	"landscape",
	"portrait",
	"phone-bg",
	"ultrawide",
	OrientationSquare,
}

// NearestWholeMultiple rounds value to the nearest multiple of DimensionStep.
// A positive value never rounds down to zero: anything below half a step
// still yields one full step.
func NearestWholeMultiple(value int) int {
	if value <= 0 {
		return 0
	}
	steps := (value + DimensionStep/2) / DimensionStep
	if steps == 0 {
		steps = 1
	}
	return steps * DimensionStep
}

// OrientationDetails resolves an orientation name into concrete dimensions.
// Unknown names fall back to square. "custom" rounds the caller-supplied
// dimensions independently to the backend's granularity, and "random" draws
// uniformly from the fixed preset set using rng (the shared source when nil).
func OrientationDetails(name string, height, width int, rng *rand.Rand) Orientation {
	switch name {
	case OrientationCustom:
		if height <= 0 {
			height = defaultDimension
		}
		if width <= 0 {
			width = defaultDimension
		}
		return Orientation{
			Name:   OrientationCustom,
			Height: NearestWholeMultiple(height),
			Width:  NearestWholeMultiple(width),
		}
	case OrientationRandom:
		name = randomOrientationNames[intn(rng, len(randomOrientationNames))]
	}
	if preset, ok := orientationPresets[name]; ok {
		return preset
	}
	return orientationPresets[OrientationSquare]
}

func intn(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.Intn(n)
	}
	return rand.Intn(n)
}
