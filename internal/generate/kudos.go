package generate

import (
	"math"
	"strings"
)

// Kudos cost model constants, matching the inference backend's accounting.
const (
	kudosPerStep        = 0.1232
	resolutionStepBoost = 8.75
	resolutionExponent  = 1.75
	upscalerMultiplier  = 1.3
	postProcessorWeight = 0.2
	referenceArea       = 1024 * 1024
	floorArea           = DimensionStep * DimensionStep
)

// expensiveSamplerParts marks samplers that cost double. Matched as
// substrings so variants such as k_dpm_2_a are covered.
var expensiveSamplerParts = []string{"k_heun", "dpm_2", "k_dpmpp_2s_a"}

// KudosCost estimates the kudos charged for a job. It is a pure function of
// its inputs and reproduces the backend's formula: a resolution scaling term
// raised to resolutionExponent and normalized against the 1024x1024
// reference (minus a fixed 64x64 floor), a per-step base cost plus a
// resolution-weighted step term, then multipliers for upscaling, extra
// post-processors, expensive samplers, and image count.
func KudosCost(width, height, steps, numImages int, hasUpscaler bool, postProcessors int, sampler string) int {
	area := float64(width*height) - floorArea
	reference := float64(referenceArea) - floorArea
	resolution := math.Pow(area, resolutionExponent) / math.Pow(reference, resolutionExponent)

	kudos := kudosPerStep*float64(steps) + resolution*(kudosPerStep*float64(steps)*resolutionStepBoost)
	if hasUpscaler {
		kudos *= upscalerMultiplier
	}
	kudos *= 1 + postProcessorWeight*float64(postProcessors)
	if isExpensiveSampler(sampler) {
		kudos *= 2
	}
	kudos *= float64(numImages)
	return int(math.Round(kudos))
}

func isExpensiveSampler(sampler string) bool {
	for _, part := range expensiveSamplerParts {
		if strings.Contains(sampler, part) {
			return true
		}
	}
	return false
}
