package generate

import "math/rand"

// maxAnonymousSteps is the step count above which unauthenticated requests
// are restricted to the cheap sampler tier. Expensive samplers at high step
// counts burn worker time, so the full list is reserved for authenticated
// users or low-step jobs.
const maxAnonymousSteps = 25

var baseSamplers = []string{
	"k_dpm_2_a",
	"k_dpm_2",
	"k_euler_a",
	"k_euler",
	"k_heun",
	"k_lms",
}

// txt2imgSamplers extends the base list with algorithms the backend only
// supports for text-to-image jobs.
var txt2imgSamplers = []string{
	"DDIM",
	"k_dpm_fast",
	"k_dpm_adaptive",
	"k_dpmpp_2m",
}

var cheapTxt2imgSamplers = []string{
	"k_euler_a",
	"k_euler",
	"k_dpm_fast",
	"k_lms",
	"k_dpmpp_2m",
}

var cheapImg2imgSamplers = []string{
	"k_euler_a",
	"k_euler",
}

// RandomSampler picks a sampling algorithm for a job. The choice is gated
// by an access policy, not aesthetics: authenticated users and any job of
// maxAnonymousSteps or fewer steps draw from the full tier, while anonymous
// high-step jobs are limited to the cheap tier. The authenticated flag is
// passed explicitly so the policy is testable without ambient session state.
func RandomSampler(steps int, img2img, authenticated bool, rng *rand.Rand) string {
	pool := baseSamplers
	if !img2img {
		pool = append(append([]string{}, baseSamplers...), txt2imgSamplers...)
	}
	if !authenticated && steps > maxAnonymousSteps {
		if img2img {
			pool = cheapImg2imgSamplers
		} else {
			pool = cheapTxt2imgSamplers
		}
	}
	return pool[intn(rng, len(pool))]
}
