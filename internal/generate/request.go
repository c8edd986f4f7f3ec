package generate

import (
	"math"
	"strings"
)

// Parameter bounds enforced before any request reaches the backend. Values
// outside a range reset to the range's default rather than erroring.
const (
	MaxPromptLength = 1024
	MinSteps        = 1
	MaxSteps        = 200
	DefaultSteps    = 200
	MinCfgScale     = 1.0
	MaxCfgScale     = 32.0
	DefaultCfgScale = 32.0
)

// ImageRequest carries every user-controllable parameter of one generation
// job. Source image and mask are base64 payloads for image-to-image and
// inpainting modes.
type ImageRequest struct {
	Prompt            string   `json:"prompt"`
	NegativePrompt    string   `json:"negative_prompt,omitempty"`
	Height            int      `json:"height"`
	Width             int      `json:"width"`
	Steps             int      `json:"steps"`
	CfgScale          float64  `json:"cfg_scale"`
	Sampler           string   `json:"sampler"`
	Seed              string   `json:"seed,omitempty"`
	Models            []string `json:"models,omitempty"`
	SourceImage       string   `json:"source_image,omitempty"`
	SourceMask        string   `json:"source_mask,omitempty"`
	DenoisingStrength float64  `json:"denoising_strength,omitempty"`
	StylePreset       string   `json:"style_preset,omitempty"`
	PostProcessing    []string `json:"post_processing,omitempty"`
	NumImages         int      `json:"num_images"`
}

// IsImg2Img reports whether the job conditions on a source image.
func (r ImageRequest) IsImg2Img() bool {
	return r.SourceImage != ""
}

// HasUpscaler reports whether any requested post-processor upscales.
func (r ImageRequest) HasUpscaler() bool {
	for _, p := range r.PostProcessing {
		if strings.Contains(p, "RealESRGAN") {
			return true
		}
	}
	return false
}

// Normalize clamps the request into the ranges the backend accepts and folds
// the negative prompt into the combined prompt string. It reports whether
// the prompt had to be truncated so the caller can log the adjustment. After
// Normalize returns, no field is out of range.
func (r *ImageRequest) Normalize() (truncated bool) {
	r.Prompt = strings.TrimSpace(r.Prompt)
	if runes := []rune(r.Prompt); len(runes) > MaxPromptLength {
		r.Prompt = string(runes[:MaxPromptLength])
		truncated = true
	}
	if negative := strings.TrimSpace(r.NegativePrompt); negative != "" {
		r.Prompt = r.Prompt + " " + PromptDivider + " " + negative
		r.NegativePrompt = ""
	}
	if r.Steps < MinSteps || r.Steps > MaxSteps {
		r.Steps = DefaultSteps
	}
	if math.IsNaN(r.CfgScale) || r.CfgScale < MinCfgScale || r.CfgScale > MaxCfgScale {
		r.CfgScale = DefaultCfgScale
	}
	if r.NumImages < 1 {
		r.NumImages = 1
	}
	return truncated
}

// EstimateKudos prices the request with the shared cost model.
func (r ImageRequest) EstimateKudos() int {
	return KudosCost(r.Width, r.Height, r.Steps, r.NumImages, r.HasUpscaler(), len(r.PostProcessing), r.Sampler)
}
