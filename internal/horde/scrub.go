package horde

import "artbot/internal/generate"

// LoggableRequest is the telemetry-safe projection of an ImageRequest.
// Base64 payloads are replaced with presence flags so events stay small and
// never leak user imagery.
type LoggableRequest struct {
	Prompt            string   `json:"prompt"`
	Sampler           string   `json:"sampler"`
	Steps             int      `json:"steps"`
	CfgScale          float64  `json:"cfg_scale"`
	Height            int      `json:"height"`
	Width             int      `json:"width"`
	Seed              string   `json:"seed,omitempty"`
	Models            []string `json:"models,omitempty"`
	StylePreset       string   `json:"style_preset,omitempty"`
	PostProcessing    []string `json:"post_processing,omitempty"`
	NumImages         int      `json:"num_images"`
	DenoisingStrength float64  `json:"denoising_strength,omitempty"`
	HasSourceImage    bool     `json:"hasSourceImage"`
	HasSourceMask     bool     `json:"hasSourceMask"`
}

// Scrub builds the loggable projection of req.
func Scrub(req generate.ImageRequest) LoggableRequest {
	return LoggableRequest{
		Prompt:            req.Prompt,
		Sampler:           req.Sampler,
		Steps:             req.Steps,
		CfgScale:          req.CfgScale,
		Height:            req.Height,
		Width:             req.Width,
		Seed:              req.Seed,
		Models:            req.Models,
		StylePreset:       req.StylePreset,
		PostProcessing:    req.PostProcessing,
		NumImages:         req.NumImages,
		DenoisingStrength: req.DenoisingStrength,
		HasSourceImage:    req.SourceImage != "",
		HasSourceMask:     req.SourceMask != "",
	}
}
