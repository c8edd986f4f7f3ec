package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"artbot/internal/generate"
)

// generateRequest is the payload the UI submits for one generation job.
// Sampler and orientation both accept "random".
type generateRequest struct {
	Prompt            string   `json:"prompt"`
	NegativePrompt    string   `json:"negative_prompt"`
	Orientation       string   `json:"orientation"`
	Height            int      `json:"height"`
	Width             int      `json:"width"`
	Steps             int      `json:"steps"`
	CfgScale          float64  `json:"cfg_scale"`
	Sampler           string   `json:"sampler"`
	Seed              string   `json:"seed"`
	Models            []string `json:"models"`
	StylePreset       string   `json:"style_preset"`
	PostProcessing    []string `json:"post_processing"`
	NumImages         int      `json:"num_images"`
	SourceImage       string   `json:"source_image"`
	SourceMask        string   `json:"source_mask"`
	DenoisingStrength float64  `json:"denoising_strength"`
}

type generateResponse struct {
	Success     bool                 `json:"success"`
	JobID       string               `json:"jobId,omitempty"`
	Message     string               `json:"message,omitempty"`
	Status      string               `json:"status,omitempty"`
	Kudos       int                  `json:"kudos"`
	Orientation generate.Orientation `json:"resolution"`
	Sampler     string               `json:"sampler"`
}

// shape resolves orientation, sampler, and style preset into a concrete
// ImageRequest ready for normalization.
func (a *App) shape(req generateRequest) (generate.ImageRequest, generate.Orientation) {
	orientation := req.Orientation
	if orientation == "" {
		orientation = generate.OrientationSquare
	}
	resolved := generate.OrientationDetails(orientation, req.Height, req.Width, a.Rng)

	img := generate.ImageRequest{
		Prompt:            a.Presets.Apply(req.Prompt, req.StylePreset),
		NegativePrompt:    req.NegativePrompt,
		Height:            resolved.Height,
		Width:             resolved.Width,
		Steps:             req.Steps,
		CfgScale:          req.CfgScale,
		Sampler:           req.Sampler,
		Seed:              req.Seed,
		Models:            req.Models,
		StylePreset:       req.StylePreset,
		PostProcessing:    req.PostProcessing,
		NumImages:         req.NumImages,
		SourceImage:       req.SourceImage,
		SourceMask:        req.SourceMask,
		DenoisingStrength: req.DenoisingStrength,
	}
	if img.Sampler == "" || img.Sampler == "random" {
		img.Sampler = generate.RandomSampler(req.Steps, img.IsImg2Img(), a.Horde.Authenticated(), a.Rng)
	}
	return img, resolved
}

func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "prompt is required")
		return
	}

	img, resolved := a.shape(req)

	estimate := img
	estimate.Normalize()
	kudos := estimate.EstimateKudos()

	result := a.Horde.GenerateAsync(r.Context(), img)
	code := http.StatusOK
	if result.Success {
		code = http.StatusAccepted
		a.Metrics.JobsSubmitted.Inc()
	} else if !result.Pending() {
		a.Metrics.JobFailures.Inc()
	}

	a.json(w, code, generateResponse{
		Success:     result.Success,
		JobID:       result.JobID,
		Message:     result.Message,
		Status:      result.Status,
		Kudos:       kudos,
		Orientation: resolved,
		Sampler:     img.Sampler,
	})
}

// Kudos estimates the cost of a job without submitting it.
func (a *App) Kudos(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	img, _ := a.shape(req)
	img.Normalize()
	a.json(w, http.StatusOK, map[string]any{
		"kudos":   img.EstimateKudos(),
		"sampler": img.Sampler,
		"height":  img.Height,
		"width":   img.Width,
	})
}
