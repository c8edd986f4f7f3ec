package domain

// GeneratedImage is one finished image held by the client layer, pairing
// the encoded payload with the parameters that produced it. Entities of
// this layer are transient; persistence belongs to an external store.
type GeneratedImage struct {
	Base64            string   `json:"base64String"`
	Prompt            string   `json:"prompt"`
	NegativePrompt    string   `json:"negative_prompt,omitempty"`
	Sampler           string   `json:"sampler"`
	Model             string   `json:"model"`
	Height            int      `json:"height"`
	Width             int      `json:"width"`
	Steps             int      `json:"steps"`
	CfgScale          float64  `json:"cfg_scale"`
	Seed              string   `json:"seed,omitempty"`
	DenoisingStrength *float64 `json:"denoising_strength,omitempty"`
}
