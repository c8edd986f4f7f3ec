package horde

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"artbot/internal/domain"
	"artbot/internal/generate"
	"artbot/internal/telemetry"
)

// AnonymousAPIKey is the shared key the backend accepts for unauthenticated
// requests. Holders of it do not count as authenticated for sampler policy.
const AnonymousAPIKey = "0000000000"

// CreateFailedMessage is the fixed user-facing message for submissions that
// failed before the backend could answer.
const CreateFailedMessage = "Unable to create image."

const defaultBaseURL = "https://aihorde.net/api"

// Options configures a Client.
type Options struct {
	BaseURL     string
	APIKey      string
	ClientAgent string
	HTTPClient  *http.Client
	Timeout     time.Duration
	Telemetry   telemetry.Sink
	Logger      zerolog.Logger
}

// Client submits generation jobs to the remote inference service and
// normalizes every outcome into a domain.JobResult.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	agent      string
	sink       telemetry.Sink
	log        zerolog.Logger
}

// New builds a Client with defaults for anything Options leaves empty.
func New(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	sink := opts.Telemetry
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		key = AnonymousAPIKey
	}
	return &Client{
		httpClient: client,
		baseURL:    base,
		apiKey:     key,
		agent:      opts.ClientAgent,
		sink:       sink,
		log:        opts.Logger,
	}
}

// Authenticated reports whether the client holds a personal API key rather
// than the shared anonymous one.
func (c *Client) Authenticated() bool {
	return c.apiKey != "" && c.apiKey != AnonymousAPIKey
}

type createRequest struct {
	Prompt string       `json:"prompt"`
	Params createParams `json:"params"`
	Models []string     `json:"models,omitempty"`

	SourceImage      string `json:"source_image,omitempty"`
	SourceMask       string `json:"source_mask,omitempty"`
	SourceProcessing string `json:"source_processing,omitempty"`
}

type createParams struct {
	SamplerName       string   `json:"sampler_name"`
	CfgScale          float64  `json:"cfg_scale"`
	Height            int      `json:"height"`
	Width             int      `json:"width"`
	Steps             int      `json:"steps"`
	Seed              string   `json:"seed,omitempty"`
	DenoisingStrength float64  `json:"denoising_strength,omitempty"`
	PostProcessing    []string `json:"post_processing,omitempty"`
	N                 int      `json:"n"`
}

type createResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"jobId"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateAsync normalizes req and submits it. The returned result is never
// accompanied by an error: remote failures and transport failures alike are
// folded into JobResult, with telemetry for everything except the benign
// pending status.
func (c *Client) GenerateAsync(ctx context.Context, req generate.ImageRequest) domain.JobResult {
	if truncated := req.Normalize(); truncated {
		c.log.Warn().Int("max", generate.MaxPromptLength).Msg("prompt exceeded length limit, truncated")
	}

	payload := createRequest{
		Prompt: req.Prompt,
		Params: createParams{
			SamplerName:       req.Sampler,
			CfgScale:          req.CfgScale,
			Height:            req.Height,
			Width:             req.Width,
			Steps:             req.Steps,
			Seed:              req.Seed,
			DenoisingStrength: req.DenoisingStrength,
			PostProcessing:    req.PostProcessing,
			N:                 req.NumImages,
		},
		Models:      req.Models,
		SourceImage: req.SourceImage,
		SourceMask:  req.SourceMask,
	}
	if req.IsImg2Img() {
		payload.SourceProcessing = "img2img"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.reportFailure(ctx, req, 0, err.Error())
		return domain.JobResult{Success: false, Message: CreateFailedMessage}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/generate/async", bytes.NewReader(body))
	if err != nil {
		c.reportFailure(ctx, req, 0, err.Error())
		return domain.JobResult{Success: false, Message: CreateFailedMessage}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", c.apiKey)
	if c.agent != "" {
		httpReq.Header.Set("Client-Agent", c.agent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.reportFailure(ctx, req, 0, err.Error())
		return domain.JobResult{Success: false, Message: CreateFailedMessage}
	}
	defer resp.Body.Close()

	var out createResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.reportFailure(ctx, req, resp.StatusCode, err.Error())
		return domain.JobResult{Success: false, Message: CreateFailedMessage}
	}

	if out.Success && out.JobID != "" {
		return domain.JobResult{Success: true, JobID: out.JobID}
	}

	message := out.Message
	if message == "" {
		message = CreateFailedMessage
	}
	result := domain.JobResult{Success: false, Message: message, Status: out.Status}
	if !result.Pending() {
		c.reportFailure(ctx, req, resp.StatusCode, message)
	}
	return result
}

// reportFailure publishes a telemetry error event carrying the scrubbed
// request. Large payload fields never reach the sink.
func (c *Client) reportFailure(ctx context.Context, req generate.ImageRequest, statusCode int, message string) {
	c.log.Error().Int("status_code", statusCode).Str("message", message).Msg("image job submission failed")
	c.sink.Publish(ctx, telemetry.Event{
		Event:   "error",
		Action:  "FetchCreateImage",
		Context: "horde/client",
		Data: map[string]any{
			"statusCode": statusCode,
			"message":    message,
			"request":    Scrub(req),
		},
	})
}
