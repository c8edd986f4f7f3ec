package media

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"artbot/internal/telemetry"
)

// FetchFailedMessage is the fixed user-facing message for image URLs that
// are malformed or could not be retrieved.
const FetchFailedMessage = "Unable to load image from that URL."

// FetchResult is the structured outcome of fetching a remote image through
// the app's proxy endpoint.
type FetchResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	ImageType string `json:"imageType,omitempty"`
	Base64    string `json:"imgBase64String,omitempty"`
	Height    int    `json:"height,omitempty"`
	Width     int    `json:"width,omitempty"`
}

// ValidateImageURL rejects anything that is not an absolute http(s) URL.
// Runs before any network call so malformed input never leaves the client.
func ValidateImageURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetcher retrieves remote images via the app's server-side proxy endpoint,
// which exists to sidestep cross-origin restrictions on direct fetches.
type Fetcher struct {
	endpoint   string
	httpClient *http.Client
	sink       telemetry.Sink
	log        zerolog.Logger
}

// NewFetcher builds a Fetcher posting to the given proxy endpoint.
func NewFetcher(endpoint string, sink telemetry.Sink, log zerolog.Logger) *Fetcher {
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	return &Fetcher{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		sink:       sink,
		log:        log,
	}
}

type fetchRequest struct {
	ImageURL string `json:"imageUrl"`
}

// FetchByURL retrieves the image behind imageURL. Both outcomes are
// reported to telemetry; failures carry the fixed user-facing message.
func (f *Fetcher) FetchByURL(ctx context.Context, imageURL string) FetchResult {
	if !ValidateImageURL(imageURL) {
		f.report(ctx, imageURL, false, "invalid url")
		return FetchResult{Success: false, Message: FetchFailedMessage}
	}

	body, _ := json.Marshal(fetchRequest{ImageURL: imageURL})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		f.report(ctx, imageURL, false, err.Error())
		return FetchResult{Success: false, Message: FetchFailedMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.report(ctx, imageURL, false, err.Error())
		return FetchResult{Success: false, Message: FetchFailedMessage}
	}
	defer resp.Body.Close()

	var result FetchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || !result.Success {
		f.report(ctx, imageURL, false, "proxy fetch failed")
		return FetchResult{Success: false, Message: FetchFailedMessage}
	}

	f.report(ctx, imageURL, true, "")
	return result
}

func (f *Fetcher) report(ctx context.Context, imageURL string, success bool, detail string) {
	event := "image_fetch"
	if !success {
		event = "error"
		f.log.Warn().Str("url", imageURL).Str("detail", detail).Msg("image fetch failed")
	}
	f.sink.Publish(ctx, telemetry.Event{
		Event:   event,
		Action:  "FetchImageByURL",
		Context: "media/fetch",
		Data: map[string]any{
			"success": success,
			"detail":  detail,
		},
	})
}
