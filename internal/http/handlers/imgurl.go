package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"artbot/internal/media"
)

// maxProxyImageBytes caps how much image data the proxy will pull from a
// remote host.
const maxProxyImageBytes = 20 << 20

var proxyHTTPClient = &http.Client{Timeout: 30 * time.Second}

type imgURLRequest struct {
	ImageURL string `json:"imageUrl"`
}

// ImageByURL fetches a remote image server-side on behalf of the browser,
// which cannot fetch cross-origin itself, and returns it base64-encoded
// with its sniffed type and dimensions.
func (a *App) ImageByURL(w http.ResponseWriter, r *http.Request) {
	var req imgURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if !media.ValidateImageURL(req.ImageURL) {
		a.Metrics.ImageFetches.WithLabelValues("invalid").Inc()
		a.json(w, http.StatusBadRequest, media.FetchResult{Success: false, Message: media.FetchFailedMessage})
		return
	}

	httpReq, err := http.NewRequestWithContext(r.Context(), http.MethodGet, req.ImageURL, nil)
	if err != nil {
		a.fetchFailed(w, req.ImageURL, err)
		return
	}
	resp, err := proxyHTTPClient.Do(httpReq)
	if err != nil {
		a.fetchFailed(w, req.ImageURL, err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		a.Log.Warn().Str("url", req.ImageURL).Int("status", resp.StatusCode).Msg("remote image fetch rejected")
		a.Metrics.ImageFetches.WithLabelValues("failure").Inc()
		a.json(w, http.StatusBadGateway, media.FetchResult{Success: false, Message: media.FetchFailedMessage})
		return
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxProxyImageBytes))
	if err != nil {
		a.fetchFailed(w, req.ImageURL, err)
		return
	}
	width, height, err := media.Dimensions(data)
	if err != nil {
		a.fetchFailed(w, req.ImageURL, err)
		return
	}

	a.Metrics.ImageFetches.WithLabelValues("success").Inc()
	a.json(w, http.StatusOK, media.FetchResult{
		Success:   true,
		ImageType: media.DetectImageType(data),
		Base64:    media.ToBase64(data),
		Height:    height,
		Width:     width,
	})
}

func (a *App) fetchFailed(w http.ResponseWriter, url string, err error) {
	a.Log.Warn().Err(err).Str("url", url).Msg("remote image fetch failed")
	a.Metrics.ImageFetches.WithLabelValues("failure").Inc()
	a.json(w, http.StatusBadGateway, media.FetchResult{Success: false, Message: media.FetchFailedMessage})
}
