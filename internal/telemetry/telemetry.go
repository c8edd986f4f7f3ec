package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event is one structured telemetry record. Data carries event-specific
// fields and must already be scrubbed of large or sensitive payloads by the
// caller.
type Event struct {
	ID      string `json:"id"`
	Event   string `json:"event"`
	Action  string `json:"action,omitempty"`
	Context string `json:"context"`
	Data    any    `json:"data,omitempty"`
}

// Sink accepts telemetry events. Publishing is fire-and-forget: failures
// are logged by the implementation and never returned to the business flow.
type Sink interface {
	Publish(ctx context.Context, ev Event)
}

// NopSink discards every event. Used in tests and when telemetry is not
// configured.
type NopSink struct{}

func (NopSink) Publish(context.Context, Event) {}

// HTTPSink posts events to a remote collector.
type HTTPSink struct {
	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewHTTPSink builds a sink posting to endpoint. A short timeout keeps a
// slow collector from stalling callers.
func NewHTTPSink(endpoint string, log zerolog.Logger) *HTTPSink {
	return &HTTPSink{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		log:        log,
	}
}

// Publish sends the event, assigning an id when the caller left it empty.
func (s *HTTPSink) Publish(ctx context.Context, ev Event) {
	if s == nil || s.endpoint == "" {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		s.log.Error().Err(err).Str("event", ev.Event).Msg("telemetry: marshal event")
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		s.log.Error().Err(err).Str("event", ev.Event).Msg("telemetry: build request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Str("event", ev.Event).Msg("telemetry: publish failed")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		s.log.Warn().Int("status", resp.StatusCode).Str("event", ev.Event).Msg("telemetry: collector rejected event")
	}
}
