package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"

	"github.com/rs/zerolog"

	"artbot/internal/generate"
	"artbot/internal/horde"
	"artbot/internal/telemetry"
)

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Log     zerolog.Logger
	Horde   *horde.Client
	Sink    telemetry.Sink
	Presets generate.PresetLibrary
	Metrics *Metrics

	// Rng feeds randomized parameter selection. Nil falls back to the
	// shared source; tests inject a seeded one.
	Rng *rand.Rand
}

// NewApp wires an App with defaults for optional dependencies.
func NewApp(log zerolog.Logger, client *horde.Client, sink telemetry.Sink) *App {
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	return &App{
		Log:     log,
		Horde:   client,
		Sink:    sink,
		Presets: generate.DefaultPresets,
		Metrics: NewMetrics(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}
