package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"artbot/internal/generate"
	"artbot/internal/horde"
)

type fakeBackend struct {
	lastPrompt string
	lastSteps  int
	lastName   string
	respond    func(w http.ResponseWriter)
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Prompt string `json:"prompt"`
			Params struct {
				SamplerName string `json:"sampler_name"`
				Steps       int    `json:"steps"`
			} `json:"params"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		f.lastPrompt = payload.Prompt
		f.lastSteps = payload.Params.Steps
		f.lastName = payload.Params.SamplerName
		if f.respond != nil {
			f.respond(w)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "jobId": "job-9"})
	}
}

func newTestApp(backendURL, apiKey string) *App {
	client := horde.New(horde.Options{BaseURL: backendURL, APIKey: apiKey, Logger: zerolog.Nop()})
	app := NewApp(zerolog.Nop(), client, nil)
	app.Presets = generate.PresetLibrary{"x": "{p}, artstation ### blurry"}
	app.Rng = rand.New(rand.NewSource(7))
	return app
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw)))
	return rec
}

func TestGenerateSuccess(t *testing.T) {
	backend := &fakeBackend{}
	ts := httptest.NewServer(backend.handler())
	defer ts.Close()

	app := newTestApp(ts.URL, "personal-key")
	rec := postJSON(t, app.Generate, generateRequest{
		Prompt:      "cat",
		Orientation: "landscape-16x9",
		Steps:       30,
		CfgScale:    7,
		Sampler:     "k_euler",
		StylePreset: "x",
	})

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.JobID != "job-9" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Orientation.Height != 576 || resp.Orientation.Width != 1024 {
		t.Fatalf("orientation not resolved: %+v", resp.Orientation)
	}
	if resp.Kudos <= 0 {
		t.Fatalf("kudos estimate missing: %+v", resp)
	}
	if backend.lastPrompt != "cat, artstation ### blurry" {
		t.Fatalf("style preset not applied: %q", backend.lastPrompt)
	}
}

func TestGenerateClampsStepsBeforeSubmit(t *testing.T) {
	backend := &fakeBackend{}
	ts := httptest.NewServer(backend.handler())
	defer ts.Close()

	app := newTestApp(ts.URL, "personal-key")
	postJSON(t, app.Generate, generateRequest{Prompt: "cat", Steps: 500, CfgScale: 7, Sampler: "k_euler"})

	if backend.lastSteps != generate.DefaultSteps {
		t.Fatalf("steps transmitted as %d, want %d", backend.lastSteps, generate.DefaultSteps)
	}
}

func TestGenerateRandomSamplerRespectsAnonymousTier(t *testing.T) {
	backend := &fakeBackend{}
	ts := httptest.NewServer(backend.handler())
	defer ts.Close()

	// Anonymous key, 50 steps, txt2img: cheap tier only.
	app := newTestApp(ts.URL, "")
	for i := 0; i < 20; i++ {
		postJSON(t, app.Generate, generateRequest{Prompt: "cat", Steps: 50, CfgScale: 7, Sampler: "random"})
		switch backend.lastName {
		case "k_euler_a", "k_euler", "k_dpm_fast", "k_lms", "k_dpmpp_2m":
		default:
			t.Fatalf("anonymous high-step job drew %q outside cheap tier", backend.lastName)
		}
	}
}

func TestGenerateRejectsEmptyPrompt(t *testing.T) {
	app := newTestApp("http://127.0.0.1:1", "k")
	rec := postJSON(t, app.Generate, generateRequest{Prompt: "   "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateBackendFailurePassesThrough(t *testing.T) {
	backend := &fakeBackend{respond: func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid api key", "status": "INVALID_API_KEY"})
	}}
	ts := httptest.NewServer(backend.handler())
	defer ts.Close()

	app := newTestApp(ts.URL, "bad-key")
	rec := postJSON(t, app.Generate, generateRequest{Prompt: "cat", Steps: 30, CfgScale: 7, Sampler: "k_euler"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp generateResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Success || resp.Message != "invalid api key" || resp.Status != "INVALID_API_KEY" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestKudosEstimate(t *testing.T) {
	app := newTestApp("http://127.0.0.1:1", "k")
	rec := postJSON(t, app.Kudos, generateRequest{Prompt: "cat", Steps: 30, CfgScale: 7, Sampler: "k_euler"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Kudos  int `json:"kudos"`
		Height int `json:"height"`
		Width  int `json:"width"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := generate.KudosCost(512, 512, 30, 1, false, 0, "k_euler")
	if resp.Kudos != want {
		t.Fatalf("kudos = %d, want %d", resp.Kudos, want)
	}
	if resp.Height != 512 || resp.Width != 512 {
		t.Fatalf("default orientation should be square: %+v", resp)
	}
}
