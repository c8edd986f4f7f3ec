package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"artbot/internal/http/handlers"
	"artbot/internal/middleware"
	"artbot/internal/ui"
)

// Options tunes the router's middleware stack.
type Options struct {
	CORSOrigins     []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
	)
	if len(opts.CORSOrigins) > 0 {
		r.Use(middleware.CORS(opts.CORSOrigins))
	}

	r.Get("/health", app.Health)
	r.Get("/metrics", app.Metrics.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimitPerMin > 0 {
			r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
		}
		r.Post("/generate", app.Generate)
		r.Post("/kudos", app.Kudos)
		r.Post("/img-url", app.ImageByURL)
		r.Post("/export", app.Export)
		r.Post("/download", app.Download)
		r.Get("/spinner", ui.SpinnerHandler)
	})

	return r
}
