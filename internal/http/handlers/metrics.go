package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes the app's request counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	JobsSubmitted  prometheus.Counter
	JobFailures    prometheus.Counter
	ImagesExported prometheus.Counter
	ImageFetches   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		JobsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "artbot_jobs_submitted_total",
			Help: "Generation jobs accepted by the backend.",
		}),
		JobFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "artbot_job_failures_total",
			Help: "Generation jobs rejected or failed, excluding benign pending deferrals.",
		}),
		ImagesExported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "artbot_images_exported_total",
			Help: "Images bundled into export archives.",
		}),
		ImageFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "artbot_image_fetches_total",
			Help: "Proxy fetches of remote images by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.JobsSubmitted, m.JobFailures, m.ImagesExported, m.ImageFetches)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
