// Package metrics exposes Prometheus counters for documentation requests.
package metrics

import (
	"errors"
	"net/http"

	"github.com/alburdette619/docthis/documenter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK          = "ok"
	OutcomeNoConstruct = "no_construct"
	OutcomeError       = "error"
)

// Metrics wraps a Prometheus registry with the docthis collectors. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	documented *prometheus.CounterVec
	newFiles   prometheus.Counter
}

// New creates a registry preloaded with the default collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		documented: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docthis",
			Name:      "documentations_total",
			Help:      "Documentation requests by construct kind and outcome.",
		}, []string{"kind", "outcome"}),
		newFiles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "docthis",
			Name:      "new_files_documented_total",
			Help:      "Newly created files that received a file banner.",
		}),
	}
}

// Observe records one documentation request. kind is empty when no
// construct was found.
func (m *Metrics) Observe(kind documenter.Kind, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	switch {
	case errors.Is(err, documenter.ErrNoConstruct):
		outcome = OutcomeNoConstruct
	case err != nil:
		outcome = OutcomeError
	}
	m.documented.WithLabelValues(string(kind), outcome).Inc()
}

// NewFileDocumented records a banner written by the watcher.
func (m *Metrics) NewFileDocumented() {
	if m == nil {
		return
	}
	m.newFiles.Inc()
}

// Handler returns an HTTP handler that exposes Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
