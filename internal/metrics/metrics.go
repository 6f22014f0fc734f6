package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// ManifestsBuilt counts manifests persisted by the builder, by direction.
	ManifestsBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "manifests_built_total", Help: "Transportation manifests created, by direction."},
		[]string{"direction"},
	)
	// GuestsAssigned counts guests newly merged into manifests.
	GuestsAssigned = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "guests_assigned_total", Help: "Guest ids newly merged into manifests."},
	)
	// AssignConflicts counts compare-and-swap retries during assignment.
	AssignConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "assignment_version_conflicts_total", Help: "Optimistic-concurrency conflicts observed while assigning guests."},
	)

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(ManifestsBuilt)
		Registry.MustRegister(GuestsAssigned)
		Registry.MustRegister(AssignConflicts)
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler serves the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
