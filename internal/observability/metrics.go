package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"alcyxob/clipclass/internal/domain"
)

const namespace = "clipclass"

var (
	catalogMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "mutations_total",
		Help:      "Catalog writes by operation (add, update, delete) and outcome.",
	}, []string{"operation", "outcome"})

	catalogSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "videos",
		Help:      "Number of videos currently in the catalog.",
	})

	snapshotSaves = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "snapshot",
		Name:      "saves_total",
		Help:      "Snapshot writes by outcome.",
	}, []string{"outcome"})

	plansGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "planner",
		Name:      "plans_total",
		Help:      "Generated workout plans by selection strategy.",
	}, []string{"strategy"})

	planDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "planner",
		Name:      "generate_seconds",
		Help:      "Wall time to generate a plan, including the pacing delay.",
		Buckets:   prometheus.DefBuckets,
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(catalogMutations, catalogSize, snapshotSaves, plansGenerated, planDuration, httpRequests, httpLatency)
}

// RecordMutation counts a catalog write. ok=false marks a rejected or no-op write.
func RecordMutation(operation string, ok bool) {
	outcome := "applied"
	if !ok {
		outcome = "skipped"
	}
	catalogMutations.WithLabelValues(operation, outcome).Inc()
}

// SetCatalogSize updates the catalog size gauge.
func SetCatalogSize(n int) {
	catalogSize.Set(float64(n))
}

// RecordSnapshotSave counts a snapshot write attempt.
func RecordSnapshotSave(err error) {
	if err != nil {
		snapshotSaves.WithLabelValues("error").Inc()
		return
	}
	snapshotSaves.WithLabelValues("ok").Inc()
}

// RecordPlan counts a generated plan and how long it took.
func RecordPlan(strategy domain.PlanStrategy, elapsed time.Duration) {
	plansGenerated.WithLabelValues(string(strategy)).Inc()
	planDuration.Observe(elapsed.Seconds())
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
