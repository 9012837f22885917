// Package metrics exposes Prometheus collectors for the explorer service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "role_explorer"

// Metrics contains the custom collectors
type Metrics struct {
	RequestDuration     *prometheus.HistogramVec
	AssessmentsTotal    *prometheus.CounterVec
	SandboxChecksTotal  *prometheus.CounterVec
	CustomRoleMutations *prometheus.CounterVec
	CustomRoles         prometheus.Gauge
	StoreErrorsTotal    *prometheus.CounterVec
}

// NewRegistry creates a registry with the Go and process collectors
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

// New creates and registers the custom collectors
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		AssessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_assessments_total",
			Help:      "Total number of risk assessments by overall risk",
		}, []string{"overall_risk"}),
		SandboxChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sandbox_checks_total",
			Help:      "Total number of simulated actions by decision",
		}, []string{"decision"}),
		CustomRoleMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "custom_role_mutations_total",
			Help:      "Total number of custom role mutations by operation",
		}, []string{"operation"}),
		CustomRoles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "custom_roles",
			Help:      "Number of stored custom roles",
		}),
		StoreErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Total number of key-value store errors by backend and operation",
		}, []string{"backend", "operation"}),
	}

	reg.MustRegister(
		m.RequestDuration,
		m.AssessmentsTotal,
		m.SandboxChecksTotal,
		m.CustomRoleMutations,
		m.CustomRoles,
		m.StoreErrorsTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// ObserveAssessment counts one risk assessment
func (m *Metrics) ObserveAssessment(overallRisk string) {
	if m == nil {
		return
	}
	m.AssessmentsTotal.WithLabelValues(overallRisk).Inc()
}

// ObserveSandboxCheck counts one simulated action
func (m *Metrics) ObserveSandboxCheck(allowed bool) {
	if m == nil {
		return
	}
	decision := "deny"
	if allowed {
		decision = "allow"
	}
	m.SandboxChecksTotal.WithLabelValues(decision).Inc()
}

// ObserveCustomRoleMutation counts a mutation and records the new total
func (m *Metrics) ObserveCustomRoleMutation(operation string, total int) {
	if m == nil {
		return
	}
	m.CustomRoleMutations.WithLabelValues(operation).Inc()
	m.CustomRoles.Set(float64(total))
}

// SetCustomRoles records the number of stored custom roles
func (m *Metrics) SetCustomRoles(total int) {
	if m == nil {
		return
	}
	m.CustomRoles.Set(float64(total))
}

// ObserveStoreError counts a failed key-value store call
func (m *Metrics) ObserveStoreError(backend, operation string) {
	if m == nil {
		return
	}
	m.StoreErrorsTotal.WithLabelValues(backend, operation).Inc()
}

// Middleware records request latency. The route label is the chi route
// pattern so path parameters do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestDuration.
			WithLabelValues(r.Method, routePattern(r), strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
