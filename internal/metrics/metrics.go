package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const namespace = "fireplan"

// Metrics holds the collectors exported by the API server. Each instance owns
// its registry so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	PlansEvaluated   *prometheus.CounterVec
	SolverIterations *prometheus.HistogramVec
	RequestDuration  *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PlansEvaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_evaluated_total",
			Help:      "Plans evaluated, by outcome.",
		}, []string{"outcome"}),
		SolverIterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_iterations",
			Help:      "Iterations taken by each target search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"search"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by path and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "code"}),
	}
	m.registry.MustRegister(m.PlansEvaluated, m.SolverIterations, m.RequestDuration)
	m.registry.MustRegister(prometheus.NewGoCollector())
	return m
}

// ObservePlan records a solved plan.
func (m *Metrics) ObservePlan(result *domain.PlanResult) {
	m.PlansEvaluated.WithLabelValues(string(result.Status)).Inc()
	m.SolverIterations.WithLabelValues("corpus").Observe(float64(result.Diagnostics.CorpusIterations))
	m.SolverIterations.WithLabelValues("contribution").Observe(float64(result.Diagnostics.ContributionIterations))
}

// ObserveFailure records a plan that could not be solved.
func (m *Metrics) ObserveFailure(outcome string) {
	m.PlansEvaluated.WithLabelValues(outcome).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(path string, code int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(path, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

// Handler serves the Prometheus exposition format over fasthttp.
func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
