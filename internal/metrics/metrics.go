package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interviewsim",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "interviewsim",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	llmLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "interviewsim",
		Name:      "llm_call_duration_seconds",
		Help:      "Duration of model provider calls in seconds",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"kind", "outcome"})

	streamFragments = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "interviewsim",
		Name:      "stream_fragments_total",
		Help:      "Total streamed fragments forwarded to clients",
	})

	evalFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "interviewsim",
		Name:      "evaluation_fallbacks_total",
		Help:      "Evaluations that fell back to the neutral report after a parse failure",
	})

	sandboxRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interviewsim",
		Name:      "sandbox_runs_total",
		Help:      "Code execution relay calls by outcome",
	}, []string{"language", "outcome"})
)

// ObserveLLMCall records one provider call. kind is chat, evaluation or
// job_analysis; outcome is ok or error.
func ObserveLLMCall(kind, outcome string, duration time.Duration) {
	llmLatency.WithLabelValues(kind, outcome).Observe(duration.Seconds())
}

// CountFragment records one forwarded stream fragment.
func CountFragment() {
	streamFragments.Inc()
}

// CountEvaluationFallback records a parse failure recovered with the
// neutral report. Kept distinct from provider outages on purpose.
func CountEvaluationFallback() {
	evalFallbacks.Inc()
}

// CountSandboxRun records one code execution relay call.
func CountSandboxRun(language string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	sandboxRuns.WithLabelValues(language, outcome).Inc()
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Middleware records request count and latency per route.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		labels := prometheus.Labels{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": strconv.Itoa(rec.status),
		}
		httpRequests.With(labels).Inc()
		httpLatency.With(labels).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
