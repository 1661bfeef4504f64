// Package observability provides logging, metrics, and tracing.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	AIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of AI requests by provider and operation",
		},
		[]string{"provider", "operation"},
	)
	AIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "AI request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider", "operation"},
	)

	// Pipeline outcome distributions
	QuestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_questions_total",
			Help: "Total questions by terminal outcome (answered, off_topic, fallback, throttled, error)",
		},
		[]string{"outcome"},
	)
	RefinementsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_refinements_total",
			Help: "Total single-shot refinement passes issued",
		},
	)
	ClampTruncationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_clamp_truncations_total",
			Help: "Total answers cut at the hard word ceiling",
		},
	)
	AnswerWordsHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_answer_words",
			Help:    "Distribution of final answer word counts",
			Buckets: []float64{10, 40, 70, 100, 130, 160, 180, 220},
		},
	)
	PromptTokensHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ai_prompt_tokens",
			Help:    "Approximate prompt token counts per upstream call",
			Buckets: []float64{64, 128, 256, 512, 1024, 2048, 4096},
		},
	)
)

// InitMetrics registers all Prometheus metrics once per process.
func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(AIRequestsTotal)
	prometheus.MustRegister(AIRequestDuration)
	prometheus.MustRegister(QuestionsTotal)
	prometheus.MustRegister(RefinementsTotal)
	prometheus.MustRegister(ClampTruncationsTotal)
	prometheus.MustRegister(AnswerWordsHistogram)
	prometheus.MustRegister(PromptTokensHistogram)
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			route = r.URL.Path
		}
		HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(dur)
	})
}
