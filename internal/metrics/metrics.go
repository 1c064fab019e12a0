package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "path", "status"},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	},
	[]string{"method", "path"},
)

// ReviewsSubmitted counts persisted reviews by star rating.
var ReviewsSubmitted = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reviews_submitted_total",
		Help: "Total number of persisted reviews",
	},
	[]string{"rating"},
)

// AIGenerations counts pipeline outcomes: ai, disabled, failed, incomplete.
var AIGenerations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ai_generations_total",
		Help: "Reply generation outcomes",
	},
	[]string{"outcome"},
)

func RecordSubmission(rating int) {
	ReviewsSubmitted.WithLabelValues(strconv.Itoa(rating)).Inc()
}

func RecordGeneration(outcome string) {
	AIGenerations.WithLabelValues(outcome).Inc()
}

// AIEnabledGauge reports the live state of the provider kill switch.
func AIEnabledGauge(enabled func() bool) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "ai_enabled",
			Help: "1 when AI generation is enabled, 0 when replies come from the fallback table",
		},
		func() float64 {
			if enabled() {
				return 1
			}
			return 0
		},
	)
}

func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
