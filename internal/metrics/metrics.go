package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	signupAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ers_signup_attempts_total",
			Help: "Total number of signup submissions by role and outcome",
		},
		[]string{"user_type", "outcome"},
	)

	signupRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ers_signup_request_duration_seconds",
			Help:    "Duration of requests to the signup endpoint in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"outcome"},
	)

	redirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ers_login_redirects_total",
			Help: "Total number of users sent to the login screen",
		},
	)

	openSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ers_open_signup_sessions",
			Help: "Number of chats with an open signup form",
		},
	)
)

// RecordAttempt counts a finished submission
func RecordAttempt(userType, outcome string) {
	signupAttemptsTotal.WithLabelValues(userType, outcome).Inc()
}

// ObserveRequest records the duration of a dispatched signup request
func ObserveRequest(outcome string, duration time.Duration) {
	signupRequestDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordRedirect counts a login navigation
func RecordRedirect() {
	redirectsTotal.Inc()
}

// SetOpenSessions reports the number of open forms
func SetOpenSessions(n int) {
	openSessions.Set(float64(n))
}

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}
