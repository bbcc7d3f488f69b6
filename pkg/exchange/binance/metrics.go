package binance

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	apiCallTotalMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binance_api_call_total",
			Help: "Total number of binance REST API calls",
		}, []string{"endpoint", "success"},
	)

	apiRateLimitTotalMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binance_api_rate_limit_total",
			Help: "Total number of binance REST API calls rejected by the rate limiter",
		}, []string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(
		apiCallTotalMetrics,
		apiRateLimitTotalMetrics,
	)
}

func recordAPICall(endpoint string, err error) {
	apiCallTotalMetrics.With(prometheus.Labels{
		"endpoint": endpoint,
		"success":  strconv.FormatBool(err == nil),
	}).Inc()

	if isRateLimitError(err) {
		apiRateLimitTotalMetrics.With(prometheus.Labels{
			"endpoint": endpoint,
		}).Inc()
	}
}
