package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "batshit_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// RatingsRecorded counts successfully recorded ratings by idea category.
	RatingsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "batshit_ratings_recorded_total",
		Help: "Total number of ratings recorded by idea category",
	}, []string{"category"})

	// IdeasSubmitted counts submitted ideas by category.
	IdeasSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "batshit_ideas_submitted_total",
		Help: "Total number of ideas submitted by category",
	}, []string{"category"})

	// FeedRequests counts feed reads by filter mode.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "batshit_feed_requests_total",
		Help: "Total number of feed requests by filter",
	}, []string{"filter"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-level Prometheus middleware handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
