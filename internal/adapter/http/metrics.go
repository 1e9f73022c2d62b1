package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	generateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_generate_total",
		Help: "Generation requests by outcome.",
	}, []string{"outcome"})

	emitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "resume_emit_duration_seconds",
		Help:    "Time spent rendering and emitting a resume document.",
		Buckets: prometheus.DefBuckets,
	})
)

func metricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
