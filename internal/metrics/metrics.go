package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"path", "method", "status"})

	RendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagination_renders_total",
		Help: "Total number of rendered pagination fragments",
	}, []string{"style", "format"})

	RenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pagination_render_seconds",
		Help:    "Time taken to render pagination fragments",
		Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
	}, []string{"style"})

	InvalidRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagination_invalid_requests_total",
		Help: "Total number of rejected pagination requests",
	}, []string{"reason"})

	NumPages = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pagination_num_pages",
		Help:    "Distribution of computed page counts",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	LabelCacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagination_label_cache_total",
		Help: "Sanitized label cache lookups",
	}, []string{"result"})
)
