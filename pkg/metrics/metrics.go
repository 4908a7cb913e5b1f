// pkg/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatapp_http_requests_total",
			Help: "HTTP requests by method, path and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chatapp_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	FriendRequestOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatapp_friend_request_ops_total",
			Help: "Friend request operations by kind and outcome.",
		},
		[]string{"op", "outcome"},
	)

	WSConnectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatapp_ws_connected_clients",
			Help: "Currently connected WebSocket clients.",
		},
	)

	WSEventsDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatapp_ws_events_delivered_total",
			Help: "Events delivered to a live connection.",
		},
	)

	WSEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatapp_ws_events_dropped_total",
			Help: "Events dropped because the target user had no live connection.",
		},
	)
)
