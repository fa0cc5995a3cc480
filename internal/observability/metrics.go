package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StorageErrorRate counts slot store errors by backend and operation.
	StorageErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_storage_error_rate_total",
		Help: "Total number of slot store errors by backend and operation",
	}, []string{"backend", "operation"})

	// SlotWritesTotal counts full-collection rewrites per slot.
	SlotWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_slot_writes_total",
		Help: "Total number of slot overwrites by slot key",
	}, []string{"slot"})

	// GatewayRequestsTotal counts remote content gateway requests by outcome.
	GatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studio_gateway_requests_total",
		Help: "Total number of GraphQL gateway requests by outcome",
	}, []string{"outcome"})
)
