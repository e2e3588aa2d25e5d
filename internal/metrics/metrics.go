// Package metrics exposes the engine's prometheus instrumentation.
// Counters are registered through promauto and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelmatch_shipments_created_total",
		Help: "Total number of shipments successfully created.",
	})

	OffersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelmatch_offers_created_total",
		Help: "Total number of offers successfully placed.",
	})

	OffersAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelmatch_offers_accepted_total",
		Help: "Total number of offers accepted into a match.",
	})

	PaymentsHeldTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelmatch_payments_held_total",
		Help: "Total number of escrow holds created.",
	})

	PaymentsReleasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelmatch_payments_released_total",
		Help: "Total number of escrow holds released to couriers.",
	})

	PaymentsRefundedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelmatch_payments_refunded_total",
		Help: "Total number of escrow holds refunded to senders.",
	})

	DeliveriesConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelmatch_deliveries_confirmed_total",
		Help: "Total number of shipments that completed the delivery gate.",
	})

	ConversationRelayFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelmatch_conversation_relay_failures_total",
		Help: "Total number of chat side effects that failed immediate delivery.",
	})

	ConversationRedeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelmatch_conversation_redelivered_total",
		Help: "Total number of parked chat events successfully redelivered.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parcelmatch_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
