package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CheckoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipdesk_checkouts_total",
		Help: "Shipment checkouts by outcome.",
	},
		[]string{"outcome"},
	)

	SideEffectFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipdesk_checkout_side_effect_failures_total",
		Help: "Best-effort checkout records that failed to persist, by step.",
	},
		[]string{"step"},
	)

	CompensationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipdesk_checkout_compensations_total",
		Help: "Shipment deletions after a failed debit, by outcome.",
	},
		[]string{"outcome"},
	)

	FundsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipdesk_funds_added_total",
		Help: "Total number of successful add-funds operations.",
	})

	FundsAddedAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipdesk_funds_added_amount",
		Help: "Sum of amounts credited through add-funds.",
	})

	RateQuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipdesk_rate_quote_requests_total",
		Help: "Rate quote requests by outcome.",
	},
		[]string{"outcome"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipdesk_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	AuditBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipdesk_audit_batches_total",
		Help: "Audit batches handed to the sink, by outcome.",
	},
		[]string{"outcome"},
	)
)
