package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds booking and reconciliation counters
type Metrics struct {
	HoldsCreated         prometheus.Counter
	HoldsRejected        *prometheus.CounterVec
	Reconciliations      *prometheus.CounterVec
	AmountMismatches     prometheus.Counter
	ReconcileAnomalies   prometheus.Counter
	PaidAfterCancel      prometheus.Counter
	HoldsExpired         prometheus.Counter
	ProviderLatency      prometheus.Histogram
	LookupsRateLimited   prometheus.Counter
	NotificationFailures *prometheus.CounterVec
}

// NewMetrics registers all collectors on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HoldsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holds_created_total",
			Help:      "The total number of pending holds placed",
		}),
		HoldsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holds_rejected_total",
			Help:      "The total number of hold requests rejected",
		}, []string{"reason"}),
		Reconciliations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliations_total",
			Help:      "Payment reconciliations by outcome",
		}, []string{"outcome"}),
		AmountMismatches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "amount_mismatches_total",
			Help:      "Payments whose provider amount differed from the booking total",
		}),
		ReconcileAnomalies: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_anomalies_total",
			Help:      "Confirmed bookings whose payment record could not be written",
		}),
		PaidAfterCancel: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paid_after_cancel_total",
			Help:      "Matching payments that arrived after the booking was already cancelled",
		}),
		HoldsExpired: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holds_expired_total",
			Help:      "Pending holds cancelled by the sweeper",
		}),
		ProviderLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_seconds",
			Help:      "Time taken to fetch a payment from the provider",
			Buckets:   prometheus.DefBuckets,
		}),
		LookupsRateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_rate_limited_total",
			Help:      "Lookup requests rejected by the rate limiter",
		}),
		NotificationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Side-channel deliveries that failed",
		}, []string{"channel"}),
	}
}
