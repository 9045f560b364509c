package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckoutSessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout sessions and payment intents created, by kind and result",
		},
		[]string{"kind", "result"},
	)

	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Webhook deliveries processed, by outcome",
		},
		[]string{"outcome"},
	)

	ConfirmationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_confirmations_total",
			Help: "Payment confirmations, by outcome",
		},
		[]string{"outcome"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_amounts",
			Help:    "Distribution of payment amounts in major units",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"currency"},
	)

	NotificationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Confirmation emails that could not be sent",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		CheckoutSessionsTotal,
		WebhookEventsTotal,
		ConfirmationsTotal,
		PaymentAmounts,
		NotificationFailuresTotal,
	)
}
