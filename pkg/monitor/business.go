package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds the token pipeline counters exposed on /metrics.
type BusinessMetrics struct {
	TransfersBroadcastTotal *prometheus.CounterVec
	TransfersConfirmedTotal *prometheus.CounterVec
	DeploymentsTotal        prometheus.Counter
	WebhookEventsTotal      prometheus.Counter
	BroadcastErrorsTotal    prometheus.Counter
}

// Global metrics instance. Nil until Init is called, callers guard on it so
// tests run without a registry.
var Business *BusinessMetrics

func Init() {
	Business = &BusinessMetrics{
		TransfersBroadcastTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tokenforge_transfers_broadcast_total",
			Help: "The total number of token transfers broadcast",
		}, []string{"network"}),
		TransfersConfirmedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tokenforge_transfers_confirmed_total",
			Help: "The total number of token transfers confirmed on chain",
		}, []string{"status"}),
		DeploymentsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tokenforge_deployments_total",
			Help: "The total number of token contracts deployed",
		}),
		WebhookEventsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tokenforge_webhook_events_total",
			Help: "The total number of events received on the webhook",
		}),
		BroadcastErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tokenforge_broadcast_errors_total",
			Help: "The total number of transactions rejected at broadcast",
		}),
	}
}
