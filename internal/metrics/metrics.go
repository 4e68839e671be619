package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storeops"

var (
	AlertsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_dispatched_total",
		Help:      "Alerts delivered, by channel.",
	}, []string{"channel"})

	AlertFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alert_failures_total",
		Help:      "Alert deliveries that failed, by channel.",
	}, []string{"channel"})

	FormsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forms_submitted_total",
		Help:      "Forms submitted, by form type.",
	}, []string{"form_type"})

	FormTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_transitions_total",
		Help:      "Form status changes and moves.",
	}, []string{"kind"})

	WebSocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "websocket_clients",
		Help:      "Connected WebSocket clients.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
