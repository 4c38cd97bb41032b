// Package metrics publishes workshop state as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics holds the gauges describing the order backlog.
type OrderMetrics struct {
	orders *prometheus.GaugeVec
}

// NewOrderMetrics registers the workshop_orders gauge.
func NewOrderMetrics(registerer prometheus.Registerer) (*OrderMetrics, error) {
	orders := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "workshop",
		Name:      "orders",
		Help:      "Number of orders per status.",
	}, []string{"status"})

	if err := registerer.Register(orders); err != nil {
		return nil, err
	}

	return &OrderMetrics{orders: orders}, nil
}

// SetOrderCount sets the number of orders in status.
func (m *OrderMetrics) SetOrderCount(status string, count int) {
	m.orders.WithLabelValues(status).Set(float64(count))
}
