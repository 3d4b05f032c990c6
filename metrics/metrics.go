package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	OrdersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "bot_orders_placed_total", Help: "Orders accepted by the exchange"},
		[]string{"symbol", "side"},
	)
	OrderFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "bot_order_failures_total", Help: "Orders rejected or failed after retries"},
	)
	RESTRetries = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "bot_rest_retries_total", Help: "REST attempts retried on transient failures"},
	)
)

func init() {
	prometheus.MustRegister(OrdersPlaced, OrderFailures, RESTRetries)
}
