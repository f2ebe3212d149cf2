package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Name:      "orders_placed_total",
		Help:      "Order placement attempts by outcome.",
	}, []string{"outcome"})

	compensations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Name:      "compensations_total",
		Help:      "Orders deleted after a failed placement.",
	})

	compensationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Name:      "compensation_failures_total",
		Help:      "Compensating deletes that failed and left the order behind.",
	})

	orphanedOrders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Name:      "orphaned_orders_total",
		Help:      "Orders with a successful remote payment that could not be attached.",
	})

	paymentRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "checkout_service",
		Name:      "payment_request_duration_seconds",
		Help:      "Wall time of payment submission including retries.",
		Buckets:   prometheus.DefBuckets,
	})

	cartLines = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Name:      "cart_lines_total",
		Help:      "Cart lines processed during checkout by result.",
	}, []string{"result"})
)
