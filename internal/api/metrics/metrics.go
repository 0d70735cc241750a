// Package metrics defines and registers all custom Prometheus metrics for
// the commerce API. It is the single source of truth for metric names,
// labels, and help strings. All collectors register themselves with the
// default registry through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// Transport label values used by the REST and GraphQL adapters.
const (
	TransportREST    = "rest"
	TransportGraphQL = "graphql"
)

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - transport: "rest" or "graphql"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users successfully registered.",
	},
	[]string{"transport"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - transport: "rest" or "graphql"
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"transport", "result"},
)

// CheckoutsTotal counts successfully priced checkouts.
// Labels:
//   - transport: "rest" or "graphql"
//   - payment_method: the method string sent by the client (e.g. "boleto")
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkouts successfully priced.",
	},
	[]string{"transport", "payment_method"},
)

// CheckoutErrorsTotal counts checkouts rejected by the pricing contract.
// Labels:
//   - transport: "rest" or "graphql"
//   - reason: "product_not_found", "card_data_required" or "unauthorized"
var CheckoutErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_errors_total",
		Help:      "Total number of checkouts that failed validation or pricing.",
	},
	[]string{"transport", "reason"},
)

// CheckoutAmountBRL observes the distribution of checkout totals.
// Label:
//   - payment_method: the method string sent by the client
var CheckoutAmountBRL = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_amount_brl",
		Help:      "Distribution of checkout totals in BRL.",
		Buckets:   []float64{10, 25, 50, 100, 200, 500, 1000},
	},
	[]string{"payment_method"},
)
