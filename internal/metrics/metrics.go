// Package metrics exposes storefront counters in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tradsolution/storefront/internal/domain/model"
)

const namespace = "storefront"

// Registry holds all storefront metrics on a private Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	OrdersCreated    *prometheus.CounterVec
	InvoicesRendered prometheus.Counter
	Redemptions      *prometheus.CounterVec
	SweptLinks       prometheus.Counter
}

// NewRegistry creates and registers storefront metrics together with Go runtime collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),

		OrdersCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_created_total",
				Help:      "Orders created by initial status",
			},
			[]string{"status"},
		),

		InvoicesRendered: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invoices_rendered_total",
				Help:      "Invoice PDFs rendered",
			},
		),

		Redemptions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "download_redemptions_total",
				Help:      "Download link redemptions by outcome",
			},
			[]string{"outcome"},
		),

		SweptLinks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "links_deactivated_total",
				Help:      "Stale download links deactivated by the sweeper",
			},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.RequestsTotal,
		r.RequestDuration,
		r.OrdersCreated,
		r.InvoicesRendered,
		r.Redemptions,
		r.SweptLinks,
	)
	return r
}

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// ObserveRequest records a served HTTP request.
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Registry) OrderCreated(status model.OrderStatus) {
	r.OrdersCreated.WithLabelValues(string(status)).Inc()
}

func (r *Registry) InvoiceRendered() {
	r.InvoicesRendered.Inc()
}

func (r *Registry) DownloadRedeemed(outcome string) {
	r.Redemptions.WithLabelValues(outcome).Inc()
}

func (r *Registry) LinksDeactivated(n int) {
	if n > 0 {
		r.SweptLinks.Add(float64(n))
	}
}
