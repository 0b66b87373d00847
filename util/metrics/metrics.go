// Package metrics exposes prometheus collectors for the HTTP layer and
// the rental lifecycle.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "boardcamp"

// Rental lifecycle events.
const (
	EventCreated  = "created"
	EventReturned = "returned"
	EventDeleted  = "deleted"
)

// Recorder receives rental lifecycle events from the rental service.
type Recorder interface {
	RentalCreated(originalPrice int64)
	RentalReturned(delayFee int64)
	RentalDeleted()
}

type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	rentals   *prometheus.CounterVec
	billed    prometheus.Counter
	delayFees prometheus.Counter
	lateCount prometheus.Counter
}

// New registers every collector on a fresh registry, together with the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		rentals: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rentals",
			Name:      "events_total",
			Help:      "Rental lifecycle transitions.",
		}, []string{"event"}),
		billed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rentals",
			Name:      "original_price_total",
			Help:      "Sum of originalPrice over created rentals.",
		}),
		delayFees: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rentals",
			Name:      "delay_fee_total",
			Help:      "Sum of delay fees charged on return.",
		}),
		lateCount: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rentals",
			Name:      "late_returns_total",
			Help:      "Returns that produced a delay fee.",
		}),
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) RentalCreated(originalPrice int64) {
	m.rentals.WithLabelValues(EventCreated).Inc()
	m.billed.Add(float64(originalPrice))
}

func (m *Metrics) RentalReturned(delayFee int64) {
	m.rentals.WithLabelValues(EventReturned).Inc()
	if delayFee > 0 {
		m.lateCount.Inc()
		m.delayFees.Add(float64(delayFee))
	}
}

func (m *Metrics) RentalDeleted() { m.rentals.WithLabelValues(EventDeleted).Inc() }

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Nop discards every event.
type Nop struct{}

func (Nop) RentalCreated(int64)  {}
func (Nop) RentalReturned(int64) {}
func (Nop) RentalDeleted()       {}
