package telemetry

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles Prometheus metrics for adapter listings and metric
// commits. It satisfies session.Observer.
type Collector struct {
	gatherer prometheus.Gatherer

	Listings          *prometheus.CounterVec
	Commits           *prometheus.CounterVec
	ConnectedAdapters prometheus.Gauge
}

// NewCollector registers metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	listings, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netprio_listings_total",
		Help: "Adapter listings, labeled by outcome (ok, empty, no_header, error).",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	commits, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netprio_commits_total",
		Help: "Metric batch commits, labeled by outcome (success, failure).",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	connected := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "netprio_connected_adapters",
		Help: "Connected, non-excluded adapters in the most recent listing.",
	})
	if err := reg.Register(connected); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(prometheus.Gauge)
		if !ok {
			return nil, err
		}
		connected = existing
	}

	return &Collector{
		gatherer:          gatherer,
		Listings:          listings,
		Commits:           commits,
		ConnectedAdapters: connected,
	}, nil
}

func (c *Collector) ListingCompleted(outcome string, adapters int) {
	c.Listings.WithLabelValues(outcome).Inc()
	c.ConnectedAdapters.Set(float64(adapters))
}

func (c *Collector) CommitCompleted(outcome string) {
	c.Commits.WithLabelValues(outcome).Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return vec, nil
}
