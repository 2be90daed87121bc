package metrics

import (
	"hms-console/internal/pkg/constvars"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// Collector owns a private registry. A nil *Collector records nothing.
type Collector struct {
	registry      *prometheus.Registry
	fetchTotal    *prometheus.CounterVec
	mutationTotal *prometheus.CounterVec
}

func NewPrometheusCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	fetchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hms_console",
		Name:      "fetch_total",
		Help:      "Collection reads against the hospital API by outcome.",
	}, []string{"resource", "outcome"})

	mutationTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hms_console",
		Name:      "mutation_total",
		Help:      "Writes against the hospital API by outcome.",
	}, []string{"resource", "action", "outcome"})

	registry.MustRegister(fetchTotal, mutationTotal)

	return &Collector{
		registry:      registry,
		fetchTotal:    fetchTotal,
		mutationTotal: mutationTotal,
	}
}

func (c *Collector) ObserveFetch(resource constvars.Resource, outcome string) {
	if c == nil {
		return
	}
	c.fetchTotal.WithLabelValues(string(resource), outcome).Inc()
}

func (c *Collector) ObserveMutation(resource constvars.Resource, action, outcome string) {
	if c == nil {
		return
	}
	c.mutationTotal.WithLabelValues(string(resource), action, outcome).Inc()
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// FetchTotal returns the fetch counter series for resource and outcome.
func (c *Collector) FetchTotal(resource constvars.Resource, outcome string) prometheus.Counter {
	return c.fetchTotal.WithLabelValues(string(resource), outcome)
}

func (c *Collector) MutationTotal(resource constvars.Resource, action, outcome string) prometheus.Counter {
	return c.mutationTotal.WithLabelValues(string(resource), action, outcome)
}
