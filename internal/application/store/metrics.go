package store

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the store's in-process counters. There is no exposition
// endpoint; counters are read through the registry they registered on.
type Metrics struct {
	Mutations       *prometheus.CounterVec
	PersistFailures *prometheus.CounterVec
	LoadMisses      *prometheus.CounterVec
}

// NewMetrics creates and registers the store counters on reg. A nil
// reg registers on a private registry, which keeps tests independent.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "daybook_store_mutations_total",
				Help: "Total number of store mutations",
			},
			[]string{"kind", "op"},
		),
		PersistFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "daybook_store_persist_failures_total",
				Help: "Total number of failed persistence writes",
			},
			[]string{"key"},
		),
		LoadMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "daybook_store_load_misses_total",
				Help: "Total number of startup reads that fell back to defaults",
			},
			[]string{"key"},
		),
	}

	reg.MustRegister(m.Mutations, m.PersistFailures, m.LoadMisses)
	return m
}
