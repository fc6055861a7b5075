// Package metrics exposes Prometheus counters for the quotes domain.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quotes_api"

// Auth outcomes recorded by AuthAttempt.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics holds the domain counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	authAttempts      *prometheus.CounterVec
	quotesCreated     prometheus.Counter
	quotesDeleted     prometheus.Counter
	tagsCreated       prometheus.Counter
	orphanTagsDeleted prometheus.Counter
}

// New creates the domain counters and registers them, together with the Go
// and process collectors, on a fresh registry.
func New() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		gatherer: reg,
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Signup and signin attempts by operation and outcome.",
		}, []string{"operation", "outcome"}),
		quotesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_created_total",
			Help:      "Quotes persisted.",
		}),
		quotesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_deleted_total",
			Help:      "Quotes deleted by their owners.",
		}),
		tagsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tags_created_total",
			Help:      "Tags inserted by the tag upsert.",
		}),
		orphanTagsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orphan_tags_deleted_total",
			Help:      "Tags removed after losing their last quote.",
		}),
	}

	if err := register(reg,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.authAttempts,
		m.quotesCreated,
		m.quotesDeleted,
		m.tagsCreated,
		m.orphanTagsDeleted,
	); err != nil {
		return nil, err
	}

	return m, nil
}

func register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return err
			}
		}
	}

	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// AuthAttempt counts a signup or signin by outcome.
func (m *Metrics) AuthAttempt(operation, outcome string) {
	if m == nil {
		return
	}

	m.authAttempts.WithLabelValues(operation, outcome).Inc()
}

// QuoteCreated counts a persisted quote.
func (m *Metrics) QuoteCreated() {
	if m == nil {
		return
	}

	m.quotesCreated.Inc()
}

// QuoteDeleted counts a deleted quote.
func (m *Metrics) QuoteDeleted() {
	if m == nil {
		return
	}

	m.quotesDeleted.Inc()
}

// TagsCreated adds n newly inserted tags.
func (m *Metrics) TagsCreated(n int) {
	if m == nil || n <= 0 {
		return
	}

	m.tagsCreated.Add(float64(n))
}

// OrphanTagsDeleted adds n removed orphan tags.
func (m *Metrics) OrphanTagsDeleted(n int64) {
	if m == nil || n <= 0 {
		return
	}

	m.orphanTagsDeleted.Add(float64(n))
}
