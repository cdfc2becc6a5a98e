// Package metrics defines the Prometheus collectors for a corpus run. They
// live in a private registry and are written to a node_exporter textfile at
// the end of the run, since the tool exits before anything could scrape it.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Fetch outcomes.
const (
	OutcomeFetched  = "fetched"
	OutcomeCached   = "cached"
	OutcomeFailed   = "failed"
	OutcomeSkipped  = "skipped"
	StageRaw        = "raw"
	StageNormalized = "normalized"
)

// Metrics holds all collectors of one run.
type Metrics struct {
	registry *prometheus.Registry

	FetchTotal     *prometheus.CounterVec
	FetchDuration  prometheus.Histogram
	TokensTotal    *prometheus.CounterVec
	DocumentsTotal prometheus.Counter
	VocabularySize prometheus.Gauge
}

// New creates and registers all collectors in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lexicorpus_fetch_total",
				Help: "Sources processed by outcome (fetched, cached, failed, skipped).",
			},
			[]string{"outcome"},
		),
		FetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lexicorpus_fetch_duration_seconds",
				Help:    "Network fetch latency in seconds.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		TokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lexicorpus_tokens_total",
				Help: "Tokens seen by pipeline stage (raw, normalized).",
			},
			[]string{"stage"},
		),
		DocumentsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lexicorpus_documents_total",
				Help: "Documents that made it into the corpus.",
			},
		),
		VocabularySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "lexicorpus_vocabulary_size",
				Help: "Distinct base forms in the last built vocabulary.",
			},
		),
	}

	m.registry.MustRegister(
		m.FetchTotal,
		m.FetchDuration,
		m.TokensTotal,
		m.DocumentsTotal,
		m.VocabularySize,
	)

	return m
}

// Gather returns the current metric families.
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}

// WriteTextfile writes all metrics in the text exposition format. The file
// is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
