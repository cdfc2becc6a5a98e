package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCollectors(t *testing.T) {
	m := New()
	m.FetchTotal.WithLabelValues(OutcomeFetched).Add(3)
	m.FetchTotal.WithLabelValues(OutcomeFailed).Inc()
	m.TokensTotal.WithLabelValues(StageRaw).Add(120)
	m.TokensTotal.WithLabelValues(StageNormalized).Add(45)
	m.VocabularySize.Set(30)

	families, err := m.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	got := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range metric.GetLabel() {
				key += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			switch {
			case metric.GetCounter() != nil:
				got[key] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				got[key] = metric.GetGauge().GetValue()
			}
		}
	}

	want := map[string]float64{
		"lexicorpus_fetch_total{outcome=fetched}":   3,
		"lexicorpus_fetch_total{outcome=failed}":    1,
		"lexicorpus_tokens_total{stage=raw}":        120,
		"lexicorpus_tokens_total{stage=normalized}": 45,
		"lexicorpus_vocabulary_size":                30,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.DocumentsTotal.Inc()

	families, _ := b.Gather()
	for _, mf := range families {
		if mf.GetName() == "lexicorpus_documents_total" && mf.GetMetric()[0].GetCounter().GetValue() != 0 {
			t.Error("second registry saw the first one's counter")
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.VocabularySize.Set(7)

	path := filepath.Join(t.TempDir(), "lexicorpus.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading textfile: %v", err)
	}
	if !strings.Contains(string(data), "lexicorpus_vocabulary_size 7") {
		t.Errorf("textfile missing gauge:\n%s", data)
	}
}
