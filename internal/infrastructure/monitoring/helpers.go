package monitoring

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// LatencySummary describes the recent attach latency distribution
type LatencySummary struct {
	Count  int     `json:"count"`
	MeanMs float64 `json:"mean_ms"`
	P50Ms  float64 `json:"p50_ms"`
	P95Ms  float64 `json:"p95_ms"`
	P99Ms  float64 `json:"p99_ms"`
}

// AttachLatencySummary computes distribution stats over the recent attach window
func (m *Metrics) AttachLatencySummary() LatencySummary {
	samples := m.AttachLatencies()
	if len(samples) == 0 {
		return LatencySummary{}
	}

	sort.Float64s(samples)
	return LatencySummary{
		Count:  len(samples),
		MeanMs: stat.Mean(samples, nil) * 1000,
		P50Ms:  stat.Quantile(0.50, stat.Empirical, samples, nil) * 1000,
		P95Ms:  stat.Quantile(0.95, stat.Empirical, samples, nil) * 1000,
		P99Ms:  stat.Quantile(0.99, stat.Empirical, samples, nil) * 1000,
	}
}
