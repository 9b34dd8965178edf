package monitoring

import (
	"testing"
	"time"
)

// NewMetrics registers against the default Prometheus registry, so the
// whole package shares a single collector across subtests.
func TestMetrics(t *testing.T) {
	m := NewMetrics()

	t.Run("AttachLatencySummary", func(t *testing.T) {
		if s := m.AttachLatencySummary(); s.Count != 0 {
			t.Errorf("expected empty summary, got count %d", s.Count)
		}

		for i := 1; i <= 100; i++ {
			m.RecordAttach(true, time.Duration(i)*time.Millisecond)
		}
		s := m.AttachLatencySummary()
		if s.Count != 100 {
			t.Errorf("expected 100 samples, got %d", s.Count)
		}
		if s.MeanMs < 50 || s.MeanMs > 51 {
			t.Errorf("unexpected mean %.2fms", s.MeanMs)
		}
		if s.P50Ms >= s.P95Ms || s.P95Ms > s.P99Ms {
			t.Errorf("percentiles out of order: p50=%.2f p95=%.2f p99=%.2f", s.P50Ms, s.P95Ms, s.P99Ms)
		}
	})

	t.Run("LatencyWindowBounded", func(t *testing.T) {
		for i := 0; i < latencyWindow+50; i++ {
			m.RecordAttach(false, time.Millisecond)
		}
		if got := len(m.AttachLatencies()); got != latencyWindow {
			t.Errorf("expected window of %d, got %d", latencyWindow, got)
		}
	})

	t.Run("Snapshot", func(t *testing.T) {
		before := m.GetSnapshot()

		m.RecordHTTPRequest("GET", "/discovery/processes", "200", 10*time.Millisecond, 0, 128)
		m.RecordHTTPRequest("POST", "/attach", "500", 5*time.Millisecond, 64, 32)
		m.SetProcessesInspectable(3)
		m.IncWSConnections()

		after := m.GetSnapshot()
		if after.TotalRequests != before.TotalRequests+2 {
			t.Errorf("expected %d requests, got %d", before.TotalRequests+2, after.TotalRequests)
		}
		if after.TotalErrors != before.TotalErrors+1 {
			t.Errorf("expected %d errors, got %d", before.TotalErrors+1, after.TotalErrors)
		}
		if after.Inspectable != 3 {
			t.Errorf("expected inspectable 3, got %d", after.Inspectable)
		}
		if after.ActiveConnections != before.ActiveConnections+1 {
			t.Errorf("expected %d connections, got %d", before.ActiveConnections+1, after.ActiveConnections)
		}

		m.DecWSConnections()
	})

	if m.GetUptimeSeconds() < 0 {
		t.Error("uptime should not be negative")
	}
}
