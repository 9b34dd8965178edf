package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/monitoring"
)

// DaemonStatus reports the transport daemon link for the JSON snapshot
type DaemonStatus interface {
	Addr() string
	BreakerState() string
}

// MetricsAggregator assembles the JSON metrics snapshot: backend counters,
// the attach latency summary, and transport daemon reachability.
type MetricsAggregator struct {
	metrics *monitoring.Metrics
	daemon  DaemonStatus
}

// NewMetricsAggregator creates an aggregator; a nil daemon omits transport
// status from the snapshot.
func NewMetricsAggregator(metrics *monitoring.Metrics, daemon DaemonStatus) *MetricsAggregator {
	return &MetricsAggregator{
		metrics: metrics,
		daemon:  daemon,
	}
}

// Snapshot is the aggregated metrics response
type Snapshot struct {
	Timestamp time.Time                 `json:"timestamp"`
	Backend   BackendMetrics            `json:"backend"`
	Attach    monitoring.LatencySummary `json:"attach_latency"`
	Transport *TransportStatus          `json:"transport,omitempty"`
	Summary   Summary                   `json:"summary"`
}

// BackendMetrics holds backend counter values
type BackendMetrics struct {
	TotalRequests   int64 `json:"total_requests"`
	TotalErrors     int64 `json:"total_errors"`
	Inspectable     int64 `json:"inspectable"`
	WSConnections   int64 `json:"ws_connections"`
	AttachSuccesses int64 `json:"attach_successes"`
	AttachFailures  int64 `json:"attach_failures"`
}

// TransportStatus describes the daemon link
type TransportStatus struct {
	Addr         string `json:"addr"`
	BreakerState string `json:"breaker_state"`
	Healthy      bool   `json:"healthy"`
}

// Summary provides high-level rates
type Summary struct {
	AverageLatencyMs float64 `json:"average_latency_ms"`
	ErrorRate        float64 `json:"error_rate"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
}

// GetAggregatedMetrics returns the JSON metrics snapshot
func (ma *MetricsAggregator) GetAggregatedMetrics(c *gin.Context) {
	snap := ma.metrics.GetSnapshot()

	out := Snapshot{
		Timestamp: time.Now(),
		Backend: BackendMetrics{
			TotalRequests:   snap.TotalRequests,
			TotalErrors:     snap.TotalErrors,
			Inspectable:     snap.Inspectable,
			WSConnections:   snap.ActiveConnections,
			AttachSuccesses: snap.AttachSuccesses,
			AttachFailures:  snap.AttachFailures,
		},
		Attach:  ma.metrics.AttachLatencySummary(),
		Summary: ma.calculateSummary(snap),
	}

	if ma.daemon != nil {
		state := ma.daemon.BreakerState()
		out.Transport = &TransportStatus{
			Addr:         ma.daemon.Addr(),
			BreakerState: state,
			Healthy:      state == "closed",
		}
	}

	c.JSON(http.StatusOK, out)
}

func (ma *MetricsAggregator) calculateSummary(snap monitoring.MetricsSnapshot) Summary {
	summary := Summary{
		UptimeSeconds: ma.metrics.GetUptimeSeconds(),
	}
	if snap.RequestCount > 0 {
		summary.AverageLatencyMs = snap.TotalDuration / float64(snap.RequestCount) * 1000
	}
	if snap.TotalRequests > 0 {
		summary.ErrorRate = float64(snap.TotalErrors) / float64(snap.TotalRequests)
	}
	return summary
}
