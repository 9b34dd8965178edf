package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// latencyWindow is the number of recent attach durations kept for the
// JSON summary percentiles.
const latencyWindow = 512

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Discovery metrics
	TransportEvents      *prometheus.CounterVec
	StreamsConnected     prometheus.Gauge
	ProcessesLive        prometheus.Gauge
	ProcessesInspectable prometheus.Gauge
	LaunchesRegistered   prometheus.Gauge

	// Attach metrics
	AttachTotal    *prometheus.CounterVec
	AttachDuration prometheus.Histogram
	TargetsActive  prometheus.Gauge

	// Payload metrics
	PayloadFetches *prometheus.CounterVec

	// Journal metrics
	JournalWrites prometheus.Counter
	JournalErrors prometheus.Counter

	// gRPC metrics
	GRPCCalls    *prometheus.CounterVec
	GRPCDuration *prometheus.HistogramVec
	GRPCErrors   *prometheus.CounterVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot  MetricsSnapshot
	latencies []float64

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values for JSON API
type MetricsSnapshot struct {
	TotalRequests     int64
	TotalErrors       int64
	Inspectable       int64
	ActiveConnections int64
	AttachSuccesses   int64
	AttachFailures    int64
	TotalDuration     float64 // sum of all request durations
	RequestCount      int64   // count for averaging
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),

		// Discovery metrics
		TransportEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_transport_events_total",
				Help: "Total number of transport lifecycle events",
			},
			[]string{"type"},
		),
		StreamsConnected: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_streams_connected",
				Help: "Number of connected device streams",
			},
		),
		ProcessesLive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_processes_live",
				Help: "Number of live processes known to the event stream",
			},
		),
		ProcessesInspectable: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_processes_inspectable",
				Help: "Number of processes in the inspectable set",
			},
		),
		LaunchesRegistered: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_launches_registered",
				Help: "Number of registered launch intents",
			},
		),

		// Attach metrics
		AttachTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_attach_total",
				Help: "Total number of attach attempts",
			},
			[]string{"status"},
		),
		AttachDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "backend_attach_duration_seconds",
				Help:    "Attach flow duration in seconds",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
		),
		TargetsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_targets_active",
				Help: "Number of attached targets",
			},
		),

		// Payload metrics
		PayloadFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_payload_fetches_total",
				Help: "Total number of payload bundle fetches",
			},
			[]string{"source", "status"},
		),

		// Journal metrics
		JournalWrites: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "backend_journal_writes_total",
				Help: "Total number of journal entries written",
			},
		),
		JournalErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "backend_journal_errors_total",
				Help: "Total number of journal write failures",
			},
		),

		// gRPC metrics
		GRPCCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_grpc_calls_total",
				Help: "Total number of gRPC calls",
			},
			[]string{"service", "method", "status"},
		),
		GRPCDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_grpc_duration_seconds",
				Help:    "gRPC call duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"service", "method"},
		),
		GRPCErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_grpc_errors_total",
				Help: "Total number of gRPC errors",
			},
			[]string{"service", "method", "code"},
		),

		// WebSocket metrics
		WSConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_ws_messages_total",
				Help: "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),

		// System metrics
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	// Update snapshot
	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	m.snapshot.RequestCount++
	if status[0] == '4' || status[0] == '5' {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordTransportEvent records a transport lifecycle event
func (m *Metrics) RecordTransportEvent(eventType string) {
	m.TransportEvents.WithLabelValues(eventType).Inc()
}

// RecordAttach records an attach attempt outcome
func (m *Metrics) RecordAttach(success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.AttachTotal.WithLabelValues(status).Inc()
	m.AttachDuration.Observe(duration.Seconds())

	m.mu.Lock()
	if success {
		m.snapshot.AttachSuccesses++
	} else {
		m.snapshot.AttachFailures++
	}
	m.latencies = append(m.latencies, duration.Seconds())
	if len(m.latencies) > latencyWindow {
		m.latencies = m.latencies[len(m.latencies)-latencyWindow:]
	}
	m.mu.Unlock()
}

// AttachLatencies returns a copy of the recent attach latency window in seconds
func (m *Metrics) AttachLatencies() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]float64, len(m.latencies))
	copy(out, m.latencies)
	return out
}

// RecordPayloadFetch records a payload bundle fetch
func (m *Metrics) RecordPayloadFetch(source, status string) {
	m.PayloadFetches.WithLabelValues(source, status).Inc()
}

// RecordGRPCCall records a gRPC call
func (m *Metrics) RecordGRPCCall(service, method, status string, duration time.Duration) {
	m.GRPCCalls.WithLabelValues(service, method, status).Inc()
	m.GRPCDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

// RecordGRPCError records a gRPC error
func (m *Metrics) RecordGRPCError(service, method, code string) {
	m.GRPCErrors.WithLabelValues(service, method, code).Inc()
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// SetStreamsConnected sets the number of connected streams
func (m *Metrics) SetStreamsConnected(count int) {
	m.StreamsConnected.Set(float64(count))
}

// SetProcessesLive sets the number of live processes
func (m *Metrics) SetProcessesLive(count int) {
	m.ProcessesLive.Set(float64(count))
}

// SetProcessesInspectable sets the size of the inspectable set
func (m *Metrics) SetProcessesInspectable(count int) {
	m.ProcessesInspectable.Set(float64(count))

	m.mu.Lock()
	m.snapshot.Inspectable = int64(count)
	m.mu.Unlock()
}

// SetLaunchesRegistered sets the number of launch intents
func (m *Metrics) SetLaunchesRegistered(count int) {
	m.LaunchesRegistered.Set(float64(count))
}

// SetTargetsActive sets the number of attached targets
func (m *Metrics) SetTargetsActive(count int) {
	m.TargetsActive.Set(float64(count))
}

// IncJournalWrites increments the journal write counter
func (m *Metrics) IncJournalWrites() {
	m.JournalWrites.Inc()
}

// IncJournalErrors increments the journal error counter
func (m *Metrics) IncJournalErrors() {
	m.JournalErrors.Inc()
}

// IncWSConnections increments WebSocket connections
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
	m.mu.Lock()
	m.snapshot.ActiveConnections++
	m.mu.Unlock()
}

// DecWSConnections decrements WebSocket connections
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
	m.mu.Lock()
	m.snapshot.ActiveConnections--
	m.mu.Unlock()
}

// GetSnapshot returns a copy of the current snapshot values
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// GetUptimeSeconds returns seconds since startup
func (m *Metrics) GetUptimeSeconds() float64 {
	return time.Since(m.startTime).Seconds()
}
