package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
	pb "github.com/GriffinCanCode/InspectOS/proto/transport"
)

// Client wraps the gRPC client for the device bridge daemon with a circuit breaker.
// It maintains the stream table needed to enrich process events, which arrive
// from the daemon keyed by stream ID only.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.TransportServiceClient
	addr    string
	breaker *resilience.Breaker
	logger  *logging.Logger

	mu       sync.RWMutex
	streams  map[int64]types.Stream
	watchers map[string]context.CancelFunc
}

// New creates a new transport client with proper connection management.
// A nil tracer disables call tracing.
func New(addr string, logger *logging.Logger, tracer *tracing.Tracer) (*Client, error) {
	// Configure connection options for production use
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		// Configure keepalive to detect broken connections (reduced frequency to avoid "too_many_pings")
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                60 * time.Second, // Send pings every 60 seconds
			Timeout:             20 * time.Second, // Wait 20 seconds for ping ack
			PermitWithoutStream: false,            // Only send pings when streams are active
		}),
		// Set reasonable message size limits
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(10*1024*1024), // 10MB receive limit
			grpc.MaxCallSendMsgSize(10*1024*1024), // 10MB send limit
		),
	}

	if tracer != nil {
		opts = append(opts,
			grpc.WithUnaryInterceptor(tracing.GRPCClientInterceptor(tracer)),
			grpc.WithStreamInterceptor(tracing.GRPCStreamClientInterceptor(tracer)),
		)
	}

	// Dial without WithBlock() - it's deprecated and problematic
	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial transport daemon: %w", err)
	}

	// Create circuit breaker for daemon calls
	breaker := resilience.New("transport", resilience.Settings{
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			// Trip if 5+ consecutive failures or 50% failure rate with 10+ requests
			return counts.ConsecutiveFailures >= 5 ||
				(counts.Requests >= 10 && float64(counts.TotalFailures)/float64(counts.Requests) > 0.5)
		},
	})

	return &Client{
		conn:     conn,
		client:   pb.NewTransportServiceClient(conn),
		addr:     addr,
		breaker:  breaker,
		logger:   logger,
		streams:  make(map[int64]types.Stream),
		watchers: make(map[string]context.CancelFunc),
	}, nil
}

// Close stops all session watchers and closes the connection
func (c *Client) Close() error {
	c.mu.Lock()
	for id, cancel := range c.watchers {
		cancel()
		delete(c.watchers, id)
	}
	c.mu.Unlock()

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Addr returns the daemon address this client dials
func (c *Client) Addr() string {
	return c.addr
}

// BreakerState exposes the circuit breaker state for health reporting
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// lookupStream returns the stream a process event belongs to
func (c *Client) lookupStream(streamID int64) (types.Stream, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.streams[streamID]
	return s, ok
}
