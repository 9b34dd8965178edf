package transport

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
	pb "github.com/GriffinCanCode/InspectOS/proto/transport"
)

const pushChunkSize = 64 * 1024

// AttachAgent injects the inspection agent into a live process. On success it
// returns the daemon's session handle and a channel that delivers exactly one
// termination reason, then closes. The caller owns the deadline.
func (c *Client) AttachAgent(ctx context.Context, desc types.ProcessDescriptor, agentPath string) (string, <-chan string, error) {
	req := &pb.AttachAgentRequest{
		StreamId:  desc.StreamID,
		Pid:       desc.PID,
		AgentPath: agentPath,
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.client.AttachAgent(ctx, req)
	})

	if err == resilience.ErrCircuitOpen {
		return "", nil, fmt.Errorf("transport daemon unavailable: circuit breaker open")
	}
	if err != nil {
		return "", nil, fmt.Errorf("attach agent failed: %w", err)
	}

	resp := result.(*pb.AttachAgentResponse)
	sessionID := resp.GetSessionId()
	if sessionID == "" {
		return "", nil, fmt.Errorf("attach agent failed: daemon returned empty session")
	}

	terminated := make(chan string, 1)

	watchCtx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.watchers[sessionID] = cancel
	c.mu.Unlock()

	go c.watchSession(watchCtx, sessionID, terminated)

	return sessionID, terminated, nil
}

// DetachAgent tears down an agent session. The session watcher is cancelled
// first so a detach never surfaces as a termination.
func (c *Client) DetachAgent(ctx context.Context, sessionID string) error {
	c.stopWatcher(sessionID)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := c.breaker.Do(func() error {
		resp, err := c.client.DetachAgent(ctx, &pb.DetachAgentRequest{SessionId: sessionID})
		if err != nil {
			return err
		}
		if !resp.GetDetached() {
			return fmt.Errorf("daemon rejected detach for session %s", sessionID)
		}
		return nil
	})

	if err == resilience.ErrCircuitOpen {
		return fmt.Errorf("transport daemon unavailable: circuit breaker open")
	}
	if err != nil {
		return fmt.Errorf("detach agent failed: %w", err)
	}
	return nil
}

// PushPayload copies a payload bundle onto the device backing the stream.
// It returns the number of bytes the daemon reports written.
func (c *Client) PushPayload(ctx context.Context, streamID int64, devicePath, digest string, size int64, r io.Reader) (int64, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		stream, err := c.client.PushPayload(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create push stream: %w", err)
		}

		info := &pb.PushPayloadRequest{
			Payload: &pb.PushPayloadRequest_Info{
				Info: &pb.PushPayloadInfo{
					StreamId:   streamID,
					DevicePath: devicePath,
					Digest:     digest,
					TotalSize:  size,
				},
			},
		}
		if err := stream.Send(info); err != nil {
			return nil, fmt.Errorf("failed to send push info: %w", err)
		}

		buf := make([]byte, pushChunkSize)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunk := &pb.PushPayloadRequest{
					Payload: &pb.PushPayloadRequest_Chunk{
						Chunk: buf[:n],
					},
				}
				if err := stream.Send(chunk); err != nil {
					return nil, fmt.Errorf("failed to send chunk: %w", err)
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("payload read failed: %w", err)
			}
		}

		return stream.CloseAndRecv()
	})

	if err == resilience.ErrCircuitOpen {
		return 0, fmt.Errorf("transport daemon unavailable: circuit breaker open")
	}
	if err != nil {
		return 0, err
	}

	resp := result.(*pb.PushPayloadResponse)
	return resp.GetBytesWritten(), nil
}

// watchSession consumes the session event stream and delivers the terminal
// reason. A cancelled watcher delivers nothing.
func (c *Client) watchSession(ctx context.Context, sessionID string, terminated chan<- string) {
	defer c.stopWatcher(sessionID)

	deliver := func(reason string) {
		terminated <- reason
		close(terminated)
	}

	stream, err := c.client.WatchSession(ctx, &pb.WatchSessionRequest{SessionId: sessionID})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		deliver(fmt.Sprintf("session watch failed: %v", err))
		return
	}

	for {
		event, err := stream.Recv()
		if err == io.EOF {
			deliver("session closed by daemon")
			return
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			deliver(fmt.Sprintf("session watch broken: %v", err))
			return
		}

		if event.GetType() == pb.SessionEvent_TERMINATED {
			reason := event.GetReason()
			if reason == "" {
				reason = "agent terminated"
			}
			c.logger.Info("agent session terminated",
				zap.String("session_id", sessionID),
				zap.String("reason", reason),
			)
			deliver(reason)
			return
		}
	}
}

// stopWatcher cancels and forgets the watcher for a session, if any
func (c *Client) stopWatcher(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cancel, ok := c.watchers[sessionID]; ok {
		cancel()
		delete(c.watchers, sessionID)
	}
}
