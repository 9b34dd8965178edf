package transport

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
	pb "github.com/GriffinCanCode/InspectOS/proto/transport"
)

// EventHandler receives stream and process lifecycle events from the daemon.
// Process events are enriched with device identity before dispatch.
type EventHandler interface {
	HandleStreamConnected(stream types.Stream)
	HandleStreamDead(streamID int64)
	HandleProcessStarted(desc types.ProcessDescriptor)
	HandleProcessEnded(desc types.ProcessDescriptor)
}

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Subscribe consumes the daemon's event stream and fans events out to the
// handlers in registration order. It blocks until ctx is cancelled,
// reconnecting with exponential backoff when the stream breaks. After a
// reconnect the daemon replays current state, so local stream knowledge is
// dropped first and handlers see dead edges for every previously known stream.
func (c *Client) Subscribe(ctx context.Context, handlers ...EventHandler) error {
	backoff := initialBackoff

	for {
		stream, err := c.client.StreamEvents(ctx, &pb.StreamEventsRequest{ReplayState: true})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("event stream connect failed, retrying",
				zap.String("addr", c.addr),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			if err := sleep(ctx, backoff); err != nil {
				return err
			}
			backoff = nextBackoff(backoff)
			continue
		}

		c.logger.Info("event stream connected", zap.String("addr", c.addr))
		backoff = initialBackoff

		err = c.pump(stream, handlers)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.logger.Warn("event stream broken, resubscribing",
			zap.String("addr", c.addr),
			zap.Error(err),
		)
		c.reset(handlers)

		if err := sleep(ctx, backoff); err != nil {
			return err
		}
		backoff = nextBackoff(backoff)
	}
}

// pump reads events until the stream errors
func (c *Client) pump(stream pb.TransportService_StreamEventsClient, handlers []EventHandler) error {
	for {
		event, err := stream.Recv()
		if err != nil {
			return fmt.Errorf("event stream recv: %w", err)
		}
		c.dispatch(event, handlers)
	}
}

// dispatch updates the stream table and forwards one event to all handlers
func (c *Client) dispatch(event *pb.Event, handlers []EventHandler) {
	switch event.GetType() {
	case pb.Event_STREAM_CONNECTED:
		info := event.GetStream()
		if info == nil {
			return
		}
		stream := streamFromProto(info)

		c.mu.Lock()
		c.streams[stream.ID] = stream
		c.mu.Unlock()

		for _, h := range handlers {
			h.HandleStreamConnected(stream)
		}

	case pb.Event_STREAM_DEAD:
		info := event.GetStream()
		if info == nil {
			return
		}

		c.mu.Lock()
		delete(c.streams, info.GetStreamId())
		c.mu.Unlock()

		for _, h := range handlers {
			h.HandleStreamDead(info.GetStreamId())
		}

	case pb.Event_PROCESS_STARTED:
		desc, ok := c.enrich(event.GetProcess())
		if !ok {
			return
		}
		for _, h := range handlers {
			h.HandleProcessStarted(desc)
		}

	case pb.Event_PROCESS_ENDED:
		desc, ok := c.enrich(event.GetProcess())
		if !ok {
			return
		}
		for _, h := range handlers {
			h.HandleProcessEnded(desc)
		}
	}
}

// enrich builds a full descriptor from a process event using the stream table.
// Events for unknown streams are dropped: without device identity the
// descriptor would never match a launch registration.
func (c *Client) enrich(info *pb.ProcessInfo) (types.ProcessDescriptor, bool) {
	if info == nil {
		return types.ProcessDescriptor{}, false
	}

	stream, ok := c.lookupStream(info.GetStreamId())
	if !ok {
		c.logger.Warn("process event for unknown stream, dropping",
			zap.Int64("stream_id", info.GetStreamId()),
			zap.Int32("pid", info.GetPid()),
			zap.String("process", info.GetName()),
		)
		return types.ProcessDescriptor{}, false
	}

	return descriptorFromProto(info, stream), true
}

// reset drops local stream state and notifies handlers with dead edges
func (c *Client) reset(handlers []EventHandler) {
	c.mu.Lock()
	dead := make([]int64, 0, len(c.streams))
	for id := range c.streams {
		dead = append(dead, id)
	}
	c.streams = make(map[int64]types.Stream)
	c.mu.Unlock()

	for _, id := range dead {
		for _, h := range handlers {
			h.HandleStreamDead(id)
		}
	}
}

// nextBackoff doubles the delay up to the cap
func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

// sleep waits for the duration or until ctx is cancelled
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
