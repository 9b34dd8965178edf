package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/domain/discovery"
	"github.com/GriffinCanCode/InspectOS/internal/domain/target"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/InspectOS/internal/shared/exec"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

const (
	writeTimeout = 10 * time.Second

	// maxQueuedEvents disconnects clients that stop draining
	maxQueuedEvents = 256
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Same-host UI and inspectctl; auth happens at the API layer
	},
}

// Handler manages WebSocket connections
type Handler struct {
	host    *discovery.Host
	targets *target.Manager
	metrics *monitoring.Metrics
	logger  *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(host *discovery.Host, targets *target.Manager, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	return &Handler{
		host:    host,
		targets: targets,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		id:      uuid.New().String(),
		conn:    conn,
		exec:    exec.NewSerial(),
		handler: h,
	}
	if h.metrics != nil {
		h.metrics.IncWSConnections()
	}
	h.logger.Info("websocket client connected", zap.String("client_id", cl.id))

	defer cl.teardown()

	cl.send(map[string]interface{}{
		"type":      "system",
		"client_id": cl.id,
		"message":   "connected to inspectos backend",
	})

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read error",
					zap.String("client_id", cl.id),
					zap.Error(err),
				)
			}
			return
		}
		if h.metrics != nil {
			h.metrics.RecordWSMessage("in", msg.Type)
		}

		switch msg.Type {
		case "subscribe":
			cl.subscribe()
		case "ping":
			cl.send(map[string]interface{}{"type": "pong"})
		default:
			cl.send(map[string]interface{}{
				"type":  "error",
				"error": "unknown message type: " + msg.Type,
			})
		}
	}
}

// client is one WebSocket subscriber. Listener callbacks run on its serial
// executor, so socket writes never race.
type client struct {
	id      string
	conn    *websocket.Conn
	exec    *exec.Serial
	handler *Handler

	mu         sync.Mutex
	subscribed bool
	closed     bool
}

// subscribe registers the client for transition edges. The discovery host
// replays the current inspectable set on registration; duplicate subscribe
// messages are no-ops so the replay happens once.
func (c *client) subscribe() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subscribed || c.closed {
		return
	}
	c.subscribed = true
	c.handler.host.AddListener(c, c.exec)
	c.handler.targets.AddListener(c, c.exec)
}

// teardown unregisters listeners and closes the socket. Safe to call once
// per connection; the read loop owns it.
func (c *client) teardown() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	subscribed := c.subscribed
	c.mu.Unlock()

	if subscribed {
		c.handler.host.RemoveListener(c)
		c.handler.targets.RemoveListener(c)
	}
	c.exec.Stop()
	c.conn.Close()
	if c.handler.metrics != nil {
		c.handler.metrics.DecWSConnections()
	}
	c.handler.logger.Info("websocket client disconnected", zap.String("client_id", c.id))
}

// OnProcessConnected implements discovery.Listener
func (c *client) OnProcessConnected(desc types.ProcessDescriptor) {
	c.push(types.TransitionEvent{
		Type:       types.EventProcessConnected,
		Descriptor: &desc,
		Timestamp:  time.Now().Unix(),
	})
}

// OnProcessDisconnected implements discovery.Listener
func (c *client) OnProcessDisconnected(desc types.ProcessDescriptor) {
	c.push(types.TransitionEvent{
		Type:       types.EventProcessDisconnected,
		Descriptor: &desc,
		Timestamp:  time.Now().Unix(),
	})
}

// OnTargetAttached implements target.Listener
func (c *client) OnTargetAttached(info types.TargetInfo) {
	c.push(types.TransitionEvent{
		Type:      types.EventTargetAttached,
		Target:    &info,
		Timestamp: time.Now().Unix(),
	})
}

// OnTargetFailed implements target.Listener
func (c *client) OnTargetFailed(info types.TargetInfo) {
	c.push(types.TransitionEvent{
		Type:      types.EventTargetFailed,
		Target:    &info,
		Timestamp: time.Now().Unix(),
	})
}

// OnTargetTerminated implements target.Listener
func (c *client) OnTargetTerminated(info types.TargetInfo) {
	c.push(types.TransitionEvent{
		Type:      types.EventTargetTerminated,
		Target:    &info,
		Timestamp: time.Now().Unix(),
	})
}

// push writes one transition event. Runs on the serial executor.
func (c *client) push(event types.TransitionEvent) {
	if c.exec.Pending() > maxQueuedEvents {
		c.handler.logger.Warn("websocket client too slow, dropping connection",
			zap.String("client_id", c.id),
		)
		c.conn.Close() // unblocks the read loop, which tears down
		return
	}
	if !c.write(event) {
		c.conn.Close()
		return
	}
	if c.handler.metrics != nil {
		c.handler.metrics.RecordWSMessage("out", event.Type)
	}
}

// send writes an ad-hoc message from the read loop through the executor
func (c *client) send(message map[string]interface{}) {
	c.exec.Execute(func() {
		c.write(message)
	})
}

func (c *client) write(v interface{}) bool {
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteJSON(v); err != nil {
		c.handler.logger.Warn("websocket write failed",
			zap.String("client_id", c.id),
			zap.Error(err),
		)
		return false
	}
	return true
}
