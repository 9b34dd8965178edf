package target

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/domain/discovery"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/InspectOS/internal/payload"
	"github.com/GriffinCanCode/InspectOS/internal/shared/exec"
	"github.com/GriffinCanCode/InspectOS/internal/shared/id"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

var (
	// ErrNotFound is returned for unknown target ids
	ErrNotFound = errors.New("target not found")
	// ErrClosed is returned for attach calls after shutdown
	ErrClosed = errors.New("target manager is closed")
	// ErrProcessGone completes attachments whose process ended mid-flow
	ErrProcessGone = errors.New("process ended during attach")
)

// Transport is the attach surface of the daemon client
type Transport interface {
	AttachAgent(ctx context.Context, desc types.ProcessDescriptor, agentPath string) (string, <-chan string, error)
	DetachAgent(ctx context.Context, sessionID string) error
}

// Listener observes target lifecycle edges. Callbacks run on the executor
// chosen at registration, same contract as discovery listeners.
type Listener interface {
	OnTargetAttached(info types.TargetInfo)
	OnTargetFailed(info types.TargetInfo)
	OnTargetTerminated(info types.TargetInfo)
}

type listenerEntry struct {
	listener Listener
	executor exec.Executor
}

// Manager owns the descriptor-to-attachment map and guarantees at most one
// concurrent attach flow per descriptor.
type Manager struct {
	mu          sync.Mutex
	attachments map[types.ProcessDescriptor]*Attachment // Protected by mu
	listeners   []*listenerEntry                        // Protected by mu
	closed      bool                                    // Protected by mu

	transport Transport
	timeout   time.Duration
	logger    *logging.Logger
	metrics   *monitoring.Metrics
	wg        sync.WaitGroup
}

// NewManager creates a target manager over the transport client. The
// timeout bounds each attach flow, not callers waiting on it.
func NewManager(transport Transport, timeout time.Duration, logger *logging.Logger) *Manager {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Manager{
		attachments: make(map[types.ProcessDescriptor]*Attachment),
		transport:   transport,
		timeout:     timeout,
		logger:      logger,
	}
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// AddListener registers a target lifecycle listener
func (m *Manager) AddListener(listener Listener, executor exec.Executor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, &listenerEntry{listener: listener, executor: executor})
}

// RemoveListener unregisters a listener
func (m *Manager) RemoveListener(listener Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, entry := range m.listeners {
		if entry.listener == listener {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// Attach starts or joins the attach flow for desc and waits for it under
// the caller's context. Satisfies the discovery host's Attacher interface.
func (m *Manager) Attach(ctx context.Context, desc types.ProcessDescriptor, launch *discovery.LaunchedProcess) (types.TargetInfo, error) {
	attachment, err := m.Start(desc, launch)
	if err != nil {
		return types.TargetInfo{}, err
	}
	return attachment.Wait(ctx)
}

// Start returns the memoized attachment for desc, creating it and spawning
// the flow if none exists. Racing callers observe the same attachment; a
// failed one stays in place until evicted, so retries see the same error.
func (m *Manager) Start(desc types.ProcessDescriptor, launch *discovery.LaunchedProcess) (*Attachment, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}
	if existing, ok := m.attachments[desc]; ok {
		m.mu.Unlock()
		return existing, nil
	}

	flowCtx, cancel := context.WithTimeout(context.Background(), m.timeout)
	attachment := &Attachment{
		id:        string(id.NewTargetID()),
		desc:      desc,
		payload:   launch.Info.Payload,
		started:   time.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
		watchStop: make(chan struct{}),
	}
	m.attachments[desc] = attachment
	m.wg.Add(1)
	m.mu.Unlock()

	m.logger.Info("attach flow started",
		zap.String("target_id", attachment.id),
		zap.String("descriptor", desc.String()),
	)
	go m.run(flowCtx, attachment, launch.Copier)
	return attachment, nil
}

// run executes one attach flow: copy the payload, inject the agent, watch
// the session. Runs off every lock.
func (m *Manager) run(ctx context.Context, a *Attachment, copier payload.Copier) {
	defer m.wg.Done()
	defer a.cancel()

	devicePath, err := copier.Copy(ctx, a.desc.StreamID)
	if err != nil {
		m.finish(a, nil, nil, fmt.Errorf("payload copy failed: %w", err))
		return
	}

	sessionID, terminated, err := m.transport.AttachAgent(ctx, a.desc, devicePath)
	if err != nil {
		m.finish(a, nil, nil, err)
		return
	}

	target := &Target{
		ID:         a.id,
		Descriptor: a.desc,
		SessionID:  sessionID,
		DevicePath: devicePath,
		Payload:    a.payload,
		AttachedAt: time.Now(),
	}
	m.finish(a, target, terminated, nil)
}

// finish publishes the flow outcome. A flow landing after its entry was
// evicted completes as failed and detaches the orphaned session.
func (m *Manager) finish(a *Attachment, target *Target, terminated <-chan string, err error) {
	duration := time.Since(a.started)

	m.mu.Lock()
	current, present := m.attachments[a.desc]
	evicted := !present || current != a

	if evicted {
		m.mu.Unlock()
		a.complete(nil, ErrProcessGone)
		if target != nil {
			m.detachSession(target.SessionID)
		}
		return
	}

	if err != nil {
		a.complete(nil, err)
		m.record(false, duration)
		m.notifyFailed(a.Info())
		m.mu.Unlock()
		m.logger.Warn("attach flow failed",
			zap.String("target_id", a.id),
			zap.String("descriptor", a.desc.String()),
			zap.Error(err),
		)
		return
	}

	a.complete(target, nil)
	m.record(true, duration)
	m.notifyAttached(target.Info(types.TargetAttached))
	m.updateGauge()
	m.mu.Unlock()

	m.logger.Info("target attached",
		zap.String("target_id", target.ID),
		zap.String("session_id", target.SessionID),
		zap.Duration("duration", duration),
	)

	m.wg.Add(1)
	go m.watch(a, target, terminated)
}

// watch waits for the session to terminate on its own. Teardown initiated
// by the manager closes watchStop instead, so detaches never double-notify.
func (m *Manager) watch(a *Attachment, target *Target, terminated <-chan string) {
	defer m.wg.Done()

	select {
	case reason, ok := <-terminated:
		if !ok {
			reason = "session closed"
		}
		m.mu.Lock()
		m.evictLocked(a)
		fired := m.terminateLocked(a, target, reason)
		m.mu.Unlock()
		if fired {
			m.logger.Info("target terminated",
				zap.String("target_id", target.ID),
				zap.String("reason", reason),
			)
		}
	case <-a.watchStop:
	}
}

// HandleStreamConnected implements the transport event handler; nothing to
// tear down on a new stream.
func (m *Manager) HandleStreamConnected(types.Stream) {}

// HandleProcessStarted implements the transport event handler; attaches
// only start on demand.
func (m *Manager) HandleProcessStarted(types.ProcessDescriptor) {}

// HandleProcessEnded tears down the attachment for an ended process:
// cancels an in-flight flow, detaches a live session with one terminated
// edge, or drops a failed entry.
func (m *Manager) HandleProcessEnded(desc types.ProcessDescriptor) {
	m.Evict(desc)
}

// HandleStreamDead tears down every attachment on the dead stream
func (m *Manager) HandleStreamDead(streamID int64) {
	m.mu.Lock()
	var victims []*Attachment
	for desc, a := range m.attachments {
		if desc.StreamID == streamID {
			victims = append(victims, a)
		}
	}
	m.mu.Unlock()

	for _, a := range victims {
		m.Evict(a.desc)
	}
}

// Evict removes the attachment for desc, tearing down whatever state it is
// in. Returns false when no attachment exists.
func (m *Manager) Evict(desc types.ProcessDescriptor) bool {
	m.mu.Lock()
	a, ok := m.attachments[desc]
	if !ok {
		m.mu.Unlock()
		return false
	}
	m.teardownLocked(a, "process ended")
	m.mu.Unlock()
	return true
}

// Dispose tears down a target by id, whatever state it is in
func (m *Manager) Dispose(targetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.attachments {
		if a.id == targetID {
			m.teardownLocked(a, "detached by operator")
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, targetID)
}

// teardownLocked evicts one attachment and unwinds its state. Must hold
// lock; session detach runs on its own goroutine.
func (m *Manager) teardownLocked(a *Attachment, reason string) {
	m.evictLocked(a)

	select {
	case <-a.done:
		target, err := a.Result()
		if err != nil {
			return // failed entry, nothing to unwind
		}
		a.stopWatch()
		m.detachSessionAsync(target.SessionID)
		m.terminateLocked(a, target, reason)
	default:
		a.cancel() // in-flight flow lands on the evicted path
	}
}

// evictLocked removes the entry and refreshes the gauge. Must hold lock.
func (m *Manager) evictLocked(a *Attachment) {
	if current, ok := m.attachments[a.desc]; ok && current == a {
		delete(m.attachments, a.desc)
		m.updateGauge()
	}
}

// terminateLocked emits the terminated edge at most once per target. Must
// hold lock.
func (m *Manager) terminateLocked(a *Attachment, target *Target, reason string) bool {
	fired := false
	a.terminateOnce.Do(func() {
		fired = true
		info := target.Info(types.TargetTerminated)
		info.Error = reason
		for _, entry := range m.listeners {
			e := entry
			e.executor.Execute(func() {
				e.listener.OnTargetTerminated(info)
			})
		}
	})
	return fired
}

// Targets returns all attachments sorted by id
func (m *Manager) Targets() []types.TargetInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]types.TargetInfo, 0, len(m.attachments))
	for _, a := range m.attachments {
		out = append(out, a.Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the attachment with the given target id
func (m *Manager) Get(targetID string) (types.TargetInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.attachments {
		if a.id == targetID {
			return a.Info(), true
		}
	}
	return types.TargetInfo{}, false
}

// Stats returns attachment counts by state
func (m *Manager) Stats() types.TargetStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stats types.TargetStats
	for _, a := range m.attachments {
		switch a.Info().State {
		case types.TargetPending:
			stats.Pending++
		case types.TargetAttached:
			stats.Attached++
		case types.TargetFailed:
			stats.Failed++
		}
	}
	return stats
}

// Shutdown tears down every attachment and waits for flow goroutines
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	victims := make([]*Attachment, 0, len(m.attachments))
	for _, a := range m.attachments {
		victims = append(victims, a)
	}
	for _, a := range victims {
		m.teardownLocked(a, "backend shutting down")
	}
	m.mu.Unlock()

	m.wg.Wait()
}

// notifyAttached dispatches an attached edge to all listeners (must hold lock)
func (m *Manager) notifyAttached(info types.TargetInfo) {
	for _, entry := range m.listeners {
		e := entry
		e.executor.Execute(func() {
			e.listener.OnTargetAttached(info)
		})
	}
}

// notifyFailed dispatches a failed edge to all listeners (must hold lock)
func (m *Manager) notifyFailed(info types.TargetInfo) {
	for _, entry := range m.listeners {
		e := entry
		e.executor.Execute(func() {
			e.listener.OnTargetFailed(info)
		})
	}
}

// updateGauge pushes the attached count to metrics (must hold lock)
func (m *Manager) updateGauge() {
	if m.metrics == nil {
		return
	}
	attached := 0
	for _, a := range m.attachments {
		select {
		case <-a.done:
			if a.err == nil {
				attached++
			}
		default:
		}
	}
	m.metrics.SetTargetsActive(attached)
}

// record reports one flow outcome to metrics
func (m *Manager) record(success bool, duration time.Duration) {
	if m.metrics != nil {
		m.metrics.RecordAttach(success, duration)
	}
}

// detachSessionAsync detaches off the lock-holding goroutine
func (m *Manager) detachSessionAsync(sessionID string) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.detachSession(sessionID)
	}()
}

// detachSession issues the detach command with its own deadline
func (m *Manager) detachSession(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.transport.DetachAgent(ctx, sessionID); err != nil {
		m.logger.Warn("session detach failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}
