package discovery

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/InspectOS/internal/shared/exec"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

// Host tracks device streams, live processes, and launch registrations, and
// derives the inspectable set: live processes whose identity triple matches
// a registered launch. Listeners see membership edges only; state never
// changes without a matching notification, and duplicates never re-notify.
type Host struct {
	mu          sync.Mutex
	streams     map[int64]types.Stream                     // Protected by mu
	live        map[types.ProcessDescriptor]struct{}       // Protected by mu
	launched    map[types.LaunchKey]*LaunchedProcess       // Protected by mu
	inspectable map[types.ProcessDescriptor]*LaunchedProcess // Protected by mu
	listeners   []*listenerEntry                           // Protected by mu

	attacher Attacher
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

type listenerEntry struct {
	listener Listener
	executor exec.Executor
}

// NewHost creates a discovery host that delegates attach flows to attacher
func NewHost(attacher Attacher, logger *logging.Logger) *Host {
	return &Host{
		streams:     make(map[int64]types.Stream),
		live:        make(map[types.ProcessDescriptor]struct{}),
		launched:    make(map[types.LaunchKey]*LaunchedProcess),
		inspectable: make(map[types.ProcessDescriptor]*LaunchedProcess),
		attacher:    attacher,
		logger:      logger,
	}
}

// WithMetrics adds metrics tracking to the host
func (h *Host) WithMetrics(metrics *monitoring.Metrics) *Host {
	h.metrics = metrics
	return h
}

// AddListener registers a listener and replays the current inspectable set
// to it, exactly one connected edge per member. The replay is dispatched
// under the same lock that guards transitions, so the listener can never
// miss an edge or see one twice.
func (h *Host) AddListener(listener Listener, executor exec.Executor) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := &listenerEntry{listener: listener, executor: executor}
	h.listeners = append(h.listeners, entry)

	for desc := range h.inspectable {
		d := desc
		entry.executor.Execute(func() {
			entry.listener.OnProcessConnected(d)
		})
	}
}

// RemoveListener unregisters a listener. Tasks already dispatched to its
// executor still run.
func (h *Host) RemoveListener(listener Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, entry := range h.listeners {
		if entry.listener == listener {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// AddLaunched registers a launch intent. Live processes matching the key are
// promoted into the inspectable set; processes that are already inspectable
// keep their membership and adopt the new registration without re-notifying.
func (h *Host) AddLaunched(launch *LaunchedProcess) error {
	if launch == nil || launch.Copier == nil {
		return fmt.Errorf("launch registration requires a payload copier")
	}

	key := launch.Key()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.launched[key] = launch

	for desc := range h.live {
		if desc.LaunchKey() != key {
			continue
		}
		if _, already := h.inspectable[desc]; already {
			h.inspectable[desc] = launch
			continue
		}
		h.inspectable[desc] = launch
		h.notifyConnected(desc)
	}

	h.logger.Info("launch registered",
		zap.String("key", key.String()),
		zap.String("launch_id", launch.Info.ID),
	)
	h.updateGauges()
	return nil
}

// RemoveLaunched drops a launch registration. Matching processes stay live
// but leave the inspectable set, with one disconnected edge each; any
// attached target among them is torn down.
func (h *Host) RemoveLaunched(key types.LaunchKey) bool {
	h.mu.Lock()

	if _, ok := h.launched[key]; !ok {
		h.mu.Unlock()
		return false
	}
	delete(h.launched, key)

	var demoted []types.ProcessDescriptor
	for desc := range h.inspectable {
		if desc.LaunchKey() == key {
			delete(h.inspectable, desc)
			h.notifyDisconnected(desc)
			demoted = append(demoted, desc)
		}
	}

	h.logger.Info("launch removed", zap.String("key", key.String()))
	h.updateGauges()
	h.mu.Unlock()

	// Evictions go to the target manager, so never under the host lock.
	for _, desc := range demoted {
		h.attacher.Evict(desc)
	}
	return true
}

// Attach starts or joins the attach flow for an inspectable process. The
// actual flow runs in the target manager; the host only resolves the
// descriptor's launch registration and never holds its lock across the call.
func (h *Host) Attach(ctx context.Context, desc types.ProcessDescriptor) (types.TargetInfo, error) {
	h.mu.Lock()
	launch, ok := h.inspectable[desc]
	h.mu.Unlock()

	if !ok {
		return types.TargetInfo{}, fmt.Errorf("%w: %s", ErrNotInspectable, desc.String())
	}
	return h.attacher.Attach(ctx, desc, launch)
}

// HandleStreamConnected records a connected device stream
func (h *Host) HandleStreamConnected(stream types.Stream) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.streams[stream.ID] = stream
	h.logger.Info("stream connected",
		zap.Int64("stream_id", stream.ID),
		zap.String("model", stream.Model),
		zap.String("serial", stream.Serial),
	)
	h.updateGauges()
}

// HandleStreamDead removes a stream and cascades: every live process on it
// ends, and inspectable members among them get a disconnected edge.
func (h *Host) HandleStreamDead(streamID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.streams, streamID)

	for desc := range h.live {
		if desc.StreamID != streamID {
			continue
		}
		delete(h.live, desc)
		if _, ok := h.inspectable[desc]; ok {
			delete(h.inspectable, desc)
			h.notifyDisconnected(desc)
		}
	}

	h.logger.Info("stream dead", zap.Int64("stream_id", streamID))
	h.updateGauges()
}

// HandleProcessStarted records a live process, promoting it when a launch
// registration matches. Duplicate starts are no-ops.
func (h *Host) HandleProcessStarted(desc types.ProcessDescriptor) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.live[desc]; ok {
		return
	}
	h.live[desc] = struct{}{}

	if launch, ok := h.launched[desc.LaunchKey()]; ok {
		h.inspectable[desc] = launch
		h.notifyConnected(desc)
	}
	h.updateGauges()
}

// HandleProcessEnded removes a live process. Inspectable members get exactly
// one disconnected edge; duplicate or unknown ends are no-ops.
func (h *Host) HandleProcessEnded(desc types.ProcessDescriptor) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.live[desc]; !ok {
		return
	}
	delete(h.live, desc)

	if _, ok := h.inspectable[desc]; ok {
		delete(h.inspectable, desc)
		h.notifyDisconnected(desc)
	}
	h.updateGauges()
}

// Streams returns all connected streams sorted by ID
func (h *Host) Streams() []types.Stream {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]types.Stream, 0, len(h.streams))
	for _, s := range h.streams {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Processes returns all live processes sorted by stream then pid
func (h *Host) Processes() []types.ProcessDescriptor {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]types.ProcessDescriptor, 0, len(h.live))
	for desc := range h.live {
		out = append(out, desc)
	}
	sortDescriptors(out)
	return out
}

// Inspectable returns the current inspectable set sorted by stream then pid
func (h *Host) Inspectable() []types.ProcessDescriptor {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]types.ProcessDescriptor, 0, len(h.inspectable))
	for desc := range h.inspectable {
		out = append(out, desc)
	}
	sortDescriptors(out)
	return out
}

// Launches returns all launch registrations sorted by key
func (h *Host) Launches() []types.LaunchInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]types.LaunchInfo, 0, len(h.launched))
	for _, l := range h.launched {
		out = append(out, l.Info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Manufacturer != out[j].Manufacturer {
			return out[i].Manufacturer < out[j].Manufacturer
		}
		if out[i].Model != out[j].Model {
			return out[i].Model < out[j].Model
		}
		return out[i].Process < out[j].Process
	})
	return out
}

// Stats returns discovery statistics
func (h *Host) Stats() types.DiscoveryStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	return types.DiscoveryStats{
		Streams:     len(h.streams),
		Live:        len(h.live),
		Launched:    len(h.launched),
		Inspectable: len(h.inspectable),
		Listeners:   len(h.listeners),
	}
}

// notifyConnected dispatches a connected edge to all listeners (must hold lock)
func (h *Host) notifyConnected(desc types.ProcessDescriptor) {
	for _, entry := range h.listeners {
		e := entry
		e.executor.Execute(func() {
			e.listener.OnProcessConnected(desc)
		})
	}
	h.logger.Info("process inspectable", zap.String("descriptor", desc.String()))
}

// notifyDisconnected dispatches a disconnected edge to all listeners (must hold lock)
func (h *Host) notifyDisconnected(desc types.ProcessDescriptor) {
	for _, entry := range h.listeners {
		e := entry
		e.executor.Execute(func() {
			e.listener.OnProcessDisconnected(desc)
		})
	}
	h.logger.Info("process no longer inspectable", zap.String("descriptor", desc.String()))
}

// updateGauges pushes set sizes to metrics (must hold lock)
func (h *Host) updateGauges() {
	if h.metrics == nil {
		return
	}
	h.metrics.SetStreamsConnected(len(h.streams))
	h.metrics.SetProcessesLive(len(h.live))
	h.metrics.SetProcessesInspectable(len(h.inspectable))
	h.metrics.SetLaunchesRegistered(len(h.launched))
}

func sortDescriptors(descs []types.ProcessDescriptor) {
	sort.Slice(descs, func(i, j int) bool {
		if descs[i].StreamID != descs[j].StreamID {
			return descs[i].StreamID < descs[j].StreamID
		}
		return descs[i].PID < descs[j].PID
	})
}
