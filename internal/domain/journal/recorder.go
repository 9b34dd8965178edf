package journal

import (
	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

// Recorder journals discovery and target transitions. It satisfies both
// listener interfaces and is registered with a serial executor, so writes
// happen in edge order without blocking dispatchers.
type Recorder struct {
	store   *Store
	metrics *monitoring.Metrics
	logger  *logging.Logger
}

// NewRecorder creates a journal recorder over the store
func NewRecorder(store *Store, metrics *monitoring.Metrics, logger *logging.Logger) *Recorder {
	return &Recorder{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// OnProcessConnected journals an inspectable-set join
func (r *Recorder) OnProcessConnected(desc types.ProcessDescriptor) {
	r.append(types.JournalEntry{
		Type:       types.EventProcessConnected,
		Descriptor: &desc,
	})
}

// OnProcessDisconnected journals an inspectable-set leave
func (r *Recorder) OnProcessDisconnected(desc types.ProcessDescriptor) {
	r.append(types.JournalEntry{
		Type:       types.EventProcessDisconnected,
		Descriptor: &desc,
	})
}

// OnTargetAttached journals a successful attach
func (r *Recorder) OnTargetAttached(info types.TargetInfo) {
	r.append(types.JournalEntry{
		Type:   types.EventTargetAttached,
		Target: &info,
	})
}

// OnTargetFailed journals a failed attach flow
func (r *Recorder) OnTargetFailed(info types.TargetInfo) {
	r.append(types.JournalEntry{
		Type:   types.EventTargetFailed,
		Target: &info,
		Detail: info.Error,
	})
}

// OnTargetTerminated journals a session end
func (r *Recorder) OnTargetTerminated(info types.TargetInfo) {
	r.append(types.JournalEntry{
		Type:   types.EventTargetTerminated,
		Target: &info,
		Detail: info.Error,
	})
}

func (r *Recorder) append(entry types.JournalEntry) {
	if _, err := r.store.Append(entry); err != nil {
		if r.metrics != nil {
			r.metrics.IncJournalErrors()
		}
		r.logger.Warn("journal write failed",
			zap.String("type", entry.Type),
			zap.Error(err),
		)
		return
	}
	if r.metrics != nil {
		r.metrics.IncJournalWrites()
	}
}
