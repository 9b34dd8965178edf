package target

import (
	"context"
	"sync"
	"time"

	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

// Target is a live attach session handle.
type Target struct {
	ID         string
	Descriptor types.ProcessDescriptor
	SessionID  string
	DevicePath string
	Payload    string
	AttachedAt time.Time
}

// Info returns the API view of the target
func (t *Target) Info(state types.TargetState) types.TargetInfo {
	at := t.AttachedAt
	return types.TargetInfo{
		ID:         t.ID,
		Descriptor: t.Descriptor,
		State:      state,
		SessionID:  t.SessionID,
		Payload:    t.Payload,
		AttachedAt: &at,
	}
}

// Attachment is the memoized future for one attach flow. The result fields
// are written exactly once, before done closes; joiners read them without
// locks after observing the close.
type Attachment struct {
	id      string
	desc    types.ProcessDescriptor
	payload string
	started time.Time
	cancel  context.CancelFunc

	done      chan struct{}
	watchStop chan struct{}

	// Written once before done closes
	target *Target
	err    error

	watchOnce     sync.Once
	terminateOnce sync.Once
}

// stopWatch releases the session watcher without a terminated edge
func (a *Attachment) stopWatch() {
	a.watchOnce.Do(func() { close(a.watchStop) })
}

// ID returns the target handle id assigned at attach start
func (a *Attachment) ID() string { return a.id }

// Descriptor returns the process this attachment belongs to
func (a *Attachment) Descriptor() types.ProcessDescriptor { return a.desc }

// Done closes when the flow completes, successfully or not
func (a *Attachment) Done() <-chan struct{} { return a.done }

// Result returns the outcome. Valid only after Done is closed.
func (a *Attachment) Result() (*Target, error) {
	return a.target, a.err
}

// Wait blocks until the flow completes or the caller's context ends. A
// caller timing out does not cancel the flow; later calls can still join it.
func (a *Attachment) Wait(ctx context.Context) (types.TargetInfo, error) {
	select {
	case <-a.done:
		if a.err != nil {
			return a.Info(), a.err
		}
		return a.Info(), nil
	case <-ctx.Done():
		return a.Info(), ctx.Err()
	}
}

// Info snapshots the attachment state without blocking
func (a *Attachment) Info() types.TargetInfo {
	select {
	case <-a.done:
		if a.err != nil {
			return types.TargetInfo{
				ID:         a.id,
				Descriptor: a.desc,
				State:      types.TargetFailed,
				Payload:    a.payload,
				Error:      a.err.Error(),
			}
		}
		info := a.target.Info(types.TargetAttached)
		return info
	default:
		return types.TargetInfo{
			ID:         a.id,
			Descriptor: a.desc,
			State:      types.TargetPending,
			Payload:    a.payload,
		}
	}
}

// complete publishes the outcome. Must be called exactly once.
func (a *Attachment) complete(target *Target, err error) {
	a.target = target
	a.err = err
	close(a.done)
}
