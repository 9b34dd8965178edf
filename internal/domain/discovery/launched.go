package discovery

import (
	"context"
	"errors"

	"github.com/GriffinCanCode/InspectOS/internal/payload"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

// ErrNotInspectable is returned by Attach for processes outside the
// inspectable set.
var ErrNotInspectable = errors.New("process is not inspectable")

// LaunchedProcess is a registered launch intent: the identity triple plus
// the copier that delivers its agent payload. A live process becomes
// inspectable when its launch key matches one of these.
type LaunchedProcess struct {
	Info   types.LaunchInfo
	Copier payload.Copier
}

// Key returns the identity triple this registration matches on
func (l *LaunchedProcess) Key() types.LaunchKey {
	return types.LaunchKey{
		Manufacturer: l.Info.Manufacturer,
		Model:        l.Info.Model,
		Process:      l.Info.Process,
	}
}

// Listener observes membership edges of the inspectable set. Callbacks run
// on the executor chosen at registration; a Direct executor runs them on
// the host's dispatching goroutine, so listeners that call back into the
// host must register with a Serial executor.
type Listener interface {
	OnProcessConnected(desc types.ProcessDescriptor)
	OnProcessDisconnected(desc types.ProcessDescriptor)
}

// Attacher starts or joins an attach flow for an inspectable process, and
// tears one down when the process leaves the inspectable set. The target
// manager satisfies this.
type Attacher interface {
	Attach(ctx context.Context, desc types.ProcessDescriptor, launch *LaunchedProcess) (types.TargetInfo, error)
	Evict(desc types.ProcessDescriptor) bool
}
