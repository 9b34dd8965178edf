package manifest

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/domain/discovery"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/payload"
	"github.com/GriffinCanCode/InspectOS/internal/shared/id"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

// Registrar is the discovery surface the engine drives. The discovery host
// satisfies this.
type Registrar interface {
	AddLaunched(launch *discovery.LaunchedProcess) error
	RemoveLaunched(key types.LaunchKey) bool
}

// CopierSource mints delivery capabilities from payload references
type CopierSource interface {
	CopierFor(name, version string) payload.Copier
}

// Stats describes the current rule set
type Stats struct {
	Exact    int `json:"exact"`
	Patterns int `json:"patterns"`
	Derived  int `json:"derived"`
}

// Engine syncs manifest entries into launch registrations. Exact entries
// register their key at sync time. Pattern entries watch raw transport
// process events and register an exact key per matching live process, so
// the discovery host only ever sees exact identities. Derived registrations
// survive process restarts and are dropped when no pattern covers them
// anymore.
type Engine struct {
	mu       sync.Mutex
	exact    map[types.LaunchKey]Entry            // Protected by mu
	patterns []Entry                              // Protected by mu
	derived  map[types.LaunchKey]Entry            // Protected by mu
	live     map[types.ProcessDescriptor]struct{} // Protected by mu

	registrar Registrar
	copiers   CopierSource
	logger    *logging.Logger
}

// NewEngine creates a rule engine over the registrar
func NewEngine(registrar Registrar, copiers CopierSource, logger *logging.Logger) *Engine {
	return &Engine{
		exact:     make(map[types.LaunchKey]Entry),
		derived:   make(map[types.LaunchKey]Entry),
		live:      make(map[types.ProcessDescriptor]struct{}),
		registrar: registrar,
		copiers:   copiers,
		logger:    logger,
	}
}

// Sync replaces the rule set with the given entries. Registrations whose
// entry is unchanged are left alone; dropped entries unregister, changed
// ones re-register in place, and new patterns are matched against processes
// that are already live.
func (e *Engine) Sync(entries []Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()

	exact := make(map[types.LaunchKey]Entry)
	var patterns []Entry
	for _, entry := range entries {
		if entry.IsPattern() {
			patterns = append(patterns, entry)
			continue
		}
		exact[entry.LaunchKey()] = entry
	}
	e.patterns = patterns

	for key := range e.exact {
		if _, ok := exact[key]; !ok {
			e.registrar.RemoveLaunched(key)
			delete(e.exact, key)
		}
	}
	for key, entry := range exact {
		if old, ok := e.exact[key]; ok && old == entry {
			continue
		}
		if err := e.register(entry, key); err != nil {
			e.logger.Warn("manifest registration failed",
				zap.String("key", key.String()),
				zap.Error(err),
			)
			continue
		}
		e.exact[key] = entry
	}

	// Re-home derived registrations under the new pattern set. A key no
	// pattern covers anymore unregisters, unless an exact entry owns it now.
	for key, src := range e.derived {
		match, ok := e.firstPattern(key)
		if !ok {
			delete(e.derived, key)
			if _, owned := e.exact[key]; !owned {
				e.registrar.RemoveLaunched(key)
			}
			continue
		}
		if match == src {
			continue
		}
		if err := e.register(match, key); err != nil {
			e.logger.Warn("manifest re-registration failed",
				zap.String("key", key.String()),
				zap.Error(err),
			)
			continue
		}
		e.derived[key] = match
	}

	for desc := range e.live {
		e.matchLocked(desc)
	}

	e.logger.Info("manifests synced",
		zap.Int("exact", len(e.exact)),
		zap.Int("patterns", len(e.patterns)),
		zap.Int("derived", len(e.derived)),
	)
}

// Stats returns rule set counts
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		Exact:    len(e.exact),
		Patterns: len(e.patterns),
		Derived:  len(e.derived),
	}
}

// HandleStreamConnected implements the transport event handler; streams
// carry no process identity to match.
func (e *Engine) HandleStreamConnected(types.Stream) {}

// HandleStreamDead forgets live processes on the dead stream. Their derived
// registrations stay so a reconnect promotes them again immediately.
func (e *Engine) HandleStreamDead(streamID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for desc := range e.live {
		if desc.StreamID == streamID {
			delete(e.live, desc)
		}
	}
}

// HandleProcessStarted matches a new live process against the pattern rules
func (e *Engine) HandleProcessStarted(desc types.ProcessDescriptor) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.live[desc] = struct{}{}
	e.matchLocked(desc)
}

// HandleProcessEnded forgets a live process. Its derived registration stays
// so a restart is inspectable without waiting for a rematch.
func (e *Engine) HandleProcessEnded(desc types.ProcessDescriptor) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.live, desc)
}

// matchLocked registers a derived key for desc if a pattern covers it and
// nothing owns the key yet. Must hold lock.
func (e *Engine) matchLocked(desc types.ProcessDescriptor) {
	key := desc.LaunchKey()
	if _, ok := e.exact[key]; ok {
		return
	}
	if _, ok := e.derived[key]; ok {
		return
	}

	for _, p := range e.patterns {
		if !p.Matches(desc) {
			continue
		}
		if err := e.register(p, key); err != nil {
			e.logger.Warn("pattern registration failed",
				zap.String("pattern", p.Process),
				zap.String("key", key.String()),
				zap.Error(err),
			)
			return
		}
		e.derived[key] = p
		e.logger.Info("pattern matched live process",
			zap.String("pattern", p.Process),
			zap.String("key", key.String()),
		)
		return
	}
}

// firstPattern returns the first pattern covering key, in manifest order.
// Must hold lock.
func (e *Engine) firstPattern(key types.LaunchKey) (Entry, bool) {
	for _, p := range e.patterns {
		if p.MatchesKey(key) {
			return p, true
		}
	}
	return Entry{}, false
}

// register pushes one registration for key built from entry. Must hold lock.
func (e *Engine) register(entry Entry, key types.LaunchKey) error {
	name, version := payload.ParseKey(entry.Payload)
	return e.registrar.AddLaunched(&discovery.LaunchedProcess{
		Info: types.LaunchInfo{
			ID:           string(id.NewLaunchID()),
			Manufacturer: key.Manufacturer,
			Model:        key.Model,
			Process:      key.Process,
			Payload:      entry.Payload,
			Source:       "manifest",
			RegisteredAt: time.Now(),
		},
		Copier: e.copiers.CopierFor(name, version),
	})
}
