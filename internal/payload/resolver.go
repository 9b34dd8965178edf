package payload

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/monitoring"
)

// Resolver finds a bundle locally or pulls it from the registry. A nil
// registry limits resolution to the local store.
type Resolver struct {
	store    *Store
	registry *Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewResolver creates a resolver over the store and optional registry
func NewResolver(store *Store, registry *Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Resolver {
	return &Resolver{
		store:    store,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Resolve returns the bundle for name@version. An empty version means the
// highest local version, or the registry's latest when nothing is local.
func (r *Resolver) Resolve(ctx context.Context, name, version string) (*Bundle, error) {
	if version != "" {
		if bundle, ok := r.store.Get(name, version); ok {
			r.record("store", "hit")
			return bundle, nil
		}
	} else {
		if bundle, ok := r.store.Latest(name); ok {
			r.record("store", "hit")
			return bundle, nil
		}
	}
	r.record("store", "miss")

	if r.registry == nil {
		return nil, fmt.Errorf("payload %s not in store and no registry configured", key(name, version))
	}

	result, err := r.registry.Fetch(ctx, name, version)
	if err != nil {
		r.record("registry", "error")
		return nil, err
	}
	defer result.Body.Close()

	bundle, err := r.store.Put(name, result.Version, result.Format, result.Body)
	if err != nil {
		r.record("registry", "error")
		return nil, fmt.Errorf("failed to store fetched payload: %w", err)
	}

	// The store digests decompressed content; a mismatch against the
	// registry's advertised digest means a corrupt or tampered transfer.
	if result.Digest != "" && result.Digest != bundle.Digest {
		if rmErr := r.store.Remove(bundle.Name, bundle.Version); rmErr != nil {
			r.logger.Warn("failed to remove corrupt bundle", zap.Error(rmErr))
		}
		r.record("registry", "digest_mismatch")
		return nil, fmt.Errorf("payload %s digest mismatch: got %s, registry advertised %s",
			bundle.Key(), bundle.Digest, result.Digest)
	}

	r.record("registry", "ok")
	r.logger.Info("payload resolved from registry",
		zap.String("name", name),
		zap.String("version", bundle.Version),
	)
	return bundle, nil
}

func (r *Resolver) record(source, status string) {
	if r.metrics != nil {
		r.metrics.RecordPayloadFetch(source, status)
	}
}

func key(name, version string) string {
	if version == "" {
		return name
	}
	return name + "@" + version
}
