package payload

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
)

// Pusher copies content onto the device backing a stream. The transport
// client satisfies this.
type Pusher interface {
	PushPayload(ctx context.Context, streamID int64, devicePath, digest string, size int64, r io.Reader) (int64, error)
}

// Copier delivers one payload to a device and reports where it landed.
// Launch registrations carry a Copier so the attach flow never touches
// the store directly.
type Copier interface {
	Copy(ctx context.Context, streamID int64) (devicePath string, err error)
}

type bundleCopier struct {
	bundle *Bundle
	store  *Store
	pusher Pusher
	logger *logging.Logger
}

// NewCopier binds a resolved bundle to the transport push path
func NewCopier(bundle *Bundle, store *Store, pusher Pusher, logger *logging.Logger) Copier {
	return &bundleCopier{
		bundle: bundle,
		store:  store,
		pusher: pusher,
		logger: logger,
	}
}

func (c *bundleCopier) Copy(ctx context.Context, streamID int64) (string, error) {
	r, err := c.store.Open(c.bundle.Name, c.bundle.Version)
	if err != nil {
		return "", err
	}
	defer r.Close()

	devicePath := c.bundle.DevicePath()
	written, err := c.pusher.PushPayload(ctx, streamID, devicePath, c.bundle.Digest, c.bundle.Size, r)
	if err != nil {
		return "", fmt.Errorf("payload push failed: %w", err)
	}
	if written != c.bundle.Size {
		return "", fmt.Errorf("payload push incomplete: wrote %d of %d bytes", written, c.bundle.Size)
	}

	c.logger.Info("payload copied to device",
		zap.Int64("stream_id", streamID),
		zap.String("bundle", c.bundle.Key()),
		zap.String("device_path", devicePath),
	)
	return devicePath, nil
}

// CopierFor returns a copier that resolves name@version at delivery time.
// Launch registrations hold these so a payload missing from the store only
// fails the attach that needs it, not the registration.
func (r *Resolver) CopierFor(name, version string, pusher Pusher) Copier {
	return &resolvingCopier{
		resolver: r,
		pusher:   pusher,
		name:     name,
		version:  version,
	}
}

type resolvingCopier struct {
	resolver *Resolver
	pusher   Pusher
	name     string
	version  string
}

func (c *resolvingCopier) Copy(ctx context.Context, streamID int64) (string, error) {
	bundle, err := c.resolver.Resolve(ctx, c.name, c.version)
	if err != nil {
		return "", err
	}
	return NewCopier(bundle, c.resolver.store, c.pusher, c.resolver.logger).Copy(ctx, streamID)
}

// NopCopier returns a copier that skips delivery and reports the given
// device path. Launches whose payload is already on the device use this.
func NopCopier(devicePath string) Copier {
	return nopCopier(devicePath)
}

type nopCopier string

func (n nopCopier) Copy(ctx context.Context, streamID int64) (string, error) {
	return string(n), nil
}
