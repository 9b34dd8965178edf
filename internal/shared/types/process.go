package types

import (
	"fmt"
	"time"
)

// Stream represents a connected device transport stream.
type Stream struct {
	ID           int64     `json:"id"`
	Manufacturer string    `json:"manufacturer"`
	Model        string    `json:"model"`
	Serial       string    `json:"serial,omitempty"`
	ConnectedAt  time.Time `json:"connected_at"`
}

// ProcessDescriptor identifies a device+process pair. It is a comparable
// value type and is used directly as a map key throughout discovery.
type ProcessDescriptor struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Process      string `json:"process"`
	PID          int32  `json:"pid"`
	StreamID     int64  `json:"stream_id"`
}

// LaunchKey identifies a launch intent: the device+process identity without
// the runtime pid/stream. Live descriptors match launch intents on this key.
type LaunchKey struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Process      string `json:"process"`
}

// LaunchKey projects the descriptor onto its launch identity.
func (d ProcessDescriptor) LaunchKey() LaunchKey {
	return LaunchKey{
		Manufacturer: d.Manufacturer,
		Model:        d.Model,
		Process:      d.Process,
	}
}

func (d ProcessDescriptor) String() string {
	return fmt.Sprintf("%s/%s/%s (pid %d, stream %d)", d.Manufacturer, d.Model, d.Process, d.PID, d.StreamID)
}

func (k LaunchKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Manufacturer, k.Model, k.Process)
}

// LaunchInfo describes a registered launch intent.
type LaunchInfo struct {
	ID           string    `json:"id"`
	Manufacturer string    `json:"manufacturer"`
	Model        string    `json:"model"`
	Process      string    `json:"process"`
	Payload      string    `json:"payload,omitempty"`
	Source       string    `json:"source"` // "api", "manifest", "cli"
	RegisteredAt time.Time `json:"registered_at"`
}
