package types

// LaunchRequest registers a launch intent
type LaunchRequest struct {
	Manufacturer string `json:"manufacturer" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Process      string `json:"process" binding:"required"`
	Payload      string `json:"payload,omitempty"`
}

// AttachRequest attaches to an inspectable process
type AttachRequest struct {
	Manufacturer string `json:"manufacturer" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Process      string `json:"process" binding:"required"`
	PID          int32  `json:"pid,omitempty"`
	StreamID     int64  `json:"stream_id,omitempty"`
}

// WSMessage represents an inbound WebSocket message
type WSMessage struct {
	Type    string `json:"type"`
	Process string `json:"process,omitempty"`
}

// Transition event types pushed over the WebSocket stream.
const (
	EventProcessConnected    = "process_connected"
	EventProcessDisconnected = "process_disconnected"
	EventTargetAttached      = "target_attached"
	EventTargetFailed        = "target_failed"
	EventTargetTerminated    = "target_terminated"
)

// TransitionEvent is the outbound WebSocket event payload.
type TransitionEvent struct {
	Type       string             `json:"type"`
	Descriptor *ProcessDescriptor `json:"descriptor,omitempty"`
	Target     *TargetInfo        `json:"target,omitempty"`
	Timestamp  int64              `json:"timestamp"`
}
