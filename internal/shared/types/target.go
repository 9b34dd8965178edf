package types

import "time"

// TargetState represents attach session lifecycle states
type TargetState string

const (
	TargetPending    TargetState = "pending"
	TargetAttached   TargetState = "attached"
	TargetFailed     TargetState = "failed"
	TargetTerminated TargetState = "terminated"
)

// TargetInfo describes an attach session handle.
type TargetInfo struct {
	ID         string            `json:"id"`
	Descriptor ProcessDescriptor `json:"descriptor"`
	State      TargetState       `json:"state"`
	SessionID  string            `json:"session_id,omitempty"`
	Payload    string            `json:"payload,omitempty"`
	Error      string            `json:"error,omitempty"`
	AttachedAt *time.Time        `json:"attached_at,omitempty"`
}
