package types

import "time"

// JournalEntry is one recorded discovery or target transition. Type uses
// the same vocabulary as the WebSocket transition events.
type JournalEntry struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Time       time.Time          `json:"time"`
	Descriptor *ProcessDescriptor `json:"descriptor,omitempty"`
	Target     *TargetInfo        `json:"target,omitempty"`
	Detail     string             `json:"detail,omitempty"`
}
