// Package types provides shared data structures for the InspectOS backend.
//
// This package defines core types used across all backend components,
// ensuring type safety and consistent data structures.
//
// Core Types:
//   - Stream: Connected device transport stream
//   - ProcessDescriptor: Device+process identity (comparable, map-key safe)
//   - LaunchKey: Launch intent identity (device+process name, no pid)
//   - LaunchInfo: Registered launch intent
//   - TargetInfo: Attach session handle view
//
// Request Types:
//   - LaunchRequest, AttachRequest: HTTP API bodies
//   - WSMessage, TransitionEvent: WebSocket communication
//
// State Management:
//   - TargetState: Attach session state enum
//   - DiscoveryStats, TargetStats, JournalStats: Component statistics
//
// Example Usage:
//
//	desc := types.ProcessDescriptor{
//	    Manufacturer: "Google",
//	    Model:        "Pixel 8",
//	    Process:      "com.example.app",
//	    PID:          4021,
//	    StreamID:     1,
//	}
//	key := desc.LaunchKey()
package types
