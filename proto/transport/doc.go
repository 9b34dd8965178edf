// Package transport provides generated Protocol Buffer types and gRPC clients for the device bridge daemon.
//
// Generated from: proto/transport/transport.proto
//
// This package contains:
//   - TransportServiceClient: gRPC client for daemon operations
//   - Stream and process lifecycle event types
//   - Agent attach/detach request/response types
//   - Session watch event types
//   - Payload push streaming types
//
// Services:
//   - StreamEvents: Subscribe to stream/process lifecycle events
//   - AttachAgent: Inject the inspection agent into a process
//   - DetachAgent: Tear down an agent session
//   - WatchSession: Stream termination events for one session
//   - PushPayload: Copy payload bundles onto a device
//
// Usage:
//
//	This package is typically wrapped by internal/grpc/transport
//	for higher-level Go interfaces.
//
// Note: This is generated code. Do not edit manually.
// Regenerate with: make proto
package transport
