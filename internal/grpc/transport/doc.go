// Package transport provides the gRPC client for the device bridge daemon.
//
// This package wraps the generated protobuf client with connection management,
// circuit breaking, and Go-friendly interfaces. The daemon multiplexes every
// connected device stream; this client is the backend's only path to devices.
//
// Responsibilities:
//   - Event subscription: consume the daemon's lifecycle stream, enrich
//     process events with device identity, and fan out to handlers
//   - Agent control: attach/detach the inspection agent and watch sessions
//     for termination
//   - Payload delivery: stream payload bundles onto devices in chunks
//
// Features:
//   - Automatic resubscription with exponential backoff
//   - Circuit breaker around daemon calls
//   - Context-based timeouts and cancellation
//
// Example Usage:
//
//	client, err := transport.New("localhost:50051", logger, tracer)
//	go client.Subscribe(ctx, host, rules)
//	session, terminated, err := client.AttachAgent(ctx, desc, agentPath)
package transport
