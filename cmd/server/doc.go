// Package main is the entry point for the InspectOS backend server.
//
// The server joins stream-connected processes against launch registrations,
// drives agent attach flows through the transport daemon, and exposes the
// result over a REST/WebSocket API.
//
// Architecture:
//
//	Clients (REST/WS) → Backend → Transport Daemon (gRPC) → Devices
//
// The server provides:
//   - Process and stream discovery
//   - Launch registrations (API and manifest driven)
//   - Memoized agent attach with payload delivery
//   - Event journal and lifecycle streaming
//   - Rate limiting and bearer auth on write endpoints
//
// Configuration is environment driven (12-factor); see
// internal/infrastructure/config for the variable list.
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
