// Package ws streams discovery and target transitions to WebSocket
// clients.
//
// Each connection owns a serial executor and registers as a discovery and
// target listener with it, so a client sees the inspectable-set replay
// followed by edges in transition order, and all writes to the socket
// happen on one goroutine. Clients that stop draining are disconnected
// once their queue backs up.
package ws
