// Package exec provides the callback executors used by discovery and target
// listener registration.
//
// Listener notification must never run on the goroutine holding domain
// locks. Callers pick the execution context at registration time:
//   - Serial: ordered, single worker, unbounded queue (WebSocket clients,
//     journal recorder)
//   - Direct: inline, for tests and reentrancy-safe recorders
//
// Example Usage:
//
//	ex := exec.NewSerial()
//	defer ex.Stop()
//	host.AddListener(listener, ex)
package exec
