// Package target owns attach sessions.
//
// The manager memoizes one Attachment per process descriptor: concurrent
// attach calls join the in-flight flow, and a failed flow stays memoized
// until the entry is evicted, so retries are an explicit caller decision.
// The flow itself (payload copy, agent injection, session watch) runs in
// its own goroutine under the manager's attach deadline; caller contexts
// only bound how long the caller waits.
//
// The manager consumes transport lifecycle events directly: a process end
// or stream death cancels an in-flight flow, detaches a live session, and
// evicts the entry, emitting exactly one terminated edge per attached
// target.
//
// Example Usage:
//
//	manager := target.NewManager(client, cfg.Attach.Timeout, logger).WithMetrics(metrics)
//	manager.AddListener(hub, exec.NewSerial())
//	info, err := manager.Attach(ctx, desc, launch)
package target
