// Package discovery derives which processes can be inspected.
//
// The host joins two inputs: live processes reported by the transport
// daemon's event stream, and launch registrations made through the API or
// manifests. A live process whose (manufacturer, model, process) triple
// matches a registration is inspectable.
//
// Invariants:
//   - Membership is idempotent: duplicate starts, ends, and registrations
//     never produce duplicate edges
//   - Listeners see edges only, dispatched in transition order on the
//     executor they registered with
//   - Registration replays the current set as connected edges, exactly one
//     per member
//   - Stream death cascades: every live process on the stream ends
//
// Attach flows resolve the descriptor's launch registration here and then
// delegate to the target manager, never holding the host lock across the
// call.
//
// Example Usage:
//
//	host := discovery.NewHost(targetManager, logger).WithMetrics(metrics)
//	host.AddListener(hub, exec.NewSerial())
//	err := host.AddLaunched(&discovery.LaunchedProcess{Info: info, Copier: copier})
//	target, err := host.Attach(ctx, desc)
package discovery
