// Package journal persists discovery and target transitions.
//
// The store is an append-only Badger database keyed by prefixed ULIDs, so
// key order is chronological and Recent is a reverse scan. A Recorder
// bridges the discovery host and target manager into the store; it is
// registered as a listener on its own serial executor, keeping journal
// writes off the transition path.
//
// In-memory mode backs tests; persistent mode runs a value-log GC ticker.
package journal
