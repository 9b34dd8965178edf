// Package paths provides standardized filesystem paths.
//
// This package defines the canonical on-disk layout for the backend daemon.
// All filesystem operations should use these helpers to ensure consistency.
//
// # Directory Structure
//
//	/var/lib/inspectos/
//	  ├── journal/       (badger event journal)
//	  ├── payloads/      (inspector payload bundles)
//	  └── tmp/           (registry download scratch)
//	/etc/inspectos/
//	  └── manifests/     (launch manifests, hot reloaded)
//
// # Usage
//
//	import "github.com/GriffinCanCode/InspectOS/internal/shared/paths"
//
//	data := paths.NewData(cfg.DataRoot)
//	journalDir := data.JournalDir() // /var/lib/inspectos/journal
//
//	// Reject bundle file names that leave the payload directory
//	err := paths.ValidateBundlePath("network-inspector.zst")
package paths
