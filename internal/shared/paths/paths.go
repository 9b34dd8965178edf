// Package paths provides standardized filesystem paths for consistent access across the backend.
//
// All on-disk state (journal, payload bundles, manifests) hangs off a single
// data root so deployments relocate with one setting.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default locations
const (
	DefaultDataRoot    = "/var/lib/inspectos"
	DefaultManifestDir = "/etc/inspectos/manifests"
)

// Data root subdirectories
const (
	journalDir  = "journal"
	payloadsDir = "payloads"
	tmpDir      = "tmp"
)

// Data resolves paths under a configured data root
type Data struct {
	Root string
}

// NewData returns path helpers for root; empty root uses the default
func NewData(root string) Data {
	if root == "" {
		root = DefaultDataRoot
	}
	return Data{Root: root}
}

// JournalDir returns the badger journal directory
func (d Data) JournalDir() string {
	return filepath.Join(d.Root, journalDir)
}

// PayloadDir returns the local payload bundle directory
func (d Data) PayloadDir() string {
	return filepath.Join(d.Root, payloadsDir)
}

// TmpDir returns the scratch directory under the data root
func (d Data) TmpDir() string {
	return filepath.Join(d.Root, tmpDir)
}

// StandardDirectories returns all directories that should exist under the root
func (d Data) StandardDirectories() []string {
	return []string{
		d.JournalDir(),
		d.PayloadDir(),
		d.TmpDir(),
	}
}

// ValidateBundlePath checks that a bundle file name stays inside the
// payload directory (no traversal, no absolute paths).
func ValidateBundlePath(name string) error {
	if name == "" {
		return fmt.Errorf("bundle name cannot be empty")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("bundle name cannot be an absolute path")
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("bundle name cannot escape the payload directory")
	}
	return nil
}

