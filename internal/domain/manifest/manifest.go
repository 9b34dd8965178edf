package manifest

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/GriffinCanCode/InspectOS/internal/payload"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
	"github.com/GriffinCanCode/InspectOS/internal/shared/utils"
)

// Manifest declares processes expected to run with inspection support. One
// file holds one manifest; entries from every file in the manifest directory
// merge into a single rule set.
type Manifest struct {
	Version int     `json:"version" yaml:"version" toml:"version"`
	Entries []Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// Entry is one launch intent. Fields accept doublestar patterns; an entry
// with any pattern field matches live processes as they appear instead of
// registering a key directly. Payload references a bundle by name or
// name@version.
type Entry struct {
	Manufacturer string `json:"manufacturer" yaml:"manufacturer" toml:"manufacturer"`
	Model        string `json:"model" yaml:"model" toml:"model"`
	Process      string `json:"process" yaml:"process" toml:"process"`
	Payload      string `json:"payload" yaml:"payload" toml:"payload"`
}

// IsPattern reports whether the entry needs live-process matching
func (e Entry) IsPattern() bool {
	return hasMeta(e.Manufacturer) || hasMeta(e.Model) || hasMeta(e.Process)
}

// LaunchKey returns the registration key for an exact entry
func (e Entry) LaunchKey() types.LaunchKey {
	return types.LaunchKey{
		Manufacturer: e.Manufacturer,
		Model:        e.Model,
		Process:      e.Process,
	}
}

// MatchesKey reports whether the entry covers an identity triple. A literal
// field matches by equality, a pattern field by doublestar semantics.
func (e Entry) MatchesKey(key types.LaunchKey) bool {
	return fieldMatch(e.Manufacturer, key.Manufacturer) &&
		fieldMatch(e.Model, key.Model) &&
		fieldMatch(e.Process, key.Process)
}

// Matches reports whether a live process satisfies the entry
func (e Entry) Matches(desc types.ProcessDescriptor) bool {
	return e.MatchesKey(desc.LaunchKey())
}

// Validate checks field content. Pattern fields must compile, literal
// fields follow the same rules as API launch registrations, and the
// payload reference is required since a manifest cannot supply a copier
// any other way.
func (e Entry) Validate() error {
	if err := validateField(e.Manufacturer, "manufacturer"); err != nil {
		return err
	}
	if err := validateField(e.Model, "model"); err != nil {
		return err
	}

	if hasMeta(e.Process) {
		if !doublestar.ValidatePattern(e.Process) {
			return fmt.Errorf("process pattern %q is invalid", e.Process)
		}
	} else if err := utils.ValidateProcessName(e.Process, true); err != nil {
		return err
	}

	name, version := payload.ParseKey(e.Payload)
	if err := utils.ValidateBundleName(name, true); err != nil {
		return err
	}
	if version != "" {
		if err := utils.ValidateBundleName(version, true); err != nil {
			return fmt.Errorf("payload version: %w", err)
		}
	}
	return nil
}

func validateField(value, field string) error {
	if hasMeta(value) {
		if !doublestar.ValidatePattern(value) {
			return fmt.Errorf("%s pattern %q is invalid", field, value)
		}
		return nil
	}
	return utils.ValidateDeviceField(value, field, true)
}

func fieldMatch(pattern, value string) bool {
	if !hasMeta(pattern) {
		return pattern == value
	}
	ok, err := doublestar.Match(pattern, value)
	return err == nil && ok
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, `*?[{\`)
}
