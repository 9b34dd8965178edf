package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// String length limits
const (
	MaxIDLength          = 128
	MaxNameLength        = 256
	MaxProcessNameLength = 256
	MaxDeviceFieldLength = 128
	MaxBundleNameLength  = 128
	MaxQueryLimit        = 1000
)

// Regular expressions for validation
var (
	// SafeIDPattern allows alphanumeric, hyphens, underscores
	SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	// ProcessNamePattern covers dotted package names with an optional
	// ":remote" style suffix (com.example.app, com.example.app:inspector)
	ProcessNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._$]*(:[a-zA-Z0-9._$]+)?$`)
	// BundleNamePattern allows alphanumeric, dots, hyphens, underscores
	BundleNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if value == "" && !required {
		return nil // Optional field, empty is OK
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	// Check for null bytes (security issue)
	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateID validates an ID field
func ValidateID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !SafeIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, hyphens, and underscores allowed)", fieldName)
	}

	return nil
}

// ValidateProcessName validates a process name field
func ValidateProcessName(name string, required bool) error {
	if err := ValidateString(name, "process", 1, MaxProcessNameLength, required); err != nil {
		return err
	}

	if name != "" && !ProcessNamePattern.MatchString(name) {
		return fmt.Errorf("process contains invalid characters")
	}

	return nil
}

// ValidateDeviceField validates a manufacturer or model field.
// Device-reported strings are free-form, so only length and control
// characters are checked.
func ValidateDeviceField(value, fieldName string, required bool) error {
	if err := ValidateString(value, fieldName, 1, MaxDeviceFieldLength, required); err != nil {
		return err
	}

	for _, r := range value {
		if r < 0x20 {
			return fmt.Errorf("%s contains control characters", fieldName)
		}
	}

	return nil
}

// ValidateBundleName validates a payload bundle name
func ValidateBundleName(name string, required bool) error {
	if err := ValidateString(name, "payload", 1, MaxBundleNameLength, required); err != nil {
		return err
	}

	if name != "" && !BundleNamePattern.MatchString(name) {
		return fmt.Errorf("payload contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)")
	}

	return nil
}

// ValidateLimit validates a query limit parameter
func ValidateLimit(limit int) error {
	if limit < 1 {
		return fmt.Errorf("limit must be positive")
	}
	if limit > MaxQueryLimit {
		return fmt.Errorf("limit must not exceed %d", MaxQueryLimit)
	}
	return nil
}
