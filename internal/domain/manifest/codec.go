package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

var extensions = map[string]struct{}{
	".yaml": {},
	".yml":  {},
	".toml": {},
	".json": {},
}

// IsManifestFile reports whether a filename carries a manifest extension
func IsManifestFile(name string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Decode parses manifest bytes in the format implied by the filename and
// validates every entry. A single bad entry rejects the whole file so a
// typo cannot silently drop rules.
func Decode(path string, data []byte) (*Manifest, error) {
	var m Manifest
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	case ".toml":
		err = toml.Unmarshal(data, &m)
	case ".json":
		err = sonic.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	for i, entry := range m.Entries {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", filepath.Base(path), i, err)
		}
	}
	return &m, nil
}
