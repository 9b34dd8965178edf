package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LoadDir reads every manifest in dir, non-recursive, sorted by filename so
// pattern precedence is stable across reloads. A missing directory is an
// empty rule set, not an error; a file that fails to parse rejects the
// whole load.
func LoadDir(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !IsManifestFile(f.Name()) {
			continue
		}
		names = append(names, f.Name())
	}
	sort.Strings(names)

	var entries []Entry
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		m, err := Decode(path, data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, m.Entries...)
	}
	return entries, nil
}
