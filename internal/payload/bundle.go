package payload

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Storage formats for bundle files on disk.
const (
	FormatRaw  = "raw"
	FormatGzip = "gzip"
	FormatZstd = "zstd"
)

// DeviceDir is where pushed payloads land on the device
const DeviceDir = "/data/local/tmp/inspectos"

// Bundle is an agent payload in the local store. Digest and Size describe
// the decompressed content, which is what reaches the device.
type Bundle struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	Digest    string    `json:"digest"`
	Format    string    `json:"format"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Key returns the store key for this bundle
func (b *Bundle) Key() string {
	return b.Name + "@" + b.Version
}

// ParseKey splits a payload reference into name and version. A bare name
// has no version and resolves to the latest.
func ParseKey(ref string) (name, version string) {
	if i := strings.LastIndex(ref, "@"); i > 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// DevicePath returns the destination path on the device. The short digest
// keeps stale copies from earlier versions distinct.
func (b *Bundle) DevicePath() string {
	digest := b.Digest
	if len(digest) > 8 {
		digest = digest[:8]
	}
	return fmt.Sprintf("%s/%s-%s.bin", DeviceDir, b.Name, digest)
}

// compareVersions orders dotted version strings numerically per segment,
// falling back to string comparison for non-numeric segments. There is no
// semver dependency to lean on, and registry versions are plain dotted tags.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
			continue
		}
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}
