package payload

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/shared/utils"
)

func writeRawBundle(t *testing.T, dir, name, version string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name+"@"+version+".bundle")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeGzipBundle(t *testing.T, dir, name, version string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name+"@"+version+".bundle.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeZstdBundle(t *testing.T, dir, name, version string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name+"@"+version+".bundle.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// binaryContent returns bytes that do not sniff as text
func binaryContent(seed byte, n int) []byte {
	content := make([]byte, n)
	for i := range content {
		content[i] = seed ^ byte(i*7)
	}
	content[0] = 0x7f
	content[1] = 'E'
	content[2] = 'L'
	content[3] = 'F'
	return content
}

func TestStoreScanIndexesBundles(t *testing.T) {
	dir := t.TempDir()
	raw := binaryContent(0x5a, 4096)
	gzContent := binaryContent(0xa5, 2048)

	writeRawBundle(t, dir, "memory-inspector", "1.2.0", raw)
	writeGzipBundle(t, dir, "network-inspector", "0.9.1", gzContent)

	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	hasher := utils.DefaultHasher()

	b, ok := store.Get("memory-inspector", "1.2.0")
	if !ok {
		t.Fatal("raw bundle not indexed")
	}
	if b.Digest != hasher.Hash(raw) {
		t.Errorf("raw digest mismatch")
	}
	if b.Size != int64(len(raw)) {
		t.Errorf("raw size = %d, want %d", b.Size, len(raw))
	}
	if b.Format != FormatRaw {
		t.Errorf("format = %s, want raw", b.Format)
	}

	g, ok := store.Get("network-inspector", "0.9.1")
	if !ok {
		t.Fatal("gzip bundle not indexed")
	}
	if g.Digest != hasher.Hash(gzContent) {
		t.Errorf("gzip bundle digest should describe decompressed content")
	}
	if g.Size != int64(len(gzContent)) {
		t.Errorf("gzip size = %d, want %d", g.Size, len(gzContent))
	}
	if g.Format != FormatGzip {
		t.Errorf("format = %s, want gzip", g.Format)
	}
}

func TestStoreSkipsNonBundles(t *testing.T) {
	dir := t.TempDir()
	writeRawBundle(t, dir, "agent", "1.0.0", binaryContent(1, 512))
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("notes"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "noversion.bundle"), binaryContent(2, 64), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	if got := len(store.List()); got != 1 {
		t.Errorf("expected 1 bundle, got %d", got)
	}
}

func TestStoreRejectsHTMLErrorPage(t *testing.T) {
	dir := t.TempDir()
	html := []byte("<!DOCTYPE html><html><body>404 not found</body></html>")
	writeRawBundle(t, dir, "broken", "1.0.0", html)

	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := store.Get("broken", "1.0.0"); ok {
		t.Error("HTML content should not index as a bundle")
	}
}

func TestStoreOpenDecompresses(t *testing.T) {
	dir := t.TempDir()
	content := binaryContent(0x33, 8192)
	writeZstdBundle(t, dir, "agent", "2.0.0", content)

	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	r, err := store.Open("agent", "2.0.0")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), content) {
		t.Error("opened content does not match original")
	}
}

func TestStorePutAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	content := binaryContent(0x44, 1024)
	bundle, err := store.Put("agent", "3.1.4", FormatRaw, bytes.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if bundle.Size != int64(len(content)) {
		t.Errorf("size = %d, want %d", bundle.Size, len(content))
	}
	if _, ok := store.Get("agent", "3.1.4"); !ok {
		t.Fatal("put bundle not indexed")
	}

	if err := store.Remove("agent", "3.1.4"); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Get("agent", "3.1.4"); ok {
		t.Error("removed bundle still indexed")
	}
	if _, err := os.Stat(bundle.Path); !os.IsNotExist(err) {
		t.Error("removed bundle file still on disk")
	}
}

func TestStorePutRejectsEscapingNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"../escape", "/etc/agent", "a/../../b"} {
		if _, err := store.Put(name, "1.0", FormatRaw, bytes.NewReader([]byte{0x44})); err == nil {
			t.Errorf("Put(%q) should reject names that leave the store", name)
		}
	}
	if escaped, err := os.Stat(filepath.Join(dir, "..", "escape@1.0.bundle")); err == nil {
		t.Fatalf("bundle written outside the store: %v", escaped.Name())
	}
}

func TestStoreLatestVersionOrdering(t *testing.T) {
	dir := t.TempDir()
	writeRawBundle(t, dir, "agent", "1.9.0", binaryContent(1, 256))
	writeRawBundle(t, dir, "agent", "1.10.0", binaryContent(2, 256))
	writeRawBundle(t, dir, "agent", "0.99.0", binaryContent(3, 256))

	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	latest, ok := store.Latest("agent")
	if !ok {
		t.Fatal("no latest bundle")
	}
	if latest.Version != "1.10.0" {
		t.Errorf("latest = %s, want 1.10.0 (numeric segment ordering)", latest.Version)
	}
}

func TestStoreRescanKeepsUnchanged(t *testing.T) {
	dir := t.TempDir()
	writeRawBundle(t, dir, "agent", "1.0.0", binaryContent(9, 512))

	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	first, _ := store.Get("agent", "1.0.0")

	if err := store.Scan(); err != nil {
		t.Fatal(err)
	}
	second, ok := store.Get("agent", "1.0.0")
	if !ok {
		t.Fatal("bundle lost on rescan")
	}
	if first != second {
		t.Error("unchanged file should keep its index entry across rescans")
	}
}

func TestParseBundleName(t *testing.T) {
	tests := []struct {
		base    string
		name    string
		version string
		format  string
		ok      bool
	}{
		{"agent@1.0.0.bundle", "agent", "1.0.0", FormatRaw, true},
		{"agent@1.0.0.bundle.gz", "agent", "1.0.0", FormatGzip, true},
		{"agent@1.0.0.bundle.zst", "agent", "1.0.0", FormatZstd, true},
		{"my-agent@2024.8.bundle", "my-agent", "2024.8", FormatRaw, true},
		{"agent.bundle", "", "", "", false},
		{"@1.0.0.bundle", "", "", "", false},
		{"agent@.bundle", "", "", "", false},
		{"agent.tar.gz", "", "", "", false},
	}

	for _, tt := range tests {
		name, version, format, ok := parseBundleName(tt.base)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.base, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if name != tt.name || version != tt.version || format != tt.format {
			t.Errorf("%s: got (%s, %s, %s), want (%s, %s, %s)",
				tt.base, name, version, format, tt.name, tt.version, tt.format)
		}
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.9.0", "1.10.0", -1},
		{"2.0", "1.99.99", 1},
		{"1.0", "1.0.1", -1},
		{"1.0.0-rc1", "1.0.0-rc2", -1},
	}

	for _, tt := range tests {
		if got := compareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("compareVersions(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
