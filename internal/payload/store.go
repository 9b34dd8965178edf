package payload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/shared/paths"
	"github.com/GriffinCanCode/InspectOS/internal/shared/utils"
)

// Store keeps agent payload bundles on local disk. Files are named
// <name>@<version>.bundle with an optional .gz or .zst suffix for the
// stored format; digests always describe the decompressed content.
type Store struct {
	root   string
	logger *logging.Logger
	hasher *utils.Hasher

	mu      sync.RWMutex
	bundles map[string]*Bundle // keyed by name@version
	scanned map[string]uint64  // path -> metadata hash, skips unchanged files on rescan
}

// NewStore creates the store directory if needed and runs an initial scan
func NewStore(root string, logger *logging.Logger) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create payload dir: %w", err)
	}

	s := &Store{
		root:    root,
		logger:  logger,
		hasher:  utils.DefaultHasher(),
		bundles: make(map[string]*Bundle),
		scanned: make(map[string]uint64),
	}

	if err := s.Scan(); err != nil {
		return nil, err
	}
	return s, nil
}

// Root returns the store directory
func (s *Store) Root() string {
	return s.root
}

// Scan walks the store directory and indexes bundle files. Unchanged files
// keep their previous digest.
func (s *Store) Scan() error {
	type found struct {
		path string
		info os.FileInfo
	}
	var files []found

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, s.root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, found{path: p, info: info})
		return nil
	})
	if err != nil {
		return fmt.Errorf("payload scan failed: %w", err)
	}

	next := make(map[string]*Bundle, len(files))
	keys := make(map[string]uint64, len(files))

	for _, f := range files {
		name, version, format, ok := parseBundleName(filepath.Base(f.path))
		if !ok {
			continue
		}

		key := metaKey(f.path, f.info)
		keys[f.path] = key

		s.mu.RLock()
		prev, seen := s.scanned[f.path]
		existing := s.bundles[name+"@"+version]
		s.mu.RUnlock()

		if seen && prev == key && existing != nil {
			next[existing.Key()] = existing
			continue
		}

		bundle, err := s.index(f.path, name, version, format, f.info)
		if err != nil {
			s.logger.Warn("skipping payload file",
				zap.String("path", f.path),
				zap.Error(err),
			)
			continue
		}
		next[bundle.Key()] = bundle
	}

	s.mu.Lock()
	s.bundles = next
	s.scanned = keys
	count := len(next)
	s.mu.Unlock()

	s.logger.Info("payload store scanned",
		zap.String("root", s.root),
		zap.Int("bundles", count),
	)
	return nil
}

// index validates one bundle file and computes its content digest
func (s *Store) index(path, name, version, format string, info os.FileInfo) (*Bundle, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("mime detection failed: %w", err)
	}
	if !allowedMime(mtype, format) {
		return nil, fmt.Errorf("unexpected content type %s for %s bundle", mtype.String(), format)
	}

	r, err := openDecompressed(path, format)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	counter := &countingReader{r: r}
	digest, err := s.hasher.HashReader(counter)
	if err != nil {
		return nil, fmt.Errorf("digest failed: %w", err)
	}

	return &Bundle{
		Name:      name,
		Version:   version,
		Path:      path,
		Size:      counter.n,
		Digest:    digest,
		Format:    format,
		FetchedAt: info.ModTime(),
	}, nil
}

// Put stores bundle content as-is under the given format and indexes it
func (s *Store) Put(name, version, format string, r io.Reader) (*Bundle, error) {
	if format == "" {
		format = FormatRaw
	}

	filename := name + "@" + version + ".bundle"
	switch format {
	case FormatGzip:
		filename += ".gz"
	case FormatZstd:
		filename += ".zst"
	case FormatRaw:
	default:
		return nil, fmt.Errorf("unknown bundle format: %s", format)
	}

	if err := paths.ValidateBundlePath(filename); err != nil {
		return nil, fmt.Errorf("invalid bundle name: %w", err)
	}

	path := filepath.Join(s.root, filename)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return nil, fmt.Errorf("failed to create bundle file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return nil, fmt.Errorf("failed to write bundle: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("failed to close bundle file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("failed to finalize bundle file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	bundle, err := s.index(path, name, version, format, info)
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	s.mu.Lock()
	s.bundles[bundle.Key()] = bundle
	s.scanned[path] = metaKey(path, info)
	s.mu.Unlock()

	s.logger.Info("payload stored",
		zap.String("name", name),
		zap.String("version", version),
		zap.String("digest", bundle.Digest[:8]),
		zap.Int64("size", bundle.Size),
	)
	return bundle, nil
}

// Remove deletes a bundle from disk and the index
func (s *Store) Remove(name, version string) error {
	s.mu.Lock()
	bundle, ok := s.bundles[name+"@"+version]
	if ok {
		delete(s.bundles, bundle.Key())
		delete(s.scanned, bundle.Path)
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}
	if err := os.Remove(bundle.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove bundle file: %w", err)
	}
	return nil
}

// Get returns the bundle for an exact name@version
func (s *Store) Get(name, version string) (*Bundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bundles[name+"@"+version]
	return b, ok
}

// Latest returns the highest version of a bundle
func (s *Store) Latest(name string) (*Bundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *Bundle
	for _, b := range s.bundles {
		if b.Name != name {
			continue
		}
		if best == nil || compareVersions(b.Version, best.Version) > 0 {
			best = b
		}
	}
	return best, best != nil
}

// List returns all bundles sorted by name then descending version
func (s *Store) List() []*Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Bundle, 0, len(s.bundles))
	for _, b := range s.bundles {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return compareVersions(out[i].Version, out[j].Version) > 0
	})
	return out
}

// Open returns a reader over the decompressed bundle content
func (s *Store) Open(name, version string) (io.ReadCloser, error) {
	bundle, ok := s.Get(name, version)
	if !ok {
		return nil, fmt.Errorf("bundle %s@%s not in store", name, version)
	}
	return openDecompressed(bundle.Path, bundle.Format)
}

// parseBundleName splits <name>@<version>.bundle[.gz|.zst]
func parseBundleName(base string) (name, version, format string, ok bool) {
	format = FormatRaw
	switch {
	case strings.HasSuffix(base, ".bundle.gz"):
		format = FormatGzip
		base = strings.TrimSuffix(base, ".bundle.gz")
	case strings.HasSuffix(base, ".bundle.zst"):
		format = FormatZstd
		base = strings.TrimSuffix(base, ".bundle.zst")
	case strings.HasSuffix(base, ".bundle"):
		base = strings.TrimSuffix(base, ".bundle")
	default:
		return "", "", "", false
	}

	at := strings.LastIndex(base, "@")
	if at <= 0 || at == len(base)-1 {
		return "", "", "", false
	}
	return base[:at], base[at+1:], format, true
}

// allowedMime rejects content that cannot be a payload, like an HTML error
// page saved to disk by a broken fetch.
func allowedMime(mtype *mimetype.MIME, format string) bool {
	switch format {
	case FormatGzip:
		return mtype.Is("application/gzip")
	case FormatZstd:
		return mtype.Is("application/zstd") || mtype.Is("application/octet-stream")
	default:
		return !mtype.Is("text/html") && !mtype.Is("text/plain")
	}
}

// openDecompressed opens a bundle file with format-appropriate decompression
func openDecompressed(path, format string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open failed: %w", err)
	}

	switch format {
	case FormatGzip:
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("gzip failed: %w", err)
		}
		return &compositeCloser{Reader: gzReader, closers: []io.Closer{gzReader, file}}, nil
	case FormatZstd:
		zstdReader, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("zstd failed: %w", err)
		}
		rc := zstdReader.IOReadCloser()
		return &compositeCloser{Reader: rc, closers: []io.Closer{rc, file}}, nil
	default:
		return file, nil
	}
}

// metaKey hashes file identity metadata for rescan skipping
func metaKey(path string, info os.FileInfo) uint64 {
	h := xxhash.New()
	h.WriteString(path)
	h.WriteString(info.ModTime().Format(time.RFC3339Nano))
	fmt.Fprintf(h, "%d", info.Size())
	return h.Sum64()
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type compositeCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *compositeCloser) Close() error {
	var first error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
