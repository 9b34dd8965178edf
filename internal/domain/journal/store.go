package journal

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/shared/id"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

const (
	// DefaultGCInterval is how often the value-log GC runs
	DefaultGCInterval = 5 * time.Minute
	gcDiscardRatio    = 0.5

	// MaxQueryLimit caps Recent and ByProcess result sizes
	MaxQueryLimit = 1000
)

// Config holds journal store configuration
type Config struct {
	Dir        string
	InMemory   bool
	GCInterval time.Duration
}

// Store is the append-only transition journal. Keys are prefixed ULIDs, so
// Badger's key order is chronological.
type Store struct {
	db      *badger.DB
	path    string
	entries atomic.Int64
	logger  *logging.Logger

	gcDone   chan struct{}
	stopOnce sync.Once
}

// Open opens the journal database. Persistent stores get their directory
// created and a GC ticker; in-memory stores skip both.
func Open(cfg Config, logger *logging.Logger) (*Store, error) {
	if !cfg.InMemory && cfg.Dir == "" {
		return nil, fmt.Errorf("journal directory is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts = opts.WithLogger(&badgerLogger{logger: logger.Logger.Sugar()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	s := &Store{
		db:     db,
		path:   cfg.Dir,
		logger: logger,
		gcDone: make(chan struct{}),
	}
	if count, err := s.count(); err == nil {
		s.entries.Store(count)
	}

	if !cfg.InMemory {
		interval := cfg.GCInterval
		if interval <= 0 {
			interval = DefaultGCInterval
		}
		go s.runGC(interval)
	}
	return s, nil
}

// Close stops the GC ticker and closes the database
func (s *Store) Close() error {
	s.stopOnce.Do(func() { close(s.gcDone) })
	return s.db.Close()
}

// Append writes one entry. The entry's ID and Time are assigned here so
// the key order matches write order.
func (s *Store) Append(entry types.JournalEntry) (types.JournalEntry, error) {
	entry.ID = string(id.NewEntryID())
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}

	value, err := sonic.Marshal(entry)
	if err != nil {
		return types.JournalEntry{}, fmt.Errorf("failed to encode journal entry: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(entry.ID), value)
	})
	if err != nil {
		return types.JournalEntry{}, fmt.Errorf("failed to write journal entry: %w", err)
	}

	s.entries.Add(1)
	return entry, nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(limit int) ([]types.JournalEntry, error) {
	return s.scan(limit, nil)
}

// ByProcess returns up to limit entries touching the named process, newest
// first. Matches both discovery edges and target transitions.
func (s *Store) ByProcess(process string, limit int) ([]types.JournalEntry, error) {
	return s.scan(limit, func(e types.JournalEntry) bool {
		if e.Descriptor != nil && e.Descriptor.Process == process {
			return true
		}
		if e.Target != nil && e.Target.Descriptor.Process == process {
			return true
		}
		return false
	})
}

// Stats returns journal statistics
func (s *Store) Stats() types.JournalStats {
	return types.JournalStats{
		Entries: s.entries.Load(),
		Path:    s.path,
	}
}

// scan iterates newest-first, applying the optional filter
func (s *Store) scan(limit int, keep func(types.JournalEntry) bool) ([]types.JournalEntry, error) {
	if limit <= 0 || limit > MaxQueryLimit {
		limit = MaxQueryLimit
	}

	var out []types.JournalEntry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the highest possible key; ULIDs are Crockford base32
		seek := []byte(id.EntryPrefix + "_~")
		for it.Seek(seek); it.Valid() && len(out) < limit; it.Next() {
			var entry types.JournalEntry
			err := it.Item().Value(func(value []byte) error {
				return sonic.Unmarshal(value, &entry)
			})
			if err != nil {
				return fmt.Errorf("failed to decode journal entry %s: %w", it.Item().Key(), err)
			}
			if keep == nil || keep(entry) {
				out = append(out, entry)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// count walks the keyspace once at open to seed the entry counter
func (s *Store) count() (int64, error) {
	var n int64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// runGC reclaims value-log space until Close
func (s *Store) runGC(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.gcDone:
			return
		case <-ticker.C:
			for {
				if err := s.db.RunValueLogGC(gcDiscardRatio); err != nil {
					if err != badger.ErrNoRewrite {
						s.logger.Warn("journal GC failed", zap.Error(err))
					}
					break
				}
			}
		}
	}
}

// badgerLogger adapts Badger's printf-style logging to zap. Badger is
// chatty at INFO, so informational output drops to debug.
type badgerLogger struct {
	logger *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf("journal: "+strings.TrimSpace(format), args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf("journal: "+strings.TrimSpace(format), args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debugf("journal: "+strings.TrimSpace(format), args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf("journal: "+strings.TrimSpace(format), args...)
}
