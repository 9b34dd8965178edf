package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
)

func waitForStats(t *testing.T, engine *Engine, want Stats) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if engine.Stats() == want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("stats = %+v, want %+v", engine.Stats(), want)
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	engine, _ := newTestEngine()

	w, err := NewWatcher(dir, engine, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	defer w.Stop()

	writeFile(t, dir, "apps.yaml", yamlManifest)
	waitForStats(t, engine, Stats{Exact: 1})

	// Removing the file empties the rule set on the next debounce
	if err := os.Remove(filepath.Join(dir, "apps.yaml")); err != nil {
		t.Fatal(err)
	}
	waitForStats(t, engine, Stats{})
}

func TestWatcherKeepsRulesOnBadReload(t *testing.T) {
	dir := t.TempDir()
	engine, _ := newTestEngine()

	writeFile(t, dir, "apps.yaml", yamlManifest)
	entries, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	engine.Sync(entries)

	w, err := NewWatcher(dir, engine, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	defer w.Stop()

	// A manifest that fails validation must not clear the live rules
	writeFile(t, dir, "broken.yaml", "entries: [{process: \"[\"}]")

	time.Sleep(600 * time.Millisecond)
	if stats := engine.Stats(); stats.Exact != 1 {
		t.Errorf("stats = %+v, want the previous rule set intact", stats)
	}
}

func TestWatcherIgnoresNonManifests(t *testing.T) {
	dir := t.TempDir()
	engine, _ := newTestEngine()

	// A rule synced outside the directory; a spurious reload of the empty
	// directory would clear it
	engine.Sync([]Entry{exactEntry("com.example.app", "inspector")})

	w, err := NewWatcher(dir, engine, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	defer w.Stop()

	writeFile(t, dir, "notes.txt", "scratch")
	time.Sleep(600 * time.Millisecond)

	if stats := engine.Stats(); stats.Exact != 1 {
		t.Errorf("stats = %+v, non-manifest write triggered a reload", stats)
	}
}
