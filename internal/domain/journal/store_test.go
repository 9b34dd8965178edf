package journal

import (
	"fmt"
	"testing"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(Config{InMemory: true}, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func descFor(process string, pid int32) *types.ProcessDescriptor {
	return &types.ProcessDescriptor{
		Manufacturer: "Google",
		Model:        "Pixel 8",
		Process:      process,
		PID:          pid,
		StreamID:     1,
	}
}

func TestAppendAssignsOrderedIDs(t *testing.T) {
	store := openTestStore(t)

	var last string
	for i := 0; i < 10; i++ {
		entry, err := store.Append(types.JournalEntry{
			Type:       types.EventProcessConnected,
			Descriptor: descFor("com.example.app", int32(i)),
		})
		if err != nil {
			t.Fatal(err)
		}
		if entry.ID <= last {
			t.Fatalf("entry ids must be monotonic: %s after %s", entry.ID, last)
		}
		last = entry.ID
	}

	if got := store.Stats().Entries; got != 10 {
		t.Errorf("entries = %d, want 10", got)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.Append(types.JournalEntry{
			Type:       types.EventProcessConnected,
			Descriptor: descFor(fmt.Sprintf("com.example.app%d", i), 100),
		}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.Recent(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Descriptor.Process != "com.example.app4" {
		t.Errorf("newest entry should come first, got %s", entries[0].Descriptor.Process)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].ID >= entries[i-1].ID {
			t.Error("entries must descend by id")
		}
	}
}

func TestByProcessFilters(t *testing.T) {
	store := openTestStore(t)

	store.Append(types.JournalEntry{
		Type:       types.EventProcessConnected,
		Descriptor: descFor("com.example.app", 100),
	})
	store.Append(types.JournalEntry{
		Type:       types.EventProcessConnected,
		Descriptor: descFor("com.example.other", 200),
	})
	store.Append(types.JournalEntry{
		Type: types.EventTargetAttached,
		Target: &types.TargetInfo{
			ID:         "tgt_1",
			Descriptor: *descFor("com.example.app", 100),
			State:      types.TargetAttached,
		},
	})

	entries, err := store.ByProcess("com.example.app", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for the process, got %d", len(entries))
	}
	if entries[0].Type != types.EventTargetAttached {
		t.Errorf("target transition should be newest, got %s", entries[0].Type)
	}
}

func TestRecentLimitClamp(t *testing.T) {
	store := openTestStore(t)

	store.Append(types.JournalEntry{Type: types.EventProcessConnected, Descriptor: descFor("a", 1)})

	entries, err := store.Recent(-5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("negative limit should clamp, got %d entries", len(entries))
	}
}

func TestRecorderWritesEdges(t *testing.T) {
	store := openTestStore(t)
	recorder := NewRecorder(store, nil, logging.NewNop())

	desc := *descFor("com.example.app", 100)
	recorder.OnProcessConnected(desc)
	recorder.OnTargetAttached(types.TargetInfo{ID: "tgt_1", Descriptor: desc, State: types.TargetAttached})
	recorder.OnTargetTerminated(types.TargetInfo{ID: "tgt_1", Descriptor: desc, State: types.TargetTerminated, Error: "agent exited"})
	recorder.OnProcessDisconnected(desc)

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].Type != types.EventProcessDisconnected {
		t.Errorf("unexpected newest entry: %s", entries[0].Type)
	}
	if entries[1].Detail != "agent exited" {
		t.Errorf("termination reason should be journaled, got %q", entries[1].Detail)
	}
}

func TestPersistentRequiresDir(t *testing.T) {
	if _, err := Open(Config{}, logging.NewNop()); err == nil {
		t.Error("persistent store without a directory should fail")
	}
}
