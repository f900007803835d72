package ranking

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/term-invaders/core"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return store
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	if got := store.Load(core.ModeSingle); len(got) != 0 {
		t.Fatalf("Expected empty ranking, got %v", got)
	}

	if err := store.Save(core.ModeSingle, "AAA", 120); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := store.Load(core.ModeSingle)
	if len(got) != 1 || got[0] != (Entry{Name: "AAA", Score: 120}) {
		t.Errorf("Expected [{AAA 120}], got %v", got)
	}
}

func TestFileStore_KeepsTopFive(t *testing.T) {
	store := newTestStore(t)

	for i, score := range []int{10, 60, 30, 50, 20, 40} {
		if err := store.Save(core.ModeSingle, string(rune('A'+i)), score); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	got := store.Load(core.ModeSingle)
	want := []int{60, 50, 40, 30, 20}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i, score := range want {
		if got[i].Score != score {
			t.Errorf("Entry %d: expected score %d, got %d", i, score, got[i].Score)
		}
	}
}

func TestFileStore_ModesIndependent(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(core.ModeMulti, "P1 & P2", 300); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(store.Load(core.ModeSingle)) != 0 {
		t.Error("Multi save leaked into single ranking")
	}
	if _, err := os.Stat(filepath.Join(store.dir, "multi_ranking.json")); err != nil {
		t.Errorf("Expected multi_ranking.json: %v", err)
	}
}

func TestFileStore_CorruptedFile(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.Path(core.ModeSingle), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := store.Load(core.ModeSingle); len(got) != 0 {
		t.Errorf("Corrupted file should load empty, got %v", got)
	}

	if err := store.Save(core.ModeSingle, "BBB", 5); err != nil {
		t.Fatalf("Save over corrupted file failed: %v", err)
	}
	if got := store.Load(core.ModeSingle); len(got) != 1 {
		t.Errorf("Expected recovery to one entry, got %v", got)
	}
}

func TestFileStore_ReadsPlainArray(t *testing.T) {
	store := newTestStore(t)

	raw := `[{"name": "ZED", "score": 90}, {"name": "AMY", "score": 40}]`
	if err := os.WriteFile(store.Path(core.ModeSingle), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	got := store.Load(core.ModeSingle)
	if len(got) != 2 || got[0].Name != "ZED" || got[1].Score != 40 {
		t.Errorf("Unexpected entries %v", got)
	}
}

func TestInsert_StableTies(t *testing.T) {
	var entries []Entry
	entries = Insert(entries, Entry{"first", 50}, 5)
	entries = Insert(entries, Entry{"second", 50}, 5)
	entries = Insert(entries, Entry{"top", 70}, 5)

	if entries[0].Name != "top" || entries[1].Name != "first" || entries[2].Name != "second" {
		t.Errorf("Ties must keep insertion order: %v", entries)
	}
}

func TestQualifies(t *testing.T) {
	full := []Entry{{"a", 50}, {"b", 40}}
	if !Qualifies(full, 0, 3) {
		t.Error("Any score qualifies for a ranking with room")
	}
	if Qualifies(full, 40, 2) {
		t.Error("Equal to the last score does not qualify")
	}
	if !Qualifies(full, 41, 2) {
		t.Error("Above the last score qualifies")
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	if err := m.Save(core.ModeSingle, "AAA", 10); err != nil {
		t.Fatal(err)
	}
	got := m.Load(core.ModeSingle)
	got[0].Score = 999
	if m.Load(core.ModeSingle)[0].Score != 10 {
		t.Error("Load must return a copy")
	}
	if m.Saves() != 1 {
		t.Errorf("Expected 1 save, got %d", m.Saves())
	}
}
