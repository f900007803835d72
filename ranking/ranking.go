// Package ranking keeps the per-mode top scores
package ranking

import (
	"sort"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
)

// Entry is one ranking line
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store is the ranking sink consumed by the round and the menu
// Each mode has an independent ranking
type Store interface {
	// Load returns the ranking of mode, best first; never fails
	Load(mode core.PlayMode) []Entry
	// Save inserts a score and persists the truncated ranking
	Save(mode core.PlayMode, name string, score int) error
}

// Insert adds e to entries and returns the top n by score, descending
// Equal scores keep insertion order
func Insert(entries []Entry, e Entry, n int) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Qualifies reports whether score would enter a ranking of size n
func Qualifies(entries []Entry, score, n int) bool {
	if len(entries) < n {
		return true
	}
	return score > entries[n-1].Score
}

// MemoryStore is an in-process Store used when persistence is unavailable
type MemoryStore struct {
	entries map[core.PlayMode][]Entry
	saves   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[core.PlayMode][]Entry)}
}

func (m *MemoryStore) Load(mode core.PlayMode) []Entry {
	return append([]Entry(nil), m.entries[mode]...)
}

func (m *MemoryStore) Save(mode core.PlayMode, name string, score int) error {
	m.entries[mode] = Insert(m.entries[mode], Entry{Name: name, Score: score}, constants.RankingSize)
	m.saves++
	return nil
}

// Saves returns how many writes the store received
func (m *MemoryStore) Saves() int {
	return m.saves
}
