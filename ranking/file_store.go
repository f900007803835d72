package ranking

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
)

// AppDir is the application directory name under the XDG data home
const AppDir = "term-invaders"

// FileStore persists each mode's ranking as a JSON array in its own file
type FileStore struct {
	dir    string
	size   int
	logger *slog.Logger
}

// NewFileStore creates a store rooted at dir
// An empty dir selects $XDG_DATA_HOME/term-invaders
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if dir == "" {
		p, err := xdg.DataFile(filepath.Join(AppDir, FileName(core.ModeSingle)))
		if err != nil {
			return nil, fmt.Errorf("resolve ranking dir: %w", err)
		}
		dir = filepath.Dir(p)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create ranking dir: %w", err)
	}

	return &FileStore{
		dir:    dir,
		size:   constants.RankingSize,
		logger: logger.With("component", "ranking"),
	}, nil
}

// FileName returns the ranking file name for mode
func FileName(mode core.PlayMode) string {
	return mode.String() + "_ranking.json"
}

// Path returns the file backing the ranking of mode
func (s *FileStore) Path(mode core.PlayMode) string {
	return filepath.Join(s.dir, FileName(mode))
}

// Load returns the stored ranking; a missing or corrupted file is an empty ranking
func (s *FileStore) Load(mode core.PlayMode) []Entry {
	path := s.Path(mode)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("ranking unreadable, using empty", "path", path, "error", err)
		}
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("corrupted ranking file, resetting", "path", path, "error", err)
		return []Entry{}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}

// Save inserts the score and rewrites the file through a temp file and rename
func (s *FileStore) Save(mode core.PlayMode, name string, score int) error {
	entries := Insert(s.Load(mode), Entry{Name: name, Score: score}, s.size)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ranking: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, FileName(mode)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save ranking: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save ranking: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save ranking: %w", err)
	}
	if err := os.Rename(tmpName, s.Path(mode)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save ranking: %w", err)
	}

	s.logger.Info("ranking saved", "mode", mode.String(), "name", name, "score", score)
	return nil
}
