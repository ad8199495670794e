package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"voxcast/internal/logging"
	"voxcast/internal/world"
)

// DefaultMapPath is the file the map is kept in when nothing else is configured.
const DefaultMapPath = "map"

// ErrNoMap is returned by Load when nothing has been saved yet.
var ErrNoMap = errors.New("no saved map")

// MapStore persists the encoded map.
type MapStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileStore keeps the map in a single local file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultMapPath
	}
	return &FileStore{Path: path}
}

func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoMap
	}
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", s.Path, err)
	}
	return data, nil
}

// Save replaces the file atomically: readers see the old or the new map,
// never a partial one.
func (s *FileStore) Save(data []byte) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp map: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write map: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close map: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("replace map %s: %w", s.Path, err)
	}
	return nil
}

// LoadGrid decodes the stored map. Any failure, including a missing map,
// yields fresh() instead, or a reset grid when fresh is nil. Only real
// failures are logged as warnings.
func LoadGrid(store MapStore, layers, rows, cols int, fresh func() *world.Grid) *world.Grid {
	if fresh == nil {
		fresh = func() *world.Grid { return world.New(layers, rows, cols) }
	}

	data, err := store.Load()
	if errors.Is(err, ErrNoMap) {
		logging.Infof("No saved map, starting with a new world")
		return fresh()
	}
	if err != nil {
		logging.Warnf("Could not load map, resetting: %v", err)
		return fresh()
	}

	g, err := world.Decode(data, layers, rows, cols)
	if err != nil {
		logging.Warnf("Could not parse map, resetting: %v", err)
		return fresh()
	}
	return g
}

// SaveGrid encodes g and writes it to store.
func SaveGrid(store MapStore, g *world.Grid) error {
	if err := store.Save(world.Encode(g)); err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	return nil
}
