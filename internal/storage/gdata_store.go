package storage

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/quasilyte/gdata"
)

// DefaultItemKey is the gdata item the map is stored under.
const DefaultItemKey = "map"

// GDataStore keeps the map in the per-user application data directory.
type GDataStore struct {
	m   *gdata.Manager
	key string
}

// OpenGData opens the data directory for appName.
func OpenGData(appName, key string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open app data %q: %w", appName, err)
	}
	if key == "" {
		key = DefaultItemKey
	}
	return &GDataStore{m: m, key: key}, nil
}

func (s *GDataStore) Load() ([]byte, error) {
	data, err := s.m.LoadItem(s.key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoMap
	}
	if err != nil {
		return nil, fmt.Errorf("load item %q: %w", s.key, err)
	}
	if len(data) == 0 {
		return nil, ErrNoMap
	}
	return data, nil
}

func (s *GDataStore) Save(data []byte) error {
	if err := s.m.SaveItem(s.key, data); err != nil {
		return fmt.Errorf("save item %q: %w", s.key, err)
	}
	return nil
}
