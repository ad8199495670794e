package storage

import (
	"sync"
	"sync/atomic"

	"voxcast/internal/logging"
	"voxcast/internal/profiling"
	"voxcast/internal/world"

	"github.com/alitto/pond/v2"
)

// Saver writes maps in the background, one at a time. A request made while
// a save is running is dropped, not queued.
type Saver struct {
	store    MapStore
	pool     pond.Pool
	busy     atomic.Bool
	inflight sync.WaitGroup
}

func NewSaver(store MapStore) *Saver {
	return &Saver{
		store: store,
		pool:  pond.NewPool(1),
	}
}

// Request starts saving g and returns immediately. g is read by the worker,
// so it must be a snapshot nobody mutates. It returns false when another
// save is still in flight.
func (s *Saver) Request(g *world.Grid) bool {
	if !s.busy.CompareAndSwap(false, true) {
		logging.Debugf("Save already in progress, skipping")
		profiling.CountSave(profiling.SaveSkipped)
		return false
	}

	s.inflight.Add(1)
	s.pool.Submit(func() {
		defer s.inflight.Done()
		defer s.busy.Store(false)
		_ = s.write(g)
	})
	return true
}

// Busy reports whether a save is running.
func (s *Saver) Busy() bool {
	return s.busy.Load()
}

// Wait blocks until the in-flight save, if any, has finished.
func (s *Saver) Wait() {
	s.inflight.Wait()
}

// SaveNow waits for any in-flight save and then writes g synchronously.
func (s *Saver) SaveNow(g *world.Grid) error {
	s.Wait()
	return s.write(g)
}

// Close drains the worker. Further requests are not allowed.
func (s *Saver) Close() {
	s.Wait()
	s.pool.StopAndWait()
}

func (s *Saver) write(g *world.Grid) error {
	defer profiling.Track("storage.Save")()

	if err := SaveGrid(s.store, g); err != nil {
		logging.Errorf("Failed to save map: %v", err)
		profiling.CountSave(profiling.SaveFailed)
		return err
	}
	logging.Debugf("Map saved")
	profiling.CountSave(profiling.SaveOK)
	return nil
}
