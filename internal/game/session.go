package game

import (
	"sync/atomic"
	"time"

	"voxcast/internal/logging"
	"voxcast/internal/player"
	"voxcast/internal/profiling"
	"voxcast/internal/world"
)

// Simulation defaults.
const (
	DefaultTickPeriod = 20 // time units
	DefaultTimeUnit   = time.Millisecond
	DefaultQueueSize  = 64
)

// MapSaver persists a grid snapshot in the background.
type MapSaver interface {
	Request(g *world.Grid) bool
}

// Snapshot is the state published at a tick boundary. It is never mutated
// after publication; Grid is shared between snapshots until the next edit.
type Snapshot struct {
	Tick   uint64
	Clock  int64
	Player player.State
	Grid   *world.Grid
}

type Options struct {
	TickPeriod int64
	TimeUnit   time.Duration
	QueueSize  int
	Movement   player.MovementSettings
	Editor     player.Editor
}

func DefaultOptions() Options {
	return Options{
		TickPeriod: DefaultTickPeriod,
		TimeUnit:   DefaultTimeUnit,
		QueueSize:  DefaultQueueSize,
		Movement:   player.DefaultMovementSettings(),
		Editor:     player.DefaultEditor(),
	}
}

// Session owns the live grid and player. Only Step (and Run, which calls
// it) touches them; everything else goes through Submit and Snapshot.
type Session struct {
	opts       Options
	grid       *world.Grid
	state      player.State
	controller *player.Controller
	saver      MapSaver

	clock int64
	tick  uint64

	commands chan Command
	snapshot atomic.Pointer[Snapshot]

	gridSnap    *world.Grid
	gridVersion uint64
}

// NewSession takes ownership of grid. saver may be nil.
func NewSession(grid *world.Grid, state player.State, saver MapSaver, opts Options) *Session {
	if opts.TickPeriod <= 0 {
		opts.TickPeriod = DefaultTickPeriod
	}
	if opts.TimeUnit <= 0 {
		opts.TimeUnit = DefaultTimeUnit
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	s := &Session{
		opts:       opts,
		grid:       grid,
		state:      state,
		controller: player.NewController(opts.Movement),
		saver:      saver,
		commands:   make(chan Command, opts.QueueSize),
	}
	s.publish()
	return s
}

// Submit queues a command for the next tick without blocking. A full queue
// drops the command.
func (s *Session) Submit(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		logging.Warnf("Command queue full, dropping %s", cmd.Action)
		profiling.CountDroppedCommand()
		return false
	}
}

// Snapshot returns the latest published state.
func (s *Session) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// TickDuration is the wall-clock length of one tick.
func (s *Session) TickDuration() time.Duration {
	return time.Duration(s.opts.TickPeriod) * s.opts.TimeUnit
}

// Step advances the simulation by one tick.
func (s *Session) Step() {
	defer profiling.Track("game.Step")()

	s.drain()
	s.controller.Tick(&s.state, s.grid, s.clock)
	s.clock += s.opts.TickPeriod
	s.tick++
	profiling.CountTick()
	s.publish()
}

func (s *Session) drain() {
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *Session) apply(cmd Command) {
	if intent, ok := cmd.Action.Intent(); ok {
		s.state.SetIntent(intent, cmd.Pressed)
		return
	}
	if !cmd.Pressed {
		return
	}

	switch cmd.Action {
	case ActionJump:
		s.controller.TriggerJump(&s.state, s.grid, s.clock)
	case ActionPlaceBlock:
		s.opts.Editor.PlaceBlock(s.grid, s.state)
	case ActionRemoveBlock:
		s.opts.Editor.RemoveBlock(s.grid, s.state)
	case ActionSave:
		if s.saver != nil {
			s.saver.Request(s.gridSnapshot())
		}
	}
}

// gridSnapshot returns an immutable copy of the grid, cloning only after edits.
func (s *Session) gridSnapshot() *world.Grid {
	if s.gridSnap == nil || s.grid.Version() != s.gridVersion {
		s.gridSnap = s.grid.Clone()
		s.gridVersion = s.grid.Version()
	}
	return s.gridSnap
}

func (s *Session) publish() {
	s.snapshot.Store(&Snapshot{
		Tick:   s.tick,
		Clock:  s.clock,
		Player: s.state,
		Grid:   s.gridSnapshot(),
	})
}
