package game

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"voxcast/internal/player"
	"voxcast/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	mu    sync.Mutex
	grids []*world.Grid
}

func (r *recordingSaver) Request(g *world.Grid) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grids = append(r.grids, g)
	return true
}

func scenarioSession(t *testing.T, saver MapSaver, opts Options) *Session {
	t.Helper()
	g := world.New(3, 5, 5)
	g.Set(1, 2, 4, world.Solid)
	return NewSession(g, player.New(mgl32.Vec3{1.0, 2.0, 1.7}, 0, 0), saver, opts)
}

func TestNewSessionPublishesInitialSnapshot(t *testing.T) {
	s := scenarioSession(t, nil, DefaultOptions())
	snap := s.Snapshot()
	require.NotNil(t, snap)
	assert.Zero(t, snap.Tick)
	assert.Zero(t, snap.Clock)
	assert.Equal(t, world.Solid, snap.Grid.Get(1, 2, 4))
}

func TestStepAdvancesClock(t *testing.T) {
	s := scenarioSession(t, nil, DefaultOptions())
	for i := 0; i < 3; i++ {
		s.Step()
	}
	snap := s.Snapshot()
	assert.Equal(t, uint64(3), snap.Tick)
	assert.Equal(t, int64(60), snap.Clock)
}

func TestHeldIntentMovesUntilReleased(t *testing.T) {
	s := scenarioSession(t, nil, DefaultOptions())

	require.True(t, s.Submit(Press(ActionMoveForward)))
	s.Step()
	s.Step()
	assert.InDelta(t, 1.1, s.Snapshot().Player.Position.X(), 1e-5)

	require.True(t, s.Submit(Release(ActionMoveForward)))
	s.Step()
	assert.InDelta(t, 1.1, s.Snapshot().Player.Position.X(), 1e-5)
}

func TestTurnCommand(t *testing.T) {
	s := scenarioSession(t, nil, DefaultOptions())
	s.Submit(Press(ActionTurnLeft))
	s.Step()
	assert.InDelta(t, 2*math.Pi-0.02, s.Snapshot().Player.Yaw, 1e-5)
}

func TestJumpCommand(t *testing.T) {
	s := scenarioSession(t, nil, DefaultOptions())
	s.Submit(Press(ActionJump))
	s.Submit(Release(ActionJump))
	s.Step()

	snap := s.Snapshot()
	assert.Equal(t, player.Jumping, snap.Player.Vertical)
	assert.InDelta(t, 1.8, snap.Player.Position.Z(), 1e-5)

	for i := 0; i < 100; i++ {
		s.Step()
	}
	snap = s.Snapshot()
	assert.Equal(t, player.Grounded, snap.Player.Vertical)
	assert.InDelta(t, 1.7, snap.Player.Position.Z(), 1e-4)
}

func TestEditsPublishNewGridSnapshot(t *testing.T) {
	s := scenarioSession(t, nil, DefaultOptions())
	s.Step()
	before := s.Snapshot()

	s.Step()
	assert.Same(t, before.Grid, s.Snapshot().Grid, "no edit, no clone")

	s.Submit(Press(ActionPlaceBlock))
	s.Step()
	after := s.Snapshot()
	assert.NotSame(t, before.Grid, after.Grid)
	assert.Equal(t, world.Solid, after.Grid.Get(1, 2, 3))
	assert.Equal(t, world.Empty, before.Grid.Get(1, 2, 3), "old snapshot untouched")

	s.Submit(Press(ActionRemoveBlock))
	s.Step()
	assert.True(t, s.Snapshot().Grid.Equal(before.Grid))
}

func TestReleaseDoesNotEdit(t *testing.T) {
	s := scenarioSession(t, nil, DefaultOptions())
	s.Submit(Release(ActionPlaceBlock))
	s.Step()
	assert.Equal(t, world.Empty, s.Snapshot().Grid.Get(1, 2, 3))
}

func TestSaveCommandHandsOffSnapshot(t *testing.T) {
	saver := &recordingSaver{}
	s := scenarioSession(t, saver, DefaultOptions())

	s.Submit(Press(ActionPlaceBlock))
	s.Submit(Press(ActionSave))
	s.Step()

	require.Len(t, saver.grids, 1)
	saved := saver.grids[0]
	assert.Equal(t, world.Solid, saved.Get(1, 2, 3))
	assert.Same(t, saved, s.Snapshot().Grid)

	s.Submit(Press(ActionRemoveBlock))
	s.Step()
	assert.Equal(t, world.Solid, saved.Get(1, 2, 3), "saved grid is not the live grid")
}

func TestSaveWithoutSaver(t *testing.T) {
	s := scenarioSession(t, nil, DefaultOptions())
	s.Submit(Press(ActionSave))
	assert.NotPanics(t, s.Step)
}

func TestSubmitDropsWhenFull(t *testing.T) {
	opts := DefaultOptions()
	opts.QueueSize = 1
	s := scenarioSession(t, nil, opts)

	assert.True(t, s.Submit(Press(ActionMoveForward)))
	assert.False(t, s.Submit(Press(ActionJump)))

	s.Step()
	assert.True(t, s.Submit(Press(ActionJump)))
}

func TestRunStopsWithContext(t *testing.T) {
	opts := DefaultOptions()
	opts.TickPeriod = 1
	s := scenarioSession(t, nil, opts)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Positive(t, s.Snapshot().Tick)
}

func TestConcurrentSubmitAndSnapshot(t *testing.T) {
	s := scenarioSession(t, nil, DefaultOptions())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Step()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			s.Submit(Press(ActionPlaceBlock))
			s.Submit(Press(ActionRemoveBlock))
		}
	}()

	for i := 0; i < 200; i++ {
		snap := s.Snapshot()
		require.NotNil(t, snap.Grid)
		_ = snap.Grid.Count(world.Solid)
	}
	wg.Wait()
}

func TestActionIntent(t *testing.T) {
	i, ok := ActionStrafeRight.Intent()
	assert.True(t, ok)
	assert.Equal(t, player.IntentStrafeRight, i)

	_, ok = ActionSave.Intent()
	assert.False(t, ok)

	assert.True(t, ActionSave.IsCommand())
	assert.False(t, ActionQuit.IsCommand())
	assert.Equal(t, "place_block", ActionPlaceBlock.String())
	assert.Equal(t, "unknown", Action(-1).String())
}
