package player

import (
	"voxcast/internal/physics"
	"voxcast/internal/profiling"
	"voxcast/internal/world"
)

// Editor places and removes voxels along the player's aim ray.
type Editor struct {
	StepSize    float32
	MaxDistance float32
}

// DefaultEditor uses the renderer's step size and reach.
func DefaultEditor() Editor {
	return Editor{StepSize: physics.DefaultStepSize, MaxDistance: physics.DefaultMaxDistance}
}

// PlaceBlock marches the aim ray and makes the cell one step short of the
// hit Solid. A miss changes nothing and returns false.
func (e Editor) PlaceBlock(g *world.Grid, s State) bool {
	defer profiling.Track("player.PlaceBlock")()

	eye, front := s.EyePosition(), s.Front()
	result := physics.March(eye, front, e.StepSize, e.MaxDistance, g)
	profiling.CountEdit("place", result.Hit)
	if !result.Hit {
		return false
	}

	target := result.Prev
	if result.Steps == 0 {
		target = physics.CellAt(eye, front, -e.StepSize)
	}
	g.Set(target[0], target[1], target[2], world.Solid)
	return true
}

// RemoveBlock marches the aim ray and empties the first blocking cell. The
// ray ends as a miss once it would probe layer 0, so the floor cannot be
// removed this way.
func (e Editor) RemoveBlock(g *world.Grid, s State) bool {
	defer profiling.Track("player.RemoveBlock")()

	result := physics.MarchWithin(s.EyePosition(), s.Front(), e.StepSize, e.MaxDistance, 1, g)
	profiling.CountEdit("remove", result.Hit)
	if !result.Hit {
		return false
	}

	g.Set(result.Cell[0], result.Cell[1], result.Cell[2], world.Empty)
	return true
}
