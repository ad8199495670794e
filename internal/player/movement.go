package player

import (
	"math"

	"voxcast/internal/physics"
	"voxcast/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Per-tick movement constants.
const (
	MoveStep     = 0.05
	TurnRate     = 0.02
	LookRate     = 0.02
	FallRate     = 0.05
	GroundOffset = 0.7 // eye height above the floor of the current cell
)

// MovementSettings tunes the controller. All distances are grid units per
// tick, angles radians per tick, times simulation time units.
type MovementSettings struct {
	MoveStep     float32
	TurnRate     float32
	LookRate     float32
	FallRate     float32
	GroundOffset float32

	JumpSteps     int
	JumpRise      float32
	JumpDelayUnit int64
	JumpPause     int64
}

// DefaultMovementSettings returns the reference tuning.
func DefaultMovementSettings() MovementSettings {
	return MovementSettings{
		MoveStep:      MoveStep,
		TurnRate:      TurnRate,
		LookRate:      LookRate,
		FallRate:      FallRate,
		GroundOffset:  GroundOffset,
		JumpSteps:     JumpSteps,
		JumpRise:      JumpRise,
		JumpDelayUnit: JumpDelayUnit,
		JumpPause:     JumpPause,
	}
}

// Controller advances a State one fixed tick at a time. It also owns the
// in-flight jump script, which runs on the caller's clock.
type Controller struct {
	Settings MovementSettings
	jump     jumpScript
}

// NewController returns a controller with the given settings.
func NewController(settings MovementSettings) *Controller {
	return &Controller{Settings: settings}
}

// Tick runs one simulation step at time now.
func (c *Controller) Tick(s *State, vol physics.Volume, now int64) {
	defer profiling.Track("player.Tick")()

	c.advanceJump(s, now)
	c.moveHorizontal(s, vol)
	c.rotate(s)
	if !c.jump.active {
		c.applyVertical(s, vol)
	}
}

func (c *Controller) moveHorizontal(s *State, vol physics.Volume) {
	step := c.Settings.MoveStep
	front := s.Heading()
	// Heading rotated by +90°.
	right := mgl32.Vec3{-front.Y(), front.X(), 0}

	if s.Active(IntentForward) {
		s.Position = physics.TryMove(vol, s.Position, front.Mul(step))
	}
	if s.Active(IntentBackward) {
		s.Position = physics.TryMove(vol, s.Position, front.Mul(-step))
	}
	if s.Active(IntentStrafeRight) {
		s.Position = physics.TryMove(vol, s.Position, right.Mul(step))
	}
	if s.Active(IntentStrafeLeft) {
		s.Position = physics.TryMove(vol, s.Position, right.Mul(-step))
	}
}

func (c *Controller) rotate(s *State) {
	if s.Active(IntentTurnLeft) {
		s.Yaw = WrapYaw(s.Yaw - c.Settings.TurnRate)
	}
	if s.Active(IntentTurnRight) {
		s.Yaw = WrapYaw(s.Yaw + c.Settings.TurnRate)
	}
	if s.Active(IntentLookDown) {
		s.Pitch = ClampPitch(s.Pitch - c.Settings.LookRate)
	}
	if s.Active(IntentLookUp) {
		s.Pitch = ClampPitch(s.Pitch + c.Settings.LookRate)
	}
}

// applyVertical falls while the cell below is empty and otherwise snaps the
// eye to its resting height in the current cell.
func (c *Controller) applyVertical(s *State, vol physics.Volume) {
	if !physics.CellBelowBlocks(vol, s.Position) {
		s.Position[2] -= c.Settings.FallRate
		s.Vertical = Falling
		return
	}
	s.Position[2] = float32(math.Floor(float64(s.Position.Z()))) + c.Settings.GroundOffset
	s.Vertical = Grounded
}
