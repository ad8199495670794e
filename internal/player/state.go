package player

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Start pose used when no other spawn is configured.
const (
	SpawnX     = 1.0
	SpawnY     = 1.0
	SpawnZ     = 1.7
	SpawnYaw   = 0.79
	SpawnPitch = 0.001
)

// Intent is a held movement or look input.
type Intent int

const (
	IntentForward Intent = iota
	IntentBackward
	IntentStrafeLeft
	IntentStrafeRight
	IntentTurnLeft
	IntentTurnRight
	IntentLookUp
	IntentLookDown
	IntentCount // Sentinel value for array sizing
)

// VerticalState is the vertical-motion state of the player.
type VerticalState int

const (
	Grounded VerticalState = iota
	Jumping
	Falling
)

func (v VerticalState) String() string {
	switch v {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// State is the player's position and orientation. Position is the eye
// position in grid units (x, y, z); Yaw stays in [0, 2π) and Pitch in
// [-π/2, π/2].
type State struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Intents  [IntentCount]bool
	Vertical VerticalState
}

// New returns a grounded state at pos with a normalized orientation.
func New(pos mgl32.Vec3, yaw, pitch float32) State {
	return State{
		Position: pos,
		Yaw:      WrapYaw(yaw),
		Pitch:    ClampPitch(pitch),
		Vertical: Grounded,
	}
}

// NewAtSpawn returns the default start state.
func NewAtSpawn() State {
	return New(mgl32.Vec3{SpawnX, SpawnY, SpawnZ}, SpawnYaw, SpawnPitch)
}

// SetIntent holds or releases an intent. Unknown intents are ignored.
func (s *State) SetIntent(i Intent, on bool) {
	if i < 0 || i >= IntentCount {
		return
	}
	s.Intents[i] = on
}

// Active reports whether the intent is held.
func (s State) Active(i Intent) bool {
	if i < 0 || i >= IntentCount {
		return false
	}
	return s.Intents[i]
}
