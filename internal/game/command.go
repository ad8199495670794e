package game

import "voxcast/internal/player"

// Action represents a logical input action, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionLookUp
	ActionLookDown
	ActionJump
	ActionPlaceBlock
	ActionRemoveBlock
	ActionSave
	// Presentation-only actions; the session ignores them.
	ActionToggleHUD
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveForward:  "move_forward",
	ActionMoveBackward: "move_backward",
	ActionStrafeLeft:   "strafe_left",
	ActionStrafeRight:  "strafe_right",
	ActionTurnLeft:     "turn_left",
	ActionTurnRight:    "turn_right",
	ActionLookUp:       "look_up",
	ActionLookDown:     "look_down",
	ActionJump:         "jump",
	ActionPlaceBlock:   "place_block",
	ActionRemoveBlock:  "remove_block",
	ActionSave:         "save",
	ActionToggleHUD:    "toggle_hud",
	ActionQuit:         "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// IsCommand reports whether the action is handled by the simulation.
func (a Action) IsCommand() bool {
	return a >= 0 && a < ActionToggleHUD
}

// Intent returns the held intent an action drives, if any.
func (a Action) Intent() (player.Intent, bool) {
	switch a {
	case ActionMoveForward:
		return player.IntentForward, true
	case ActionMoveBackward:
		return player.IntentBackward, true
	case ActionStrafeLeft:
		return player.IntentStrafeLeft, true
	case ActionStrafeRight:
		return player.IntentStrafeRight, true
	case ActionTurnLeft:
		return player.IntentTurnLeft, true
	case ActionTurnRight:
		return player.IntentTurnRight, true
	case ActionLookUp:
		return player.IntentLookUp, true
	case ActionLookDown:
		return player.IntentLookDown, true
	default:
		return 0, false
	}
}

// Command is one press or release transition delivered to the session.
type Command struct {
	Action  Action
	Pressed bool
}

// Press and Release build the two transitions of an action.
func Press(a Action) Command   { return Command{Action: a, Pressed: true} }
func Release(a Action) Command { return Command{Action: a, Pressed: false} }
