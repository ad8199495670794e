package input

import (
	"sync"

	"voxcast/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Sink receives press and release transitions of simulation actions.
type Sink interface {
	Submit(cmd game.Command) bool
}

// InputManager maps physical keys to logical actions. Transitions of
// simulation actions are forwarded to the sink as they arrive; the rest are
// polled by the presentation loop with JustPressed.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]game.Action

	currentState [game.ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [game.ActionCount]bool
	justReleased [game.ActionCount]bool

	sink Sink
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager(sink Sink) *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]game.Action),
		sink:         sink,
	}

	im.BindKey(glfw.KeyW, game.ActionMoveForward)
	im.BindKey(glfw.KeyS, game.ActionMoveBackward)
	im.BindKey(glfw.KeyA, game.ActionStrafeLeft)
	im.BindKey(glfw.KeyD, game.ActionStrafeRight)
	im.BindKey(glfw.KeyLeft, game.ActionTurnLeft)
	im.BindKey(glfw.KeyRight, game.ActionTurnRight)
	im.BindKey(glfw.KeyUp, game.ActionLookUp)
	im.BindKey(glfw.KeyDown, game.ActionLookDown)
	im.BindKey(glfw.KeySpace, game.ActionJump)
	im.BindKey(glfw.KeyE, game.ActionPlaceBlock)
	im.BindKey(glfw.KeyQ, game.ActionRemoveBlock)
	im.BindKey(glfw.KeyF5, game.ActionSave)
	im.BindKey(glfw.KeyF3, game.ActionToggleHUD)
	im.BindKey(glfw.KeyEscape, game.ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action
func (im *InputManager) BindKey(key glfw.Key, action game.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= game.ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state.
// Key repeat counts as held and produces no new transition.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	var out []game.Command
	im.mu.Lock()
	for _, act := range actions {
		if act < 0 || act >= game.ActionCount {
			continue
		}
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
			out = append(out, game.Press(act))
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
			out = append(out, game.Release(act))
		}
		im.currentState[act] = isPressed
	}
	im.mu.Unlock()

	im.forward(out)
}

// ReleaseAll releases every held action, e.g. when the window loses focus
// and the matching key-up events will never arrive.
func (im *InputManager) ReleaseAll() {
	var out []game.Command
	im.mu.Lock()
	for act := game.Action(0); act < game.ActionCount; act++ {
		if im.currentState[act] {
			im.currentState[act] = false
			im.justReleased[act] = true
			out = append(out, game.Release(act))
		}
	}
	im.mu.Unlock()

	im.forward(out)
}

func (im *InputManager) forward(cmds []game.Command) {
	if im.sink == nil {
		return
	}
	for _, cmd := range cmds {
		if cmd.Action.IsCommand() {
			im.sink.Submit(cmd)
		}
	}
}

// SetKeyCallback sets up the GLFW key callback for this input manager
// This should be called once during initialization
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame to clear edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := game.Action(0); i < game.ActionCount; i++ {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action game.Action) bool {
	if action < 0 || action >= game.ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action game.Action) bool {
	if action < 0 || action >= game.ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action game.Action) bool {
	if action < 0 || action >= game.ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
