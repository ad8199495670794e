package player

import "voxcast/internal/physics"

// Jump arc: JumpSteps rises of JumpRise each; rise i is followed by a delay
// of i*JumpDelayUnit, and the last delay by an extra JumpPause.
const (
	JumpSteps     = 11
	JumpRise      = 0.1
	JumpDelayUnit = 10
	JumpPause     = 140
)

type jumpScript struct {
	active bool
	step   int // next rise, 1-based; JumpSteps+1 means the end event is pending
	nextAt int64
}

// TriggerJump starts the jump arc at time now. It only succeeds while the
// player is grounded on a blocking cell and no arc is running; otherwise
// nothing changes.
func (c *Controller) TriggerJump(s *State, vol physics.Volume, now int64) bool {
	if c.jump.active || s.Vertical != Grounded || !physics.CellBelowBlocks(vol, s.Position) {
		return false
	}
	s.Vertical = Jumping
	c.jump = jumpScript{active: true, step: 1, nextAt: now}
	c.advanceJump(s, now)
	return true
}

// Jumping reports whether a jump arc is in flight.
func (c *Controller) Jumping() bool {
	return c.jump.active
}

// JumpEndsAt returns the time the running arc hands control back to the
// vertical update, or false when no arc is running.
func (c *Controller) JumpEndsAt() (int64, bool) {
	if !c.jump.active {
		return 0, false
	}
	at := c.jump.nextAt
	for i := c.jump.step; i <= c.Settings.JumpSteps; i++ {
		at += int64(i) * c.Settings.JumpDelayUnit
	}
	if c.jump.step <= c.Settings.JumpSteps {
		at += c.Settings.JumpPause
	}
	return at, true
}

// CancelJump stops a running arc where it is. Input never calls this; it
// exists for callers that own the simulation loop.
func (c *Controller) CancelJump(s *State) {
	if !c.jump.active {
		return
	}
	c.jump = jumpScript{}
	s.Vertical = Grounded
}

// advanceJump applies every scripted event due at or before now.
func (c *Controller) advanceJump(s *State, now int64) {
	for c.jump.active && now >= c.jump.nextAt {
		if c.jump.step > c.Settings.JumpSteps {
			c.jump = jumpScript{}
			s.Vertical = Grounded
			return
		}
		s.Position[2] += c.Settings.JumpRise
		c.jump.nextAt += int64(c.jump.step) * c.Settings.JumpDelayUnit
		if c.jump.step == c.Settings.JumpSteps {
			c.jump.nextAt += c.Settings.JumpPause
		}
		c.jump.step++
	}
}
