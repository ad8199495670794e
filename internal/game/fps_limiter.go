package game

import (
	"time"

	"voxcast/internal/config"
)

// SuspendedFPS caps presentation while the window is iconified.
const SuspendedFPS = 10

// FPSLimiter paces the presentation loop.
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame should be presented based on the FPS limit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait(suspended bool) {
	effectiveLimit := config.GetFPSLimit()
	if suspended {
		effectiveLimit = SuspendedFPS
	}

	if effectiveLimit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// spin out the last few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// resync after a hitch instead of racing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// FrameCounter reports frames per second once every second.
type FrameCounter struct {
	frames    int
	lastCheck time.Time
	fps       int
}

// Frame records one presented frame at now. It returns the rate and true
// when a new one-second window has closed.
func (c *FrameCounter) Frame(now time.Time) (int, bool) {
	if c.lastCheck.IsZero() {
		c.lastCheck = now
	}
	c.frames++
	if now.Sub(c.lastCheck) < time.Second {
		return c.fps, false
	}
	c.fps = c.frames
	c.frames = 0
	c.lastCheck = now
	return c.fps, true
}

// FPS returns the rate measured over the last full second.
func (c *FrameCounter) FPS() int {
	return c.fps
}
