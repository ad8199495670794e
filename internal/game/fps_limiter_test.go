package game

import (
	"testing"
	"time"

	"voxcast/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestFPSLimiterUncapped(t *testing.T) {
	prev := config.GetFPSLimit()
	t.Cleanup(func() { config.SetFPSLimit(prev) })
	config.SetFPSLimit(0)

	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait(false)
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestFPSLimiterPaces(t *testing.T) {
	prev := config.GetFPSLimit()
	t.Cleanup(func() { config.SetFPSLimit(prev) })
	config.SetFPSLimit(100)

	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait(false)
	}
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

func TestFrameCounter(t *testing.T) {
	var c FrameCounter
	base := time.Unix(0, 0)

	for i := 0; i < 30; i++ {
		_, ok := c.Frame(base.Add(time.Duration(i) * 10 * time.Millisecond))
		assert.False(t, ok)
	}
	fps, ok := c.Frame(base.Add(time.Second))
	assert.True(t, ok)
	assert.Equal(t, 31, fps)
	assert.Equal(t, 31, c.FPS())
}
