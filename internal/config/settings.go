package config

import "sync"

// RuntimeSettings holds values the presentation thread may change while
// running.
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means uncapped
	showHUD  bool
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 60,
	showHUD:  true,
}

// GetFPSLimit returns the presentation frame cap.
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap; negative values mean uncapped.
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetShowHUD reports whether the status overlay is drawn.
func GetShowHUD() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.showHUD
}

func SetShowHUD(show bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showHUD = show
}

// ToggleShowHUD flips the overlay and returns the new value.
func ToggleShowHUD() bool {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showHUD = !globalRuntimeSettings.showHUD
	return globalRuntimeSettings.showHUD
}

// ApplyRuntime seeds the runtime settings from a loaded config.
func ApplyRuntime(cfg *Config) {
	SetFPSLimit(cfg.Render.FPSLimit)
	SetShowHUD(cfg.Render.ShowHUD)
}
