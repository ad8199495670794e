package main

import (
	"time"

	"voxcast/internal/config"
	"voxcast/internal/game"
	"voxcast/internal/graphics"
	"voxcast/internal/graphics/renderer"
	"voxcast/internal/input"
	"voxcast/internal/logging"
	"voxcast/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 16 * time.Millisecond

// App is the presentation loop. It only reads session snapshots and
// submits commands; the simulation runs on its own goroutine.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	session      *game.Session
	raycaster    *graphics.Raycaster
	renderer     *renderer.Renderer

	fpsLimiter *game.FPSLimiter
	frames     game.FrameCounter
	suspended  bool
}

func NewApp(window *glfw.Window, session *game.Session, settings graphics.RenderSettings) (*App, error) {
	r, err := renderer.NewRenderer()
	if err != nil {
		return nil, err
	}
	fbW, fbH := window.GetFramebufferSize()
	r.SetViewport(fbW, fbH)

	a := &App{
		window:       window,
		inputManager: input.NewInputManager(session),
		session:      session,
		raycaster:    graphics.NewRaycaster(settings),
		renderer:     r,
		fpsLimiter:   game.NewFPSLimiter(),
	}
	a.setupInputHandlers()
	return a, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) Dispose() {
	a.raycaster.Close()
	a.renderer.Dispose()
	a.window.Destroy()
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.inputManager.JustPressed(game.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.inputManager.JustPressed(game.ActionToggleHUD) {
		config.ToggleShowHUD()
	}

	if !a.suspended {
		a.renderFrame()
		func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
	}

	processingDuration := time.Since(startTick)
	if processingDuration > slowFrame {
		logging.Debugf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopNCurrentFrame(5))
	}
	if fps, ok := a.frames.Frame(time.Now()); ok {
		logging.Debugf("FPS: %d (%d rays last frame)", fps, profiling.FrameRays())
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait(a.suspended)
}

func (a *App) renderFrame() {
	snap := a.session.Snapshot()
	img := a.raycaster.Render(snap.Player, snap.Grid).Image()
	if config.GetShowHUD() {
		graphics.DrawStatus(img, graphics.StatusLines(snap.Player, int64(snap.Tick), a.frames.FPS())...)
	}
	a.renderer.Draw(img)
}

// requestSave goes through the session so the saved grid is a snapshot
// taken at a tick boundary.
func (a *App) requestSave(reason string) {
	logging.Debugf("Requesting save: %s", reason)
	a.session.Submit(game.Press(game.ActionSave))
}

func (a *App) setupInputHandlers() {
	a.inputManager.SetKeyCallback(a.window)

	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		a.renderer.SetViewport(fbWidth, fbHeight)
	})

	a.window.SetIconifyCallback(func(w *glfw.Window, iconified bool) {
		a.suspended = iconified
		if iconified {
			a.inputManager.ReleaseAll()
			a.requestSave("iconified")
		}
	})

	a.window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			a.inputManager.ReleaseAll()
			a.requestSave("focus lost")
		}
	})
}
