package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"runtime"
	"sync"

	"voxcast/internal/config"
	"voxcast/internal/game"
	"voxcast/internal/graphics"
	"voxcast/internal/logging"
	"voxcast/internal/player"
	"voxcast/internal/profiling"
	"voxcast/internal/storage"
	"voxcast/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file (default $"+config.EnvPath+")")
	snapshotPath := flag.String("snapshot", "", "render one frame at the spawn pose to this PNG and exit")
	snapshotScale := flag.Int("scale", 2, "upscale factor for -snapshot")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if level, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		logging.Warnf("%v, using %s", err, level)
	} else {
		logging.SetLevel(level)
	}
	config.ApplyRuntime(cfg)

	store, err := openStore(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open map storage: %v", err)
	}
	grid := storage.LoadGrid(store, cfg.Grid.Layers, cfg.Grid.Rows, cfg.Grid.Cols, freshWorld(cfg.Grid))
	spawn := spawnState(cfg.Player)

	if *snapshotPath != "" {
		if err := writeSnapshot(*snapshotPath, *snapshotScale, grid, spawn, renderSettings(cfg)); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		logging.Infof("Wrote %s", *snapshotPath)
		return
	}

	if cfg.Metrics.Addr != "" {
		serveMetrics(cfg.Metrics.Addr)
	}

	saver := storage.NewSaver(store)
	session := game.NewSession(grid, spawn, saver, sessionOptions(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	var sim sync.WaitGroup
	sim.Add(1)
	go func() {
		defer sim.Done()
		session.Run(ctx)
	}()

	// Runs on window close and on SIGINT/SIGTERM.
	closer.Bind(func() {
		cancel()
		sim.Wait()
		if err := saver.SaveNow(session.Snapshot().Grid); err != nil {
			logging.Errorf("Final save failed: %v", err)
		}
		saver.Close()
		logging.Infof("Bye")
	})

	if err := glfw.Init(); err != nil {
		closer.Fatalln("Failed to initialize glfw:", err)
	}

	window, err := setupWindow(cfg.Window)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln("Failed to create window:", err)
	}

	app, err := NewApp(window, session, renderSettings(cfg))
	if err != nil {
		glfw.Terminate()
		closer.Fatalln("Failed to set up renderer:", err)
	}
	app.Run()
	app.Dispose()
	glfw.Terminate()

	closer.Close()
}

func openStore(cfg config.StorageConfig) (storage.MapStore, error) {
	switch cfg.Backend {
	case config.BackendGData:
		return storage.OpenGData(cfg.AppName, storage.DefaultItemKey)
	default:
		return storage.NewFileStore(cfg.Path), nil
	}
}

// freshWorld builds the grid used when no saved map can be loaded.
func freshWorld(cfg config.GridConfig) func() *world.Grid {
	if cfg.Seed == 0 {
		return nil
	}
	return func() *world.Grid {
		logging.Infof("Generating terrain with seed %d", cfg.Seed)
		return world.NewGenerator(cfg.Seed).Generate(cfg.Layers, cfg.Rows, cfg.Cols)
	}
}

func spawnState(cfg config.PlayerConfig) player.State {
	return player.New(mgl32.Vec3{cfg.SpawnX, cfg.SpawnY, cfg.SpawnZ}, cfg.Yaw, cfg.Pitch)
}

func sessionOptions(cfg *config.Config) game.Options {
	opts := game.DefaultOptions()
	opts.TickPeriod = cfg.Sim.TickPeriod
	opts.TimeUnit = cfg.Sim.TimeUnit
	opts.QueueSize = cfg.Sim.QueueSize
	opts.Movement.MoveStep = cfg.Player.MoveStep
	opts.Movement.TurnRate = cfg.Player.TurnRate
	opts.Movement.LookRate = cfg.Player.LookRate
	opts.Movement.FallRate = cfg.Player.FallRate
	opts.Editor = player.Editor{StepSize: cfg.Ray.StepSize, MaxDistance: cfg.Ray.MaxDistance}
	return opts
}

func renderSettings(cfg *config.Config) graphics.RenderSettings {
	return graphics.RenderSettings{
		Width:       cfg.Render.Width,
		Height:      cfg.Render.Height,
		SampleStep:  cfg.Render.SampleStep,
		FOV:         cfg.Render.FOV,
		VFOV:        cfg.Render.VFOV,
		StepSize:    cfg.Ray.StepSize,
		MaxDistance: cfg.Ray.MaxDistance,
		Workers:     cfg.Render.Workers,
	}
}

func serveMetrics(addr string) {
	if err := profiling.Register(prometheus.DefaultRegisterer); err != nil {
		logging.Errorf("Failed to register metrics: %v", err)
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		logging.Infof("Serving metrics on %s/metrics", addr)
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Errorf("Metrics server stopped: %v", err)
		}
	}()
}
