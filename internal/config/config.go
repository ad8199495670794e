package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "VOXCAST_CONFIG"

// Config is the root of the YAML configuration. Every section is optional;
// missing keys keep their defaults.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Sim     SimConfig     `yaml:"sim"`
	Player  PlayerConfig  `yaml:"player"`
	Ray     RayConfig     `yaml:"ray"`
	Render  RenderConfig  `yaml:"render"`
	Storage StorageConfig `yaml:"storage"`
	Metrics MetricsConfig `yaml:"metrics"`
	Window  WindowConfig  `yaml:"window"`
	Log     LogConfig     `yaml:"log"`
}

type GridConfig struct {
	Layers int   `yaml:"layers"`
	Rows   int   `yaml:"rows"`
	Cols   int   `yaml:"cols"`
	Seed   int64 `yaml:"seed"` // non-zero generates terrain when no map is saved
}

type SimConfig struct {
	TickPeriod int64         `yaml:"tick_period"` // time units per tick
	TimeUnit   time.Duration `yaml:"time_unit"`
	QueueSize  int           `yaml:"queue_size"`
}

type PlayerConfig struct {
	SpawnX   float32 `yaml:"spawn_x"`
	SpawnY   float32 `yaml:"spawn_y"`
	SpawnZ   float32 `yaml:"spawn_z"`
	Yaw      float32 `yaml:"yaw"`
	Pitch    float32 `yaml:"pitch"`
	MoveStep float32 `yaml:"move_step"`
	TurnRate float32 `yaml:"turn_rate"`
	LookRate float32 `yaml:"look_rate"`
	FallRate float32 `yaml:"fall_rate"`
}

type RayConfig struct {
	StepSize    float32 `yaml:"step_size"`
	MaxDistance float32 `yaml:"max_distance"`
}

type RenderConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	SampleStep float32 `yaml:"sample_step"`
	FOV        float32 `yaml:"fov"`
	VFOV       float32 `yaml:"vfov"`
	Workers    int     `yaml:"workers"`
	FPSLimit   int     `yaml:"fps_limit"`
	ShowHUD    bool    `yaml:"show_hud"`
}

// Storage backends.
const (
	BackendFile  = "file"
	BackendGData = "gdata"
)

type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	AppName string `yaml:"app_name"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty disables the endpoint
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{Layers: 21, Rows: 64, Cols: 64},
		Sim: SimConfig{
			TickPeriod: 20,
			TimeUnit:   time.Millisecond,
			QueueSize:  64,
		},
		Player: PlayerConfig{
			SpawnX:   1.0,
			SpawnY:   1.0,
			SpawnZ:   1.7,
			Yaw:      0.79,
			Pitch:    0.001,
			MoveStep: 0.05,
			TurnRate: 0.02,
			LookRate: 0.02,
			FallRate: 0.05,
		},
		Ray: RayConfig{StepSize: 0.05, MaxDistance: 9.5},
		Render: RenderConfig{
			Width:      400,
			Height:     200,
			SampleStep: 1.18,
			FOV:        1.26,
			VFOV:       0.7,
			FPSLimit:   60,
			ShowHUD:    true,
		},
		Storage: StorageConfig{Backend: BackendFile, Path: "map", AppName: "voxcast"},
		Window:  WindowConfig{Width: 800, Height: 400, Title: "voxcast"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path falls
// back to $VOXCAST_CONFIG; if that is empty too the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Layers < 1 || c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		errs = append(errs, fmt.Errorf("grid dimensions must be positive, got %dx%dx%d", c.Grid.Layers, c.Grid.Rows, c.Grid.Cols))
	}
	if c.Sim.TickPeriod <= 0 {
		errs = append(errs, errors.New("sim.tick_period must be positive"))
	}
	if c.Sim.TimeUnit <= 0 {
		errs = append(errs, errors.New("sim.time_unit must be positive"))
	}
	if c.Sim.QueueSize < 1 {
		errs = append(errs, errors.New("sim.queue_size must be at least 1"))
	}
	if c.Ray.StepSize <= 0 || c.Ray.MaxDistance <= 0 {
		errs = append(errs, errors.New("ray.step_size and ray.max_distance must be positive"))
	}
	if c.Render.Width < 1 || c.Render.Height < 1 || c.Render.SampleStep <= 0 {
		errs = append(errs, errors.New("render size and sample_step must be positive"))
	}
	if c.Render.FOV <= 0 || c.Render.VFOV <= 0 {
		errs = append(errs, errors.New("render.fov and render.vfov must be positive"))
	}
	switch c.Storage.Backend {
	case BackendFile, BackendGData:
	default:
		errs = append(errs, fmt.Errorf("unknown storage.backend %q", c.Storage.Backend))
	}
	return errors.Join(errs...)
}
