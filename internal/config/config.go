// Package config loads the game configuration from YAML with embedded
// defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// WinAction is what clicking the win screen does.
type WinAction string

const (
	WinPop  WinAction = "pop"  // back to stage select
	WinQuit WinAction = "quit" // exit the game
)

// Config is the full game configuration.
type Config struct {
	LogLevel  string    `yaml:"log_level"`
	Window    Window    `yaml:"window"`
	Sim       Sim       `yaml:"sim"`
	Assets    Assets    `yaml:"assets"`
	Stages    []Stage   `yaml:"stages"`
	WinAction WinAction `yaml:"win_action"`
}

// Window defines the game window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Sim defines maze simulation parameters.
type Sim struct {
	Tick      time.Duration `yaml:"tick"`       // fixed movement tick period
	FOVRadius int           `yaml:"fov_radius"` // tiles; a map's meta value wins
	Deadzone  float64       `yaml:"deadzone"`   // per-axis stick deadzone
}

// Assets defines asset paths.
type Assets struct {
	Tileset string `yaml:"tileset"`
}

// StageKind selects the game mode a stage is played in.
type StageKind string

const (
	KindMaze  StageKind = "maze"  // tile maze with a goal, the default
	KindChase StageKind = "chase" // free movement, collect every point
)

// Stage is one entry on the stage-select screen. For maze stages Map is a
// JSON map file; when it is empty the stage is generated from Seed at
// Width x Height. Chase stages scatter Points pickups, placed from Seed
// (0 = different every run).
type Stage struct {
	Name   string    `yaml:"name"`
	Kind   StageKind `yaml:"kind,omitempty"`
	Map    string    `yaml:"map,omitempty"`
	Seed   int64     `yaml:"seed,omitempty"`
	Width  int       `yaml:"width,omitempty"`
	Height int       `yaml:"height,omitempty"`
	Points int       `yaml:"points,omitempty"`
}

// Chase reports whether the stage is played in chase mode.
func (s Stage) Chase() bool { return s.Kind == KindChase }

// Generated reports whether a maze stage has no map file.
func (s Stage) Generated() bool { return !s.Chase() && s.Map == "" }

// Level parses LogLevel, defaulting to info when it is empty.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Sim.Tick <= 0 {
		return fmt.Errorf("%w: sim.tick must be positive, got %s", ErrInvalid, c.Sim.Tick)
	}
	if c.Sim.FOVRadius < 1 {
		return fmt.Errorf("%w: sim.fov_radius must be at least 1, got %d", ErrInvalid, c.Sim.FOVRadius)
	}
	if c.Sim.Deadzone < 0 || c.Sim.Deadzone >= 1 {
		return fmt.Errorf("%w: sim.deadzone must be in [0,1), got %g", ErrInvalid, c.Sim.Deadzone)
	}
	if c.Assets.Tileset == "" {
		return fmt.Errorf("%w: assets.tileset is empty", ErrInvalid)
	}
	if len(c.Stages) == 0 {
		return fmt.Errorf("%w: no stages", ErrInvalid)
	}
	for i, s := range c.Stages {
		if s.Name == "" {
			return fmt.Errorf("%w: stage %d has no name", ErrInvalid, i)
		}
		switch s.Kind {
		case "", KindMaze:
		case KindChase:
			if s.Points <= 0 {
				return fmt.Errorf("%w: chase stage %q needs points > 0", ErrInvalid, s.Name)
			}
		default:
			return fmt.Errorf("%w: stage %q has unknown kind %q", ErrInvalid, s.Name, s.Kind)
		}
		if s.Generated() && (s.Width < 0 || s.Height < 0) {
			return fmt.Errorf("%w: stage %q has a negative size", ErrInvalid, s.Name)
		}
	}
	switch c.WinAction {
	case WinPop, WinQuit:
	default:
		return fmt.Errorf("%w: win_action %q", ErrInvalid, c.WinAction)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}
