package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file configuration.
const (
	EnvLogLevel = "DUNGEON_LOG_LEVEL"
	EnvTileset  = "DUNGEON_TILESET"
	EnvTick     = "DUNGEON_TICK"
	EnvFOV      = "DUNGEON_FOV"
)

// EmbeddedSource names the built-in defaults in Result.Source.
const EmbeddedSource = "embedded"

// Result is a loaded configuration and where it came from.
type Result struct {
	Config Config
	Source string // file path, or EmbeddedSource
}

type loader struct {
	home    func() (string, error)
	local   string
	envFile string
	getenv  func(string) string
}

func defaultLoader() loader {
	return loader{
		home:    os.UserHomeDir,
		local:   filepath.Join("configs", "config.yaml"),
		envFile: ".env",
		getenv:  os.Getenv,
	}
}

// Load loads the configuration.
// Search order: customPath -> ~/.dungeon-chase/config.yaml -> ./configs/config.yaml -> embedded default.
// A .env file in the working directory is loaded into the environment first,
// then DUNGEON_* variables override the file values. The result is validated.
func Load(customPath string) (Result, error) {
	return defaultLoader().load(customPath)
}

func (l loader) load(customPath string) (Result, error) {
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("failed to load %s: %w", l.envFile, err)
		}
	}

	res := Result{Config: Default(), Source: EmbeddedSource}

	if customPath != "" {
		// An explicit path must exist and parse.
		if err := readInto(customPath, &res.Config); err != nil {
			return Result{}, err
		}
		res.Source = customPath
	} else {
		for _, p := range l.searchPaths() {
			cfg := Default()
			if err := readInto(p, &cfg); err != nil {
				continue
			}
			res.Config, res.Source = cfg, p
			break
		}
	}

	if err := l.applyEnv(&res.Config); err != nil {
		return Result{}, err
	}
	if err := res.Config.Validate(); err != nil {
		return Result{}, fmt.Errorf("config %s: %w", res.Source, err)
	}
	return res, nil
}

func (l loader) searchPaths() []string {
	var paths []string
	if l.home != nil {
		if home, err := l.home(); err == nil && home != "" {
			paths = append(paths, filepath.Join(home, ".dungeon-chase", "config.yaml"))
		}
	}
	if l.local != "" {
		paths = append(paths, l.local)
	}
	return paths
}

// readInto decodes the file at path over cfg, so absent keys keep their
// default values.
func readInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (l loader) applyEnv(cfg *Config) error {
	getenv := l.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvTileset); v != "" {
		cfg.Assets.Tileset = v
	}
	if v := getenv(EnvTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvTick, v, err)
		}
		cfg.Sim.Tick = d
	}
	if v := getenv(EnvFOV); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvFOV, v, err)
		}
		cfg.Sim.FOVRadius = n
	}
	return nil
}

// Marshal renders cfg as YAML, for the stages command and debug output.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
