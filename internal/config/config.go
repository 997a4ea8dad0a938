// Package config loads the demo's YAML configuration: log level, tick rate
// and the virtual axis bindings handed to the input engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/nowsprinting/test-helper.input/core/engine"
	game_log "github.com/nowsprinting/test-helper.input/internal/log"
	"gopkg.in/yaml.v3"
)

// LocalPath is checked when no explicit path is given.
const LocalPath = "configs/input.yaml"

//go:embed defaults.yaml
var defaultYAML []byte

type Config struct {
	LogLevel string               `yaml:"log_level"`
	TPS      int                  `yaml:"tps"`
	Axes     []engine.AxisBinding `yaml:"axes"`
}

// Default returns the embedded configuration.
func Default() Config {
	cfg, err := parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the configuration.
// Search order: customPath -> ./configs/input.yaml -> embedded default
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if len(cfg.Axes) == 0 {
		cfg.Axes = engine.DefaultBindings()
	}
	return cfg, nil
}

// Level is the parsed log level.
func (c Config) Level() game_log.Level { return game_log.LevelFromString(c.LogLevel) }

// NewEngine compiles the configured axes into an input engine.
func (c Config) NewEngine(logger *game_log.Logger) (*engine.Engine, error) {
	e, err := engine.New(logger, c.Axes)
	if err != nil {
		return nil, fmt.Errorf("axis bindings: %w", err)
	}
	return e, nil
}
