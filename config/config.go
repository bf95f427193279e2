// Package config loads runner settings from defaults, a YAML file and the
// environment. Priority: Flag > Env > File > Default. Flags are applied by
// the caller after Load.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"strcmpbench/report"
	"strcmpbench/sweep"
)

// DefaultEnvPrefix is the environment variable prefix.
// STRCMPBENCH_SWEEP_MIN maps to sweep.min.
const DefaultEnvPrefix = "STRCMPBENCH_"

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Filter    string      `koanf:"filter"`
	Count     int         `koanf:"count"`
	Format    string      `koanf:"format"`
	Output    string      `koanf:"output"`
	BenchTime string      `koanf:"benchtime"`
	History   string      `koanf:"history"`
	Log       LogConfig   `koanf:"log"`
	Sweep     SweepConfig `koanf:"sweep"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

type SweepConfig struct {
	Min        int `koanf:"min"`
	Max        int `koanf:"max"`
	Multiplier int `koanf:"multiplier"`
}

func Default() Config {
	return Config{
		Count:  1,
		Format: string(report.FormatConsole),
		Log:    LogConfig{Level: "info"},
		Sweep: SweepConfig{
			Min:        sweep.DefaultMin,
			Max:        sweep.DefaultMax,
			Multiplier: sweep.DefaultMultiplier,
		},
	}
}

// Sizes resolves the configured sweep.
func (c Config) Sizes() ([]int, error) {
	return sweep.Range(c.Sweep.Min, c.Sweep.Max, c.Sweep.Multiplier)
}

func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("%w: count must be >= 1, got %d", ErrInvalidConfig, c.Count)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Sizes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

type Option func(*Loader)

func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns Default() overlaid with the config file (if any) and then the
// environment.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", l.filePath, err)
		}
	}

	envTransformer := func(s string) string {
		s = strings.TrimPrefix(s, l.envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "_", ".")
	}
	if err := l.k.Load(env.Provider(l.envPrefix, ".", envTransformer), nil); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}

	if err := l.k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
