package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hrfsim/internal/session"
)

const (
	DefaultTheme    = "cyberpunk"
	DefaultLogLevel = "info"
)

type Config struct {
	// PlotTitle is shown until the title box is first edited.
	PlotTitle  string               `yaml:"plot_title"`
	Params     session.ParameterSet `yaml:"params"`
	AutoBounds bool                 `yaml:"auto_bounds"`
	Theme      string               `yaml:"theme"`
	Logging    LoggingConfig        `yaml:"logging"`
}

type LoggingConfig struct {
	// Level is a slog level name, or "trace".
	Level string `yaml:"level"`
	// File receives logs in interactive mode. Empty discards them.
	File string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		PlotTitle: session.InitialPlotTitle,
		Params:    session.DefaultParameterSet(),
		Theme:     DefaultTheme,
		Logging:   LoggingConfig{Level: DefaultLogLevel},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Merge(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge reads a YAML file over cfg. Keys missing from the file leave cfg
// untouched. The result is validated.
func Merge(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	return c.Params.Validate()
}

// SessionOptions turns the config into session options.
func (c *Config) SessionOptions() []session.Option {
	return []session.Option{
		session.WithParams(c.Params),
		session.WithPlotTitle(c.PlotTitle),
		session.WithAutoBounds(c.AutoBounds),
	}
}
