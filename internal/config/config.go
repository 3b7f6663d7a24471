// Package config provides Viper-based configuration loading for the adventure.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// StartTimeLayout is the layout of game.start_time.
const StartTimeLayout = "2006-01-02T15:04:05"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap output path: "stderr", "stdout", or a file path.
	Output string `mapstructure:"output"`
}

// GameConfig holds the content source and the game clock settings.
type GameConfig struct {
	// ContentPath is a content YAML file. Empty means the built-in game.
	ContentPath string `mapstructure:"content_path"`
	// StartTime is the game time at the first prompt, in StartTimeLayout.
	StartTime string `mapstructure:"start_time"`
	// TimeLimit is the game time available before the game is lost.
	TimeLimit time.Duration `mapstructure:"time_limit"`
	// TimeScale is game seconds per real second.
	TimeScale float64 `mapstructure:"time_scale"`
}

// Start parses StartTime.
//
// Postcondition: Returns the start time in UTC or a non-nil error.
func (g GameConfig) Start() (time.Time, error) {
	t, err := time.ParseInLocation(StartTimeLayout, g.StartTime, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing game.start_time: %w", err)
	}
	return t, nil
}

// DisplayConfig holds console output settings.
type DisplayConfig struct {
	// WrapWidth is the output column width.
	WrapWidth int `mapstructure:"wrap_width"`
	// WrapMode is "classic" or "reflow".
	WrapMode string `mapstructure:"wrap_mode"`
	// Prompt is printed before each command is read.
	Prompt string `mapstructure:"prompt"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Display DisplayConfig `mapstructure:"display"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDisplay(c.Display); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if _, err := g.Start(); err != nil {
		errs = append(errs, fmt.Sprintf("game.start_time must match %s, got %q", StartTimeLayout, g.StartTime))
	}
	if g.TimeLimit <= 0 {
		errs = append(errs, fmt.Sprintf("game.time_limit must be positive, got %s", g.TimeLimit))
	}
	if g.TimeScale <= 0 {
		errs = append(errs, fmt.Sprintf("game.time_scale must be positive, got %g", g.TimeScale))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateDisplay(d DisplayConfig) error {
	var errs []string
	if d.WrapWidth < 20 {
		errs = append(errs, fmt.Sprintf("display.wrap_width must be >= 20, got %d", d.WrapWidth))
	}
	validModes := map[string]bool{"classic": true, "reflow": true}
	if !validModes[d.WrapMode] {
		errs = append(errs, fmt.Sprintf("display.wrap_mode must be one of [classic, reflow], got %q", d.WrapMode))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file.
//
// Precondition: path is empty or names a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ADVENTURE_ prefix
	v.SetEnvPrefix("ADVENTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("game.content_path", "")
	v.SetDefault("game.start_time", "2018-08-14T07:15:00")
	v.SetDefault("game.time_limit", "5m")
	v.SetDefault("game.time_scale", 1.0)

	v.SetDefault("display.wrap_width", 70)
	v.SetDefault("display.wrap_mode", "classic")
	v.SetDefault("display.prompt", "> ")
}
