// Package config loads optional startup settings from an INI file.
//
// Example:
//
//	[defaults]
//	velocity  = 10
//	density   = 998.2
//	viscosity = 1.002e-3
//	length    = 0.25
//	yplus     = 30
//
//	[window]
//	width  = 420
//	height = 260
//
//	[log]
//	level = debug
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"yplus-tool/internal/yplus"
)

// Environment variables consulted when no explicit value is given.
const (
	EnvConfigPath = "YPLUS_CONFIG"
	EnvLogLevel   = "YPLUS_LOG_LEVEL"
)

// Built-in window size and log level.
const (
	DefaultWindowWidth  = 380
	DefaultWindowHeight = 260
	DefaultLogLevel     = "warn"
)

// Config holds the startup settings for both GUI and CLI modes.
type Config struct {
	Defaults     yplus.Fields
	WindowWidth  int
	WindowHeight int
	LogLevel     string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults:     yplus.DefaultFields(),
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		LogLevel:     levelFromEnv(DefaultLogLevel),
	}
}

// Load reads the INI file at path. An empty path falls back to $YPLUS_CONFIG;
// if that is empty too, or the file does not exist, the built-in configuration
// is returned.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}

	file, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return fromFile(file), nil
}

// Parse reads configuration from raw INI data.
func Parse(data []byte) (Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return fromFile(file), nil
}

func fromFile(file *ini.File) Config {
	d := yplus.DefaultFields()
	defaults := file.Section("defaults")
	window := file.Section("window")

	cfg := Config{
		Defaults: yplus.Fields{
			Velocity:  defaults.Key("velocity").MustString(d.Velocity),
			Density:   defaults.Key("density").MustString(d.Density),
			Viscosity: defaults.Key("viscosity").MustString(d.Viscosity),
			Length:    defaults.Key("length").MustString(d.Length),
			YPlus:     defaults.Key("yplus").MustString(d.YPlus),
		},
		WindowWidth:  window.Key("width").MustInt(DefaultWindowWidth),
		WindowHeight: window.Key("height").MustInt(DefaultWindowHeight),
		LogLevel:     file.Section("log").Key("level").MustString(levelFromEnv(DefaultLogLevel)),
	}

	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = DefaultWindowWidth
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = DefaultWindowHeight
	}
	return cfg
}

func levelFromEnv(fallback string) string {
	if v := os.Getenv(EnvLogLevel); v != "" {
		return v
	}
	return fallback
}
