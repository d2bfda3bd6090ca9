// Package config loads the quadrat configuration file.
//
// Configuration lives in a TOML file (~/.config/quadrat/config.toml by
// default) and provides defaults for drawing parameters, the watch tick
// interval, the server address, and the cache backend. A missing file is
// not an error: all values fall back to built-in defaults, and bad values
// are clamped rather than rejected so a stale config never blocks the CLI.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName is the application name used for config and cache directories.
const appName = "quadrat"

// Config is the full application configuration.
type Config struct {
	Drawing DrawingConfig `toml:"drawing"`
	Watch   WatchConfig   `toml:"watch"`
	Server  ServerConfig  `toml:"server"`
	Cache   CacheConfig   `toml:"cache"`
}

// DrawingConfig holds default drawing parameters.
type DrawingConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Separation float64 `toml:"separation"`
	Quantity   int     `toml:"quantity"`
	Style      string  `toml:"style"`
}

// WatchConfig holds defaults for the interactive watch command.
type WatchConfig struct {
	TickMillis int `toml:"tick_ms"`
}

// ServerConfig holds defaults for the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"` // "file", "redis", or "none"
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Drawing: DrawingConfig{
			Width:      800,
			Height:     600,
			Separation: 5,
			Quantity:   50,
			Style:      "flat",
		},
		Watch: WatchConfig{
			TickMillis: 100,
		},
		Server: ServerConfig{
			Addr: ":8418",
		},
		Cache: CacheConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
		},
	}
}

// Load reads the config file at path, applying defaults for anything the
// file omits. A missing file returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	cfg.clamp()
	return cfg, nil
}

// LoadDefault loads the config from QUADRAT_CONFIG if set, otherwise from
// the standard location.
func LoadDefault() (Config, error) {
	if path := os.Getenv("QUADRAT_CONFIG"); path != "" {
		return Load(path)
	}
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns the standard config file location using the XDG
// convention (~/.config/quadrat/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the artifact cache directory using the XDG convention
// (~/.cache/quadrat/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// clamp fixes out-of-range values in place.
func (c *Config) clamp() {
	d := Default()
	if c.Drawing.Width <= 0 {
		c.Drawing.Width = d.Drawing.Width
	}
	if c.Drawing.Height <= 0 {
		c.Drawing.Height = d.Drawing.Height
	}
	if c.Drawing.Separation < 0 {
		c.Drawing.Separation = 0
	}
	if c.Drawing.Quantity < 1 {
		c.Drawing.Quantity = d.Drawing.Quantity
	}
	if c.Drawing.Style != "flat" && c.Drawing.Style != "sketch" {
		c.Drawing.Style = d.Drawing.Style
	}
	if c.Watch.TickMillis < 1 {
		c.Watch.TickMillis = d.Watch.TickMillis
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	switch c.Cache.Backend {
	case "file", "redis", "none":
	default:
		c.Cache.Backend = d.Cache.Backend
	}
}
