// Package config loads settings from a TOML file with environment
// overrides and keeps the bot token next to it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultDirName        = ".savecnt"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "savecnt.db"
	DefaultLogName        = "savecnt.log"
	DefaultExportDirName  = "exports"
	TokenFileName         = "token.txt"

	DefaultPageSize    = 25
	DefaultPollTimeout = 60
)

// Environment variables. Each one overrides the matching file setting.
const (
	EnvConfig      = "SAVECNT_CONFIG"
	EnvDB          = "SAVECNT_DB"
	EnvLog         = "SAVECNT_LOG"
	EnvToken       = "SAVECNT_TOKEN"
	EnvPageSize    = "SAVECNT_PAGE_SIZE"
	EnvPollTimeout = "SAVECNT_POLL_TIMEOUT"
)

// Config is the process configuration. Relative paths in the file are
// resolved against the directory holding it.
type Config struct {
	DBPath      string `toml:"db_path"`
	LogPath     string `toml:"log_path"`
	ExportDir   string `toml:"export_dir"`
	PageSize    int    `toml:"page_size"`
	PollTimeout int    `toml:"poll_timeout"`

	// Token comes from EnvToken only; the file never holds it.
	Token string `toml:"-"`

	path string
}

// DefaultPath returns $SAVECNT_CONFIG or ~/.savecnt/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName, DefaultConfigFileName), nil
}

// Load reads the config at DefaultPath, creating it on first run, and
// applies environment overrides.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadOrCreate(path)
	if err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadOrCreate reads path, writing the defaults there if it does not exist.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	cfg.path = path

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg.resolved(), err
		}
		return cfg.resolved(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg.resolved(), fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg.resolved(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogName
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = DefaultExportDirName
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}
	return cfg.resolved(), nil
}

// Path is the file the config was loaded from.
func (c Config) Path() string { return c.path }

// Dir is the directory holding the config file.
func (c Config) Dir() string { return filepath.Dir(c.path) }

// TokenPath is where the bot token is stored.
func (c Config) TokenPath() string { return filepath.Join(c.Dir(), TokenFileName) }

func (c Config) resolved() Config {
	dir := c.Dir()
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.DBPath = abs(c.DBPath)
	c.LogPath = abs(c.LogPath)
	c.ExportDir = abs(c.ExportDir)
	return c
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PageSize = n
		}
	}
	if v := os.Getenv(EnvPollTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PollTimeout = n
		}
	}
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:      DefaultDBName,
		LogPath:     DefaultLogName,
		ExportDir:   DefaultExportDirName,
		PageSize:    DefaultPageSize,
		PollTimeout: DefaultPollTimeout,
	}
}
