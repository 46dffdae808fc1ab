// Package config loads the application configuration from an optional
// claudeye.yaml file and CLAUDEYE_* environment variables. Environment
// variables take precedence over the file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/claudeye/claudeye/internal/core/domain"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "claudeye.yaml"

const (
	defaultConcurrency  = 2
	defaultScanInterval = 60 * time.Second
	defaultHistoryTTL   = 5 * time.Minute
	defaultListenAddr   = ":4777"
)

// Config holds all runtime settings.
type Config struct {
	// ProjectsDir is the root directory containing per-project session
	// transcripts.
	ProjectsDir string `yaml:"projects_dir"`
	// EvalsModule is the path to the operator's evals module file.
	// Empty means nothing is registered.
	EvalsModule string `yaml:"evals_module"`
	// CacheEnabled is the process-wide cache switch. Read once at
	// startup; later changes of the environment have no effect.
	CacheEnabled bool `yaml:"-"`
	// CachePath overrides the cache root directory.
	CachePath string `yaml:"cache_path"`
	// CacheRedisAddr selects the redis cache backend when non-empty.
	CacheRedisAddr string `yaml:"cache_redis"`
	// Concurrency is the scheduler worker count.
	Concurrency int `yaml:"concurrency"`
	// ScanInterval is the background scan period.
	ScanInterval time.Duration `yaml:"scan_interval"`
	// HistoryTTL is the completed-entry retention window.
	HistoryTTL time.Duration `yaml:"history_ttl"`
	// MaxSessions caps the sessions considered per scan. 0 = unlimited.
	MaxSessions int `yaml:"max_sessions"`
	// ListenAddr is the HTTP API listen address.
	ListenAddr string `yaml:"listen_addr"`
}

// Load reads claudeye.yaml from dir (when present) and applies
// environment overrides on top of the defaults.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		CacheEnabled: true,
		Concurrency:  defaultConcurrency,
		ScanInterval: defaultScanInterval,
		HistoryTTL:   defaultHistoryTTL,
		ListenAddr:   defaultListenAddr,
	}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.ProjectsDir = filepath.Join(home, ".claude", "projects")
		cfg.CachePath = filepath.Join(home, ".cache", "claudeye")
	}

	path := filepath.Join(dir, DefaultFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is the well-known config file
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file is fine; env and defaults apply.
	case err != nil:
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays the CLAUDEYE_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CLAUDEYE_PROJECTS_DIR"); v != "" {
		cfg.ProjectsDir = v
	}
	if v := os.Getenv("CLAUDEYE_EVALS_MODULE"); v != "" {
		cfg.EvalsModule = v
	}
	// "off" disables caching for the process lifetime; any other value
	// or absence leaves it enabled.
	if os.Getenv("CLAUDEYE_CACHE") == "off" {
		cfg.CacheEnabled = false
	}
	if v := os.Getenv("CLAUDEYE_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("CLAUDEYE_CACHE_REDIS"); v != "" {
		cfg.CacheRedisAddr = v
	}
	if v := os.Getenv("CLAUDEYE_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if n, ok := envInt("CLAUDEYE_QUEUE_CONCURRENCY"); ok && n > 0 {
		cfg.Concurrency = n
	}
	if n, ok := envInt("CLAUDEYE_QUEUE_INTERVAL"); ok && n > 0 {
		cfg.ScanInterval = time.Duration(n) * time.Second
	}
	if n, ok := envInt("CLAUDEYE_QUEUE_HISTORY_TTL"); ok && n > 0 {
		cfg.HistoryTTL = time.Duration(n) * time.Second
	}
	if n, ok := envInt("CLAUDEYE_QUEUE_MAX_SESSIONS"); ok && n >= 0 {
		cfg.MaxSessions = n
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
