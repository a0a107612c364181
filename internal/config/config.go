package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/musaed/internal/admission"
	"github.com/five82/musaed/internal/gie"
)

// Config captures everything musaed reads at startup.
type Config struct {
	APIBase        string
	RequestTimeout time.Duration
	HealthInterval time.Duration
	LogDir         string
	Admission      admission.Rules
	// Favorites overrides the built-in catalog when non-empty.
	Favorites []gie.Service
}

const (
	defaultConfigPath     = "~/.config/musaed/config.toml"
	defaultLogDir         = "~/.local/share/musaed"
	defaultAPIBase        = "http://127.0.0.1:5000"
	defaultRequestTimeout = 10 * time.Second
	defaultHealthInterval = 3 * time.Second

	envAPIBase        = "MUSAED_API_BASE"
	envRequestTimeout = "MUSAED_REQUEST_TIMEOUT"
)

type rawFavorite struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Target      string `toml:"target"`
}

type rawConfig struct {
	APIBase        string          `toml:"api_base"`
	RequestTimeout int             `toml:"request_timeout"`
	HealthInterval int             `toml:"health_interval"`
	LogDir         string          `toml:"log_dir"`
	Admission      admission.Rules `toml:"admission"`
	Favorites      []rawFavorite   `toml:"favorites"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:        defaultAPIBase,
		RequestTimeout: defaultRequestTimeout,
		HealthInterval: defaultHealthInterval,
		LogDir:         mustExpand(defaultLogDir),
		Admission:      admission.DefaultRules(),
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing. Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	if raw.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeout) * time.Second
	}
	if raw.HealthInterval > 0 {
		cfg.HealthInterval = time.Duration(raw.HealthInterval) * time.Second
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	cfg.Admission = cfg.Admission.Merge(raw.Admission)

	for i, f := range raw.Favorites {
		target := strings.TrimSpace(f.Target)
		if target == "" {
			return Config{}, fmt.Errorf("parse config: favorites[%d] has no target", i)
		}
		id := strings.TrimSpace(f.ID)
		if id == "" {
			id = target
		}
		cfg.Favorites = append(cfg.Favorites, gie.Service{
			ID:          id,
			Title:       strings.TrimSpace(f.Title),
			Description: strings.TrimSpace(f.Description),
			Action:      gie.Action{Type: gie.ActionNavigate, Target: target},
		})
	}

	return applyEnv(cfg)
}

// LogPath returns the path of musaed's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/musaed.log")
	}
	return filepath.Join(c.LogDir, "musaed.log")
}

func applyEnv(cfg Config) (Config, error) {
	if base := strings.TrimSpace(os.Getenv(envAPIBase)); base != "" {
		cfg.APIBase = base
	}
	if raw := strings.TrimSpace(os.Getenv(envRequestTimeout)); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive number of seconds, got %q", envRequestTimeout, raw)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
