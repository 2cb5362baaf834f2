// Package config loads the user configuration: a YAML file in the user
// config directory merged over Defaults, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	applog "github.com/joeyjackson/fourier-series-drawer/internal/log"
)

const appDir = "fourier-series-drawer"

type AnimationConfig struct {
	// Duration is the wall-clock length of one period.
	Duration time.Duration `yaml:"duration"`
	// MaxEpicycles bounds each chain; 0 keeps all of them.
	MaxEpicycles int    `yaml:"max_epicycles"`
	FPS          int    `yaml:"fps"`
	Mode         string `yaml:"mode"`
	Fade         bool   `yaml:"fade"`
	Rings        bool   `yaml:"rings"`
	// Visualizer is the terminal canvas: "braille" or "dense".
	Visualizer string `yaml:"visualizer"`
	// ToneHz is how often per second the audio preview traces the path.
	ToneHz float64 `yaml:"tone_hz"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// MaxSamples bounds the size of /api/dft requests.
	MaxSamples int `yaml:"max_samples"`
}

type CatalogConfig struct {
	// DBPath is the saved-signal database; empty puts it next to the
	// config file.
	DBPath string `yaml:"db_path"`
	// Start is the first signal shown, or "random".
	Start   string `yaml:"start"`
	Shuffle bool   `yaml:"shuffle"`
}

type Config struct {
	ConfigVersion int             `yaml:"config_version"`
	Animation     AnimationConfig `yaml:"animation"`
	Server        ServerConfig    `yaml:"server"`
	Catalog       CatalogConfig   `yaml:"catalog"`
	Logging       applog.Options  `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() Config {
	return Config{
		ConfigVersion: 1,
		Animation: AnimationConfig{
			Duration:   10 * time.Second,
			FPS:        30,
			Mode:       "combined",
			Fade:       true,
			Rings:      true,
			Visualizer: "braille",
			ToneHz:     100,
		},
		Server:  ServerConfig{Addr: "localhost:8080", MaxSamples: 4096},
		Catalog: CatalogConfig{Start: "random"},
		Logging: applog.Options{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvConfig       = "FSD_CONFIG"
	EnvDuration     = "FSD_DURATION"
	EnvMaxEpicycles = "FSD_MAX_EPICYCLES"
	EnvFPS          = "FSD_FPS"
	EnvMode         = "FSD_MODE"
	EnvServerAddr   = "FSD_SERVER_ADDR"
	EnvDBPath       = "FSD_DB"
	EnvLogLevel     = "FSD_LOG_LEVEL"
	EnvLogFormat    = "FSD_LOG_FORMAT"
	EnvLogSource    = "FSD_LOG_SOURCE"
	EnvLogFile      = "FSD_LOG_FILE"
)

// ConfigPath returns the config file path: $FSD_CONFIG if set, otherwise
// config.yaml under the user config directory.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(base, appDir, "config.yaml"), nil
}

// Load reads the config file (if present) over the defaults, applies
// environment overrides, and returns the result with the path it used.
func Load() (Config, string, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, "", err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Defaults(), path, fmt.Errorf("parse %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return cfg, path, fmt.Errorf("read %s: %w", path, err)
	}
	applyEnvOverrides(&cfg)
	normalize(&cfg)
	if cfg.Catalog.DBPath == "" {
		cfg.Catalog.DBPath = filepath.Join(filepath.Dir(path), "signals.db")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, path, err
	}
	return cfg, path, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports settings no front-end can run with.
func (c Config) Validate() error {
	if _, err := animation.ParseMode(c.Animation.Mode); err != nil {
		return fmt.Errorf("animation.mode: %w", err)
	}
	if c.Animation.Duration <= 0 {
		return fmt.Errorf("animation.duration must be positive, got %s", c.Animation.Duration)
	}
	if c.Animation.ToneHz < 0 || c.Animation.ToneHz > 20000 {
		return fmt.Errorf("animation.tone_hz must be within [0, 20000], got %g", c.Animation.ToneHz)
	}
	if c.Animation.MaxEpicycles < 0 {
		return fmt.Errorf("animation.max_epicycles must not be negative, got %d", c.Animation.MaxEpicycles)
	}
	switch c.Animation.Visualizer {
	case "braille", "dense":
	default:
		return fmt.Errorf("animation.visualizer: unknown visualizer %q", c.Animation.Visualizer)
	}
	return nil
}

// Options converts the animation section into session options.
func (a AnimationConfig) Options() (animation.Options, error) {
	mode, err := animation.ParseMode(a.Mode)
	if err != nil {
		return animation.Options{}, err
	}
	opts := animation.DefaultOptions()
	opts.Mode = mode
	opts.Duration = a.Duration
	opts.MaxEpicycles = a.MaxEpicycles
	opts.Fade = a.Fade
	opts.Rings = a.Rings
	return opts, nil
}

func normalize(cfg *Config) {
	cfg.Animation.Mode = strings.ToLower(strings.TrimSpace(cfg.Animation.Mode))
	cfg.Animation.Visualizer = strings.ToLower(strings.TrimSpace(cfg.Animation.Visualizer))
	if cfg.Animation.Visualizer == "" {
		cfg.Animation.Visualizer = "braille"
	}
	if cfg.Animation.FPS <= 0 {
		cfg.Animation.FPS = Defaults().Animation.FPS
	}
	cfg.Animation.FPS = min(cfg.Animation.FPS, 120)
	if cfg.Server.MaxSamples <= 0 {
		cfg.Server.MaxSamples = Defaults().Server.MaxSamples
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)
}

func parseBool(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvDuration)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Animation.Duration = d
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvMaxEpicycles)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Animation.MaxEpicycles = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvFPS)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Animation.FPS = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvMode)); v != "" {
		cfg.Animation.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvServerAddr)); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		cfg.Catalog.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.AddSource = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}
