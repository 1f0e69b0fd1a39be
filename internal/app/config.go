package app

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// BaseURL is the ASH backend root, e.g. http://localhost:3000.
	BaseURL string `yaml:"base_url"`
	// Token is a static bearer token. TokenCommand wins when both are set.
	Token string `yaml:"token"`
	// TokenCommand is a shell command whose stdout is a fresh bearer token.
	TokenCommand string `yaml:"token_command"`
	// DefaultChatType preselects the dashboard type.
	DefaultChatType string `yaml:"chat_type"`
	// FreshnessSeconds is how long list/detail reads are served from cache.
	FreshnessSeconds int `yaml:"freshness_seconds"`
	// RequestTimeoutSeconds bounds a single backend call.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
	// LogFile receives structured logs; empty disables logging.
	LogFile string `yaml:"log_file"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:               "http://localhost:3000",
		DefaultChatType:       string(TypeStory),
		FreshnessSeconds:      10,
		RequestTimeoutSeconds: 120,
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return applyEnv(cfg), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.FreshnessSeconds <= 0 {
		cfg.FreshnessSeconds = 10
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = 120
	}
	if cfg.DefaultChatType == "" {
		cfg.DefaultChatType = string(TypeStory)
	}
	return applyEnv(cfg), nil
}

// applyEnv lets the environment override file values, same precedence the
// original client used for its API URL.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("ASH_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ASH_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("ASH_TOKEN_COMMAND"); v != "" {
		cfg.TokenCommand = v
	}
	if v := os.Getenv("ASH_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return cfg
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "ash-cli", "config.yml")
}

// DefaultType resolves the configured dashboard preselection, falling back
// to story generation when the value is unknown.
func (c Config) DefaultType() ChatType {
	if t, ok := ParseChatType(c.DefaultChatType); ok {
		return t
	}
	return TypeStory
}

func (c Config) Freshness() time.Duration {
	return time.Duration(c.FreshnessSeconds) * time.Second
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
