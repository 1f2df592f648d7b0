package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Gates   GateConfig    `mapstructure:"gates"`
	UI      UIConfig      `mapstructure:"ui"`
	Keys    KeyConfig     `mapstructure:"keys"`
}

type CatalogConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Zone        string        `mapstructure:"zone"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	CachePath   string        `mapstructure:"cache_path"`
}

// GateConfig carries the minimum interval between commits for each
// rate-limiting gate. The suggestion gate is deliberately slower than
// the query and width gates so the ghost text does not flicker while
// filtered results change transiently during typing.
type GateConfig struct {
	Query      time.Duration `mapstructure:"query"`
	Width      time.Duration `mapstructure:"width"`
	Suggestion time.Duration `mapstructure:"suggestion"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors"`
}

type UIColors struct {
	Primary string `mapstructure:"primary"`
	Accent  string `mapstructure:"accent"`
	Text    string `mapstructure:"text"`
	Muted   string `mapstructure:"muted"`
	Ghost   string `mapstructure:"ghost"`
	Error   string `mapstructure:"error"`
}

type KeyConfig struct {
	Quit  string `mapstructure:"quit"`
	Clear string `mapstructure:"clear"`
	Help  string `mapstructure:"help"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	cachePath := filepath.Join(homeDir, ".findbar", "catalog.db")

	return &Config{
		Catalog: CatalogConfig{
			BaseURL:     "http://localhost:8080",
			Zone:        "default",
			HTTPTimeout: 30 * time.Second,
			UserAgent:   "findbar/1.0",
			CachePath:   cachePath,
		},
		Gates: GateConfig{
			Query:      120 * time.Millisecond,
			Width:      120 * time.Millisecond,
			Suggestion: 500 * time.Millisecond,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary: "#FF6B6B",
				Accent:  "#95E1D3",
				Text:    "#EAEAEA",
				Muted:   "#94A3B8",
				Ghost:   "#64748B",
				Error:   "#EF4444",
			},
		},
		Keys: KeyConfig{
			Quit:  "ctrl+c",
			Clear: "esc",
			Help:  "f1",
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("catalog", cfg.Catalog)
	v.SetDefault("gates", cfg.Gates)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("keys", cfg.Keys)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "findbar")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FINDBAR")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	return &config, nil
}

// expandPath expands ~ to the home directory and converts to an
// absolute path.
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func expandPaths(cfg *Config) {
	cfg.Catalog.CachePath = expandPath(cfg.Catalog.CachePath)
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Durations as strings for TOML readability
	catalogCfg := map[string]interface{}{
		"base_url":     config.Catalog.BaseURL,
		"zone":         config.Catalog.Zone,
		"http_timeout": config.Catalog.HTTPTimeout.String(),
		"user_agent":   config.Catalog.UserAgent,
		"cache_path":   config.Catalog.CachePath,
	}

	gatesCfg := map[string]interface{}{
		"query":      config.Gates.Query.String(),
		"width":      config.Gates.Width.String(),
		"suggestion": config.Gates.Suggestion.String(),
	}

	v.Set("catalog", catalogCfg)
	v.Set("gates", gatesCfg)
	v.Set("ui", config.UI)
	v.Set("keys", config.Keys)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
