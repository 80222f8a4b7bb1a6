package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"pokeroster/internal/catalog"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// EnvPrefix prefixes every environment override, e.g. POKEROSTER_CATALOG_BASE_URL.
const EnvPrefix = "POKEROSTER"

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the directory holding the roster and config.yaml (default ~/.pokeroster)
	Home    string        `mapstructure:"home"`
	Storage StorageConfig `mapstructure:"storage"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logging LoggingConfig `mapstructure:"logging"`
	Display DisplayConfig `mapstructure:"display"`
}

// StorageConfig selects where the roster is persisted.
type StorageConfig struct {
	// Backend is one of "file", "sqlite", "memory"
	Backend string `mapstructure:"backend"`
	// Passphrase seals the file backend at rest when set
	Passphrase string `mapstructure:"passphrase"`
}

// CatalogConfig points at the PokeAPI-compatible catalog.
type CatalogConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	Color bool `mapstructure:"color"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Home:    DefaultHome(),
		Storage: StorageConfig{Backend: BackendFile},
		Catalog: CatalogConfig{BaseURL: catalog.DefaultBaseURL, Timeout: 10 * time.Second},
		Logging: LoggingConfig{Level: "warn"},
		Display: DisplayConfig{Color: true},
	}
}

// DefaultHome returns ~/.pokeroster, or .pokeroster when no home directory is known.
func DefaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".pokeroster"
	}
	return filepath.Join(dir, ".pokeroster")
}

// NewViper returns a viper instance with defaults and environment overrides
// registered. Callers bind flags on top before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers every key so env overrides and Unmarshal see it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("home", d.Home)
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.passphrase", d.Storage.Passphrase)
	v.SetDefault("catalog.base_url", d.Catalog.BaseURL)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.json", d.Logging.JSON)
	v.SetDefault("display.color", d.Display.Color)
}

// ConfigFile returns the config file read from home.
func ConfigFile(home string) string { return filepath.Join(home, "config.yaml") }

// Load merges <home>/config.yaml (if present) into v, then decodes and
// validates the result. Flags and env already bound on v take precedence.
func Load(v *viper.Viper) (*Config, error) {
	home := v.GetString("home")
	if home == "" {
		home = DefaultHome()
	}
	path := ConfigFile(home)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Home == "" {
		cfg.Home = home
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want file, sqlite or memory)", c.Storage.Backend)
	}
	if c.Storage.Passphrase != "" && c.Storage.Backend != BackendFile {
		return fmt.Errorf("storage.passphrase: only the file backend can be sealed")
	}
	if c.Catalog.BaseURL == "" {
		return errors.New("catalog.base_url: must not be empty")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout: must be positive, got %s", c.Catalog.Timeout)
	}
	return nil
}
