package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"namepick/internal/eventbus"
)

// DefaultDebounceMs is the debounce interval applied when the config
// omits or zeroes debounce_delay_ms.
const DefaultDebounceMs = 300

// Config represents the application configuration
type Config struct {
	Version         int        `toml:"version"`
	DebounceDelayMs int        `toml:"debounce_delay_ms"`
	RosterPath      string     `toml:"roster_path"` // empty means the builtin roster
	LogLevel        string     `toml:"log_level"`
	UISettings      UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxVisibleRows int  `toml:"max_visible_rows"`
	ShowYears      bool `toml:"show_years"`
}

// DebounceDelay returns the debounce interval as a duration
func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceDelayMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	namepickDir := filepath.Join(configDir, "namepick")
	os.MkdirAll(namepickDir, 0755)

	return &configService{
		filePath: filepath.Join(namepickDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service pinned to an explicit file,
// used when the --config flag overrides the default location.
func NewConfigServiceAt(bus eventbus.EventBus, path string) ConfigService {
	return &configService{bus: bus, filePath: path}
}

// Path returns the config file location this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Missing file is not an error, just defaults
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize clamps out-of-range values back to defaults so a sparse or
// hand-edited file always yields a usable config.
func normalize(cfg *Config) {
	if cfg.DebounceDelayMs <= 0 {
		cfg.DebounceDelayMs = DefaultDebounceMs
	}
	if cfg.UISettings.MaxVisibleRows <= 0 {
		cfg.UISettings.MaxVisibleRows = 8
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:         1,
		DebounceDelayMs: DefaultDebounceMs,
		RosterPath:      "",
		LogLevel:        "info",
		UISettings: UISettings{
			MaxVisibleRows: 8,
			ShowYears:      true,
		},
	}
}
