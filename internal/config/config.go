package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Clipboard target names
const (
	TargetClipboard = "clipboard"
	TargetPrimary   = "primary"
)

// OSC 52 modes
const (
	OSC52Auto   = "auto"
	OSC52Always = "always"
	OSC52Never  = "never"
)

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	LogFile    string            `toml:"log_file"`
	UISettings UISettings        `toml:"ui"`
	Clipboard  ClipboardSettings `toml:"clipboard"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title         string `toml:"title"`
	TileWidth     int    `toml:"tile_width"`     // terminal cells per tile
	ConfirmFormat string `toml:"confirm_format"` // must contain exactly one %s
}

// ClipboardSettings selects where copied glyphs go
type ClipboardSettings struct {
	Targets []string `toml:"targets"`
	OSC52   string   `toml:"osc52"`
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
	filePath string
}

// DefaultPath returns <user config dir>/emojipick/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "emojipick", "config.toml")
}

// NewConfigService creates a config service for the given file; an empty path means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Unset fields keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

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

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if c.UISettings.TileWidth < 2 {
		return fmt.Errorf("%w: ui.tile_width must be at least 2, got %d", ErrInvalidConfig, c.UISettings.TileWidth)
	}
	if n := strings.Count(c.UISettings.ConfirmFormat, "%s"); n != 1 || strings.Count(c.UISettings.ConfirmFormat, "%") != 1 {
		return fmt.Errorf("%w: ui.confirm_format must contain exactly one %%s verb, got %q", ErrInvalidConfig, c.UISettings.ConfirmFormat)
	}
	if len(c.Clipboard.Targets) == 0 {
		return fmt.Errorf("%w: clipboard.targets must not be empty", ErrInvalidConfig)
	}
	for _, target := range c.Clipboard.Targets {
		switch target {
		case TargetClipboard, TargetPrimary:
		default:
			return fmt.Errorf("%w: unknown clipboard target %q", ErrInvalidConfig, target)
		}
	}
	switch c.Clipboard.OSC52 {
	case OSC52Auto, OSC52Always, OSC52Never:
	default:
		return fmt.Errorf("%w: clipboard.osc52 must be auto, always or never, got %q", ErrInvalidConfig, c.Clipboard.OSC52)
	}
	return nil
}

// DefaultLogFile returns <user cache dir>/emojipick/emojipick.log
func DefaultLogFile() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "emojipick", "emojipick.log")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Title:         "🚀 Emoji Picker",
			TileWidth:     4,
			ConfirmFormat: "Copied %s to clipboard",
		},
		Clipboard: ClipboardSettings{
			Targets: []string{TargetClipboard, TargetPrimary},
			OSC52:   OSC52Auto,
		},
	}
}
