// Package config loads the user's tablero configuration from YAML
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/tablero/internal/models"
	"gopkg.in/yaml.v3"
)

// ColumnDefault describes one column provisioned on every new board
type ColumnDefault struct {
	Title    string `yaml:"title"`
	Color    string `yaml:"color"`
	Terminal bool   `yaml:"terminal"`
}

// Config represents the application configuration
type Config struct {
	DatabasePath   string          `yaml:"database_path"`
	SocketPath     string          `yaml:"socket_path"`
	LogLevel       string          `yaml:"log_level"`
	DefaultColumns []ColumnDefault `yaml:"default_columns"`
	Palette        []string        `yaml:"palette"` // subset of the column palette used for new columns
	KeyMappings    KeyMappings     `yaml:"key_mappings"`
	Theme          Theme           `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// DefaultColumns returns the To Do / In Progress / Done layout with Done terminal
func DefaultColumns() []ColumnDefault {
	return []ColumnDefault{
		{Title: "To Do", Color: string(models.ColorBlue)},
		{Title: "In Progress", Color: string(models.ColorYellow)},
		{Title: "Done", Color: string(models.ColorGreen), Terminal: true},
	}
}

// Load reads the config file, returning defaults if it doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile reads the config at path, returning defaults if it doesn't exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	config.applyDefaults()
	return &config, nil
}

// Save writes the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the config file location. TABLERO_CONFIG wins over XDG_CONFIG_HOME,
// which wins over ~/.config.
func Path() (string, error) {
	if explicit := os.Getenv("TABLERO_CONFIG"); explicit != "" {
		return explicit, nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// ColumnPalette returns the configured palette as color tokens
func (c *Config) ColumnPalette() []models.Color {
	palette := make([]models.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		if color, err := models.ParseColor(name); err == nil {
			palette = append(palette, color)
		}
	}
	if len(palette) == 0 {
		return models.Palette
	}
	return palette
}

func (c *Config) validate() error {
	for _, name := range c.Palette {
		if _, err := models.ParseColor(name); err != nil {
			return fmt.Errorf("palette: %w", err)
		}
	}

	terminals := 0
	for _, col := range c.DefaultColumns {
		if col.Title == "" {
			return fmt.Errorf("default_columns: title cannot be empty")
		}
		if col.Color != "" {
			if _, err := models.ParseColor(col.Color); err != nil {
				return fmt.Errorf("default_columns %q: %w", col.Title, err)
			}
		}
		if col.Terminal {
			terminals++
		}
	}
	if terminals > 1 {
		return fmt.Errorf("default_columns: at most one column can be terminal, got %d", terminals)
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" || c.SocketPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, ".tablero")
			if c.DatabasePath == "" {
				c.DatabasePath = filepath.Join(dir, "tablero.db")
			}
			if c.SocketPath == "" {
				c.SocketPath = filepath.Join(dir, "tablero.sock")
			}
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if len(c.DefaultColumns) == 0 {
		c.DefaultColumns = DefaultColumns()
	}
	c.KeyMappings.applyDefaults()
	c.Theme.applyDefaults()
}
