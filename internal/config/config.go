package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jgoulah/utilityview/internal/workbook"
)

// Config holds the application configuration
type Config struct {
	Reader   ReaderConfig `yaml:"reader"`
	Database string       `yaml:"database,omitempty"`  // Import log database (fallback: data.db)
	LogLevel string       `yaml:"log_level,omitempty"` // debug, info, warn or error (fallback: info)
	MQTT     MQTTConfig   `yaml:"mqtt,omitempty"`
}

// ReaderConfig locates the workbook and optionally overrides its layout
type ReaderConfig struct {
	File        string       `yaml:"file"`
	Electricity RegionConfig `yaml:"electricity,omitempty"`
	Water       RegionConfig `yaml:"water,omitempty"`
}

// RegionConfig overrides parts of a sheet layout. Zero values keep the default.
type RegionConfig struct {
	Sheet     string `yaml:"sheet,omitempty"`
	HeaderRow *int   `yaml:"header_row,omitempty"`
	Columns   []int  `yaml:"columns,omitempty"`
}

// MQTTConfig holds MQTT broker configuration for publishing series
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"` // e.g., "homeassistant.local:1883"
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // fallback: utility_cost
	ClientID    string `yaml:"client_id,omitempty"`    // fallback: utilityview
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetFile returns the workbook path, or an error if none is configured
func (c *Config) GetFile() (string, error) {
	if c.Reader.File == "" {
		return "", fmt.Errorf("no workbook configured: set reader.file in config.yaml or pass --file")
	}
	return c.Reader.File, nil
}

// GetElectricityRegion returns the electricity sheet layout with overrides applied
func (c *Config) GetElectricityRegion() workbook.RegionSpec {
	return c.Reader.Electricity.apply(workbook.ElectricityRegion())
}

// GetWaterRegion returns the water sheet layout with overrides applied
func (c *Config) GetWaterRegion() workbook.RegionSpec {
	return c.Reader.Water.apply(workbook.WaterRegion())
}

func (r RegionConfig) apply(spec workbook.RegionSpec) workbook.RegionSpec {
	if r.Sheet != "" {
		spec.Sheet = r.Sheet
	}
	if r.HeaderRow != nil {
		spec.HeaderRow = *r.HeaderRow
	}
	if len(r.Columns) > 0 {
		spec.Columns = append([]int(nil), r.Columns...)
	}
	return spec
}

// GetDatabasePath returns the import log database path
func (c *Config) GetDatabasePath() string {
	if c.Database == "" {
		return "data.db"
	}
	return c.Database
}

// GetLogLevel returns the configured log level, defaulting to info
func (c *Config) GetLogLevel() slog.Level {
	return ParseLogLevel(c.LogLevel)
}

// ParseLogLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetTopicPrefix returns the MQTT topic prefix
func (m MQTTConfig) GetTopicPrefix() string {
	if m.TopicPrefix == "" {
		return "utility_cost"
	}
	return strings.TrimSuffix(m.TopicPrefix, "/")
}

// GetClientID returns the MQTT client id
func (m MQTTConfig) GetClientID() string {
	if m.ClientID == "" {
		return "utilityview"
	}
	return m.ClientID
}
