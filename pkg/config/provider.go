package config

import (
	"fmt"

	"github.com/chrissnell/ascent/pkg/ascent"
	"github.com/chrissnell/ascent/pkg/responseformat"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	Close() error
}

// ConfigData holds the defaults applied before command-line flags
type ConfigData struct {
	AngleType string `json:"angle_type,omitempty"`
	Format    string `json:"format,omitempty"`
	Precision int    `json:"precision"`
	Segments  bool   `json:"segments,omitempty"`
	Debug     bool   `json:"debug,omitempty"`
}

// Defaults returns the configuration used when no source is given
func Defaults() *ConfigData {
	return &ConfigData{
		AngleType: ascent.Degrees.String(),
		Format:    string(responseformat.FormatText),
		Precision: -1,
	}
}

// Validate checks that every value can be used by the calculator and formatter
func (c *ConfigData) Validate() error {
	if _, err := ascent.ParseAngleType(c.AngleType); err != nil {
		return fmt.Errorf("invalid angle_type: %w", err)
	}
	if _, err := responseformat.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	if c.Precision < -1 {
		return fmt.Errorf("invalid precision %d: must be -1 or greater", c.Precision)
	}
	return nil
}

// NewProvider returns the provider for the given backend name
func NewProvider(filename, backend string) (ConfigProvider, error) {
	switch backend {
	case "", "yaml":
		return NewYAMLProvider(filename), nil
	case "sqlite":
		provider, err := OpenSQLiteProvider(filename)
		if err != nil {
			return nil, fmt.Errorf("error creating SQLite provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unsupported configuration backend: %s. Use 'yaml' or 'sqlite'", backend)
	}
}
