package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig reads the YAML file and fills in defaults for missing keys
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Pointers distinguish an explicit zero from a missing key
	var yamlConfig struct {
		AngleType *string `yaml:"angle_type,omitempty"`
		Format    *string `yaml:"format,omitempty"`
		Precision *int    `yaml:"precision,omitempty"`
		Segments  *bool   `yaml:"segments,omitempty"`
		Debug     *bool   `yaml:"debug,omitempty"`
	}

	err = yaml.UnmarshalStrict(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	config := Defaults()
	if yamlConfig.AngleType != nil {
		config.AngleType = *yamlConfig.AngleType
	}
	if yamlConfig.Format != nil {
		config.Format = *yamlConfig.Format
	}
	if yamlConfig.Precision != nil {
		config.Precision = *yamlConfig.Precision
	}
	if yamlConfig.Segments != nil {
		config.Segments = *yamlConfig.Segments
	}
	if yamlConfig.Debug != nil {
		config.Debug = *yamlConfig.Debug
	}

	return config, nil
}

// Close is a no-op for YAML files
func (y *YAMLProvider) Close() error {
	return nil
}
