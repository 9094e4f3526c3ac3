package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration for the hh CLI. CLI flags win
// over file values.
type Config struct {
	Workers   int    `yaml:"workers"`
	OutputDir string `yaml:"output_dir"`

	Slim SlimConfig `yaml:"slim"`
}

// SlimConfig overrides the slimmer's default tag and attribute policies.
// Empty lists keep the built-in defaults.
type SlimConfig struct {
	TagsToRemove         []string `yaml:"tags_to_remove"`
	RemovableEmptyTags   []string `yaml:"removable_empty_tags"`
	MetaPropertyKeywords []string `yaml:"meta_property_keywords"`
	AllowedMetaAttrs     []string `yaml:"allowed_meta_attrs"`
	AllowedBodyAttrs     []string `yaml:"allowed_body_attrs"`
}

// LoadConfig reads the config file at path. A missing file is not an error;
// it yields a zero config so everything falls back to defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
