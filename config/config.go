package config

import (
	"fmt"
	"runtime"

	"github.com/skillsenselab/eafgen/logger"
)

// Config holds the full eafgen tool configuration.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Media   MediaConfig   `yaml:"media" mapstructure:"media"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
}

// MediaConfig controls companion media lookup.
type MediaConfig struct {
	// Dir is an optional directory holding companion .wav files.
	// Empty means "alongside the output document".
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// OutputConfig controls where EAF documents are written.
type OutputConfig struct {
	// Dir is an optional output directory. Empty means "next to the input".
	Dir string `yaml:"dir" mapstructure:"dir"`
	// Force overwrites existing .eaf files instead of skipping them.
	Force bool `yaml:"force" mapstructure:"force"`
}

// BatchConfig controls directory-mode processing.
type BatchConfig struct {
	// Workers is the number of files converted concurrently.
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Batch.Workers <= 0 {
		c.Batch.Workers = runtime.NumCPU()
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1 (got: %d)", c.Batch.Workers)
	}
	return nil
}
