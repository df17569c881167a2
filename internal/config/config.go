// Package config loads optional project settings from a .mdstruct.yaml file.
// Missing files and missing fields fall back to defaults; flags override
// whatever the file provides.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".mdstruct.yaml"

// Config holds all tunables for the document engine.
type Config struct {
	TOC    TOCConfig    `yaml:"toc"`
	Format FormatConfig `yaml:"format"`
}

// TOCConfig controls table-of-contents generation.
type TOCConfig struct {
	// Depth is how many heading levels below the root section level to
	// include (1 = level-2 sections only).
	Depth int `yaml:"depth"`

	// StrictTitleMatch makes TOC recognition require the exact title
	// "Table of Contents" instead of a case-insensitive match.
	StrictTitleMatch bool `yaml:"strict_title_match"`
}

// FormatConfig controls paragraph rewrapping.
type FormatConfig struct {
	Width int `yaml:"width"`
}

func (c *Config) defaults() {
	if c.TOC.Depth <= 0 {
		c.TOC.Depth = 2
	}
	if c.Format.Width <= 0 {
		c.Format.Width = 80
	}
}

// Default returns a config with every field at its default.
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

// Load reads a yaml config file. A missing file is not an error; it yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg.defaults()
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.defaults()
	return cfg, nil
}
