package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config drives cmd/listdemo.
type Config struct {
	LogLevel string `yaml:"log_level"`
	// MaxNodes caps the live nodes of the demo allocator. 0 means unbounded.
	MaxNodes int   `yaml:"max_nodes"`
	Values   []int `yaml:"values"`
	SplitAt  int   `yaml:"split_at"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Values:   []int{1, 2, 3},
		SplitAt:  1,
	}
}

// Load overlays the YAML file at path on Default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config.Parse: %w", err)
	}
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config.Parse: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return NewInvalidConfigError("log_level", fmt.Sprintf("unknown level %q", c.LogLevel))
	}
	if c.MaxNodes < 0 {
		return NewInvalidConfigError("max_nodes", fmt.Sprintf("must not be negative, got %d", c.MaxNodes))
	}
	if c.SplitAt < 0 {
		return NewInvalidConfigError("split_at", fmt.Sprintf("must not be negative, got %d", c.SplitAt))
	}
	return nil
}
