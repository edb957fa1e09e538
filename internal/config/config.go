package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yml
var defaultsYAML []byte

type Config struct {
	Application Application `yaml:"application"`
	GUI         GUI         `yaml:"gui"`
	Button      Button      `yaml:"button"`
}

type Application struct {
	Name     string `yaml:"name"`
	ID       string `yaml:"id"`
	Version  string `yaml:"version"`
	LogLevel string `yaml:"log_level"`
}

type GUI struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
}

type Button struct {
	Label          string `yaml:"label"`
	ClickedMessage string `yaml:"clicked_message"`
}

// Default returns the configuration compiled into the binary.
func Default() (*Config, error) {
	return Parse(defaultsYAML)
}

// Parse validates a YAML document against the embedded schema and decodes it.
func Parse(data []byte) (*Config, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
