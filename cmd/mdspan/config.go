package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the print command. Flags override values
// read from the YAML file.
type Config struct {
	BufferSize int    `yaml:"buffer_size"`
	Shape      []int  `yaml:"shape"`
	Separator  string `yaml:"separator"`
	Workers    int    `yaml:"workers"`
}

// DefaultConfig mirrors the classic demo: 1000 sequential values viewed as 3x3.
func DefaultConfig() Config {
	return Config{
		BufferSize: 1000,
		Shape:      []int{3, 3},
		Separator:  ", ",
		Workers:    0,
	}
}

// loadConfig reads path on top of DefaultConfig. An empty path returns the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseShape parses "2,3,4" or "2x3x4".
func parseShape(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == ' '
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty shape %q", s)
	}

	dims := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("shape %q: dimension %d: %w", s, i, err)
		}
		dims[i] = n
	}
	return dims, nil
}
