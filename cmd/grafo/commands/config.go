package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// configPath is bound to the persistent --config flag.
var configPath string

// fileConfig mirrors the optional YAML config file: default dataset
// paths and a default dijkstra source. Every field is optional; flags
// always win over the file.
type fileConfig struct {
	Graph  string `yaml:"graph"`
	Corpus string `yaml:"corpus"`
	Source string `yaml:"source"`
}

// loadConfig parses the --config file, or returns a zero config when
// the flag is unset.
func loadConfig() (fileConfig, error) {
	var cfg fileConfig
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", configPath, err)
	}

	return cfg, nil
}

// resolve returns flag when set, otherwise fallback from the config
// file, otherwise an error naming the missing flag.
func resolve(flag, fallback, name string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("--%s is required (or set it in --config)", name)
}
