// Configuration loading from various sources
//
// Supports loading from:
// - YAML files
// - Environment variables (ILINDEN_ prefix, applied after file load)
//
// Precedence: struct-tag defaults, then the YAML file, then environment
// overrides. Missing file is not an error — defaults and env apply alone.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file at path (if non-empty and present),
// applies ILINDEN_-prefixed environment overrides, then fills in any
// field still at its zero value from its `default` struct tag.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	SetDefaults(cfg)

	if cfg.Registry.Streams == nil {
		cfg.Registry.Streams = map[string]string{}
	}

	return cfg, nil
}

// applyEnvOverrides pulls a small, fixed set of environment variables that
// operators commonly need to set without a config file on disk.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ILINDEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("ILINDEN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ILINDEN_DEFAULT_STREAM_URL"); v != "" {
		name := cfg.Registry.DefaultStream
		if name == "" {
			name = "default"
		}
		if cfg.Registry.Streams == nil {
			cfg.Registry.Streams = map[string]string{}
		}
		cfg.Registry.Streams[name] = v
	}
}
