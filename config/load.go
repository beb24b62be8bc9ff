package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load decodes a TOML file over the defaults and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return finish(cfg, meta)
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (*Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return finish(cfg, meta)
}

func finish(cfg *Config, meta toml.MetaData) (*Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
