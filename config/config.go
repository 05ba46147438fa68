package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mirelin/fitchproof/subst"
)

// Config holds the settings read from .fitchcheck.yaml.
type Config struct {
	// Variables lists the atomic names a proof may use as quantified
	// variables; every other atomic name occurring in a proof is treated
	// as a constant. Defaults to {x, y, z, u, v, w}.
	Variables []string `yaml:"variables"`
}

// DefaultConfig returns the built-in variable set.
func DefaultConfig() *Config {
	return &Config{Variables: []string{"x", "y", "z", "u", "v", "w"}}
}

// Load reads path and parses it as YAML into a Config seeded with
// DefaultConfig's values. A missing file is not an error: Load returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if len(cfg.Variables) == 0 {
		return nil, ErrNoVariables
	}

	return cfg, nil
}

// AllowedVars converts Variables into the subst.NameSet the rules
// package expects.
func (c *Config) AllowedVars() subst.NameSet {
	set := make(subst.NameSet, len(c.Variables))
	for _, v := range c.Variables {
		set[v] = struct{}{}
	}
	return set
}
