package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultH    = 0.1
	DefaultTEnd = 1.5
)

// Config is a full description of one integration run.
type Config struct {
	Problem string    `yaml:"problem"`
	Kind    string    `yaml:"kind"` // "scalar" or "coupled"
	T0      float64   `yaml:"t0"`
	TEnd    float64   `yaml:"t_end"`
	H       float64   `yaml:"h"`
	Init    InitState `yaml:"init"`
}

// InitState holds the initial dependent values. Y applies to scalar
// problems, U/V to coupled ones.
type InitState struct {
	Y float64 `yaml:"y"`
	U float64 `yaml:"u"`
	V float64 `yaml:"v"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: "linear",
		Kind:    "scalar",
		T0:      1.0,
		TEnd:    DefaultTEnd,
		H:       DefaultH,
		Init: InitState{
			Y: 5.0,
			U: 1.0,
			V: -1.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the solver would refuse or that would
// silently integrate away from t_end.
func (c *Config) Validate() error {
	if c.H == 0 {
		return fmt.Errorf("h must be nonzero")
	}
	if c.Kind != "scalar" && c.Kind != "coupled" {
		return fmt.Errorf("kind must be scalar or coupled, got %q", c.Kind)
	}
	if (c.TEnd-c.T0)/c.H < 0 {
		return fmt.Errorf("step %v cannot reach t_end %v from t0 %v", c.H, c.TEnd, c.T0)
	}
	return nil
}
