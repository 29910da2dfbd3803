package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt      = 0.01
	DefaultSteps   = 1000
	DefaultPos     = 1.0
	DefaultTol     = 1e-3
	DefaultMaxIter = 100
	DefaultSpan    = 10.0
	DefaultHigh    = 50.0
)

type Config struct {
	Model     string          `yaml:"model"`
	Dt        float64         `yaml:"dt"`
	Steps     int             `yaml:"steps"`
	T0        float64         `yaml:"t0"`
	InitState InitStateConfig `yaml:"init_state"`
	Shooting  ShootingConfig  `yaml:"shooting"`
}

type InitStateConfig struct {
	Pos float64 `yaml:"pos"`
	Vel float64 `yaml:"vel"`
}

type ShootingConfig struct {
	T1          float64 `yaml:"t1"`
	Target      float64 `yaml:"target"`
	BracketLow  float64 `yaml:"bracket_low"`
	BracketHigh float64 `yaml:"bracket_high"`
	Tolerance   float64 `yaml:"tolerance"`
	MaxIter     int     `yaml:"max_iter"`
}

func DefaultConfig() *Config {
	return &Config{
		Model: "oscillator",
		Dt:    DefaultDt,
		Steps: DefaultSteps,
		InitState: InitStateConfig{
			Pos: DefaultPos,
		},
		Shooting: ShootingConfig{
			T1:          DefaultSpan,
			BracketHigh: DefaultHigh,
			Tolerance:   DefaultTol,
			MaxIter:     DefaultMaxIter,
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

// GetInitState flattens the configured initial condition. Both models
// use the [position, velocity] layout.
func (c *Config) GetInitState() []float64 {
	return []float64{c.InitState.Pos, c.InitState.Vel}
}
