package descent

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all parameters for a descent run. Whether the run minimizes or
// maximizes is a property of the target preset, not of the config.
type Config struct {
	Target    string  `yaml:"target" json:"target"`
	Start     float64 `yaml:"start" json:"start"`
	Rate      float64 `yaml:"rate" json:"rate"`
	Steps     int     `yaml:"steps" json:"steps"`
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`
	Format    string  `yaml:"format" json:"format"` // "text" or "json"
	Verbose   bool    `yaml:"verbose" json:"verbose"`
	Trace     bool    `yaml:"trace" json:"trace"`

	Logger *slog.Logger `yaml:"-" json:"-"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Target:    "quartic",
		Start:     0,
		Rate:      0.1,
		Steps:     100,
		Tolerance: 1e-9,
		Format:    "text",
	}
}

// LoadConfig reads a YAML run file and overlays it on the defaults. Fields
// absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
