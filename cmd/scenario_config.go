package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/celeritas-go/transport"
	"github.com/celeritas-go/transport/field"
)

// ScenarioConfig is the top-level scenario file format the run subcommand
// loads: physics options, field-driver options, and the pool/run sizing.
// All sections must be listed here to satisfy KnownFields(true) strict
// parsing — an unrecognized key fails the load instead of being ignored.
type ScenarioConfig struct {
	Physics  transport.PhysicsOptions `yaml:"physics"`
	Field    field.FieldDriverOptions `yaml:"field"`
	PoolSize int                      `yaml:"pool_size"`
	Steps    int                      `yaml:"steps"`
	Seed     int64                    `yaml:"seed"`
}

// loadScenarioConfig parses a scenario YAML file with strict field
// checking, mirroring the teacher's defaults.yaml loader.
func loadScenarioConfig(path string) (ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, fmt.Errorf("cmd: reading scenario file %s: %w", path, err)
	}

	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return ScenarioConfig{}, fmt.Errorf("cmd: parsing scenario file %s: %w", path, err)
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 1
	}
	if cfg.Steps <= 0 {
		cfg.Steps = 1
	}
	return cfg, nil
}

// DefaultScenarioConfig returns a scenario with Celeritas-compatible
// physics defaults and a conventional field-driver configuration, used
// when no --config flag is given.
func DefaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		Physics:  transport.DefaultPhysicsOptions(),
		Field:    field.DefaultFieldDriverOptions(),
		PoolSize: 128,
		Steps:    10,
		Seed:     12345,
	}
}
