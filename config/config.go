// Package config loads the engine's run configuration from YAML. It is
// consumed only by cmd/solwatch; the core packages always accept already
// resolved values and never read this package's types.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solwatch/solwatch/compiler"
)

// EngineConfig selects which detectors run and overrides the compiler's
// reported EVM version, mirroring the teacher's YAML-driven expectation
// format used throughout analyzer_test.go.
type EngineConfig struct {
	// Detectors lists kebab-case detector names to run. An empty list
	// means "every registered detector".
	Detectors []string `yaml:"detectors"`

	// Disabled lists kebab-case detector names to exclude even if named
	// in Detectors or implied by the empty-list default.
	Disabled []string `yaml:"disabled"`

	// EvmVersion overrides the compilation group's reported EVM version,
	// for gating detectors like clz-signed-integer-misuse against a
	// hardfork the compiler output didn't itself record.
	EvmVersion compiler.EvmVersion `yaml:"evm_version,omitempty"`

	// IgnoreDirectives toggles whether ignore.Engine suppression is
	// honored at all; false runs every detector unfiltered.
	IgnoreDirectives bool `yaml:"ignore_directives"`
}

// Default returns the engine's zero-configuration behavior: every
// detector, no EVM version override, ignore directives honored.
func Default() *EngineConfig {
	return &EngineConfig{IgnoreDirectives: true}
}

// Load reads and parses an EngineConfig from a YAML file at path.
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Enabled reports whether detectorName should run under this
// configuration: named explicitly (or Detectors is empty, meaning
// "all"), and not present in Disabled.
func (c *EngineConfig) Enabled(detectorName string) bool {
	for _, d := range c.Disabled {
		if d == detectorName {
			return false
		}
	}
	if len(c.Detectors) == 0 {
		return true
	}
	for _, d := range c.Detectors {
		if d == detectorName {
			return true
		}
	}
	return false
}
