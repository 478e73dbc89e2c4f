package wfcconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a Preset from a YAML file at path, validating it
// before returning.
func Load(path string) (Preset, error) {
	var p Preset

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("wfcconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("wfcconfig: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("wfcconfig: %s: %w", path, err)
	}

	return p, nil
}

// Save validates and writes p to path as YAML, creating or truncating the
// file with 0644 permissions.
func Save(path string, p Preset) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("wfcconfig: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("wfcconfig: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("wfcconfig: write %s: %w", path, err)
	}

	return nil
}
