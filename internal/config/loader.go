package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kjourdan1/fsdist/internal/distributor"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up when none is given.
const DefaultFileName = "fsdist.yaml"

// Load reads a distributor configuration file. Files with an .hcl extension
// are parsed as HCL, anything else as YAML.
func Load(path string) (distributor.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if IsHCL(path) {
		return ParseHCL(data, path)
	}
	return Parse(data)
}

// IsHCL reports whether path names an HCL configuration file.
func IsHCL(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".hcl")
}

// Parse parses raw YAML bytes into a distributor configuration. Keys that are
// present with a null value are kept.
func Parse(data []byte) (distributor.Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return distributor.Config(raw), nil
}
