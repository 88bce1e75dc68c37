package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestKey is the key under which a policy may be nested in a JSON or
// YAML document, either at the top level or below a "config" object.
const ManifestKey = "branchNameLinter"

// ManifestFileName is the project manifest that may carry a policy under
// ManifestKey.
const ManifestFileName = "package.json"

// Format identifies the syntax of a configuration source.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	// FormatManifest is a JSON project manifest; only the ManifestKey
	// section is read and a manifest without it yields an empty Config.
	FormatManifest
	FormatStarlark
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatManifest:
		return "manifest"
	case FormatStarlark:
		return "starlark"
	default:
		return "unknown"
	}
}

// FormatForPath picks the format from a file name. Unrecognised extensions
// are read as YAML, which also accepts most JSON.
func FormatForPath(path string) Format {
	if filepath.Base(path) == ManifestFileName {
		return FormatManifest
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".star":
		return FormatStarlark
	default:
		return FormatYAML
	}
}

// LoadFromFile reads and parses a configuration file, choosing the parser
// from the file name.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadNamed(path, data)
}

// LoadNamed parses data read from the named source, choosing the parser
// from the name. Errors are prefixed with the name.
func LoadNamed(name string, data []byte) (*Config, error) {
	if FormatForPath(name) == FormatStarlark {
		return loadStarlark(name, data)
	}
	cfg, err := LoadFromBytes(data, FormatForPath(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Load builds the configuration from the file at path, or from the file
// found by searching upward from dir when path is empty. With no file the
// defaults are returned. The second result is the file used, if any.
func Load(path, dir string) (*Config, string, error) {
	if path == "" {
		path = FindConfigFile(dir)
	}

	builder := NewBuilder()
	if path != "" {
		userCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, "", err
		}
		builder.Add(userCfg)
	}

	cfg, err := builder.Build()
	if err != nil {
		if path != "" {
			return nil, "", fmt.Errorf("%s: %w", path, err)
		}
		return nil, "", err
	}
	return cfg, path, nil
}

// LoadFromBytes parses configuration from raw bytes in the given format.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	switch format {
	case FormatJSON:
		return loadJSON(data, false)
	case FormatManifest:
		return loadJSON(data, true)
	case FormatStarlark:
		return loadStarlark("config.star", data)
	default:
		return loadYAML(data)
	}
}

func loadJSON(data []byte, manifest bool) (*Config, error) {
	section, err := jsonSection(data, manifest)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if section == nil {
		return &cfg, nil
	}
	if err := json.Unmarshal(section, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// jsonSection returns the part of a JSON document holding the policy, or nil
// when a manifest carries none.
func jsonSection(data []byte, manifest bool) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if raw, ok := doc[ManifestKey]; ok {
		return raw, nil
	}
	if raw, ok := doc["config"]; ok {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err == nil {
			if inner, ok := nested[ManifestKey]; ok {
				return inner, nil
			}
		}
	}
	if manifest {
		return nil, nil
	}
	return data, nil
}

func loadYAML(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var cfg Config
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &cfg, nil
	}

	section := doc.Content[0]
	if inner := mappingValue(section, ManifestKey); inner != nil {
		section = inner
	} else if nested := mappingValue(section, "config"); nested != nil {
		if inner := mappingValue(nested, ManifestKey); inner != nil {
			section = inner
		}
	}

	if err := section.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// mappingValue returns the value node for key in a YAML mapping, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
