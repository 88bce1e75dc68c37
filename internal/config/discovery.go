package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigFileNames lists the dedicated configuration files searched for in
// each directory, in order. The project manifest is checked after them.
var ConfigFileNames = []string{
	".branch-name-lint.json",
	".branch-name-lint.yml",
	".branch-name-lint.yaml",
	".branch-name-lint.star",
}

// FindConfigFile searches dir and each of its parents for a configuration
// file and returns the first one found, or "" if there is none. A
// package.json only counts when it carries a ManifestKey section.
func FindConfigFile(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		dir = filepath.Clean(dir)
	}

	for {
		if path := configFileIn(dir); path != "" {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func configFileIn(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	manifest := filepath.Join(dir, ManifestFileName)
	if hasManifestSection(manifest) {
		return manifest
	}
	return ""
}

// hasManifestSection reports whether the manifest at path exists, parses,
// and holds a policy section.
func hasManifestSection(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if !json.Valid(data) {
		return false
	}
	section, err := jsonSection(data, true)
	return err == nil && section != nil
}
