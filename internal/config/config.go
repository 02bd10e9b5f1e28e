// Package config provides configuration management for relkit using koanf.
// Configuration is loaded with priority: environment variables > project config
// (.relkit/config.yml) > defaults. A legacy JSON project config
// (.relkit/config.json) is still accepted.
//
// The loaded Configuration struct is passed explicitly into each component
// constructor; there is no process-wide mutable configuration state.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration describes the three bookkeeping files and how release links
// are synthesized.
type Configuration struct {
	// VersionHeader is the path to the C-style header holding the
	// VERSION_MAJOR/MINOR/PATCH defines. It is the single source of truth
	// for the project version.
	VersionHeader string `koanf:"version_header"`

	// Readme is the path to the plain-text readme whose "Version X.Y.Z"
	// line is rewritten on every bump. Missing file is a warning, not an error.
	Readme string `koanf:"readme"`

	// Changelog is the path to the markdown changelog document.
	Changelog string `koanf:"changelog"`

	// ProjectName appears in the changelog preamble
	// ("All notable changes to <name> will be documented in this file.").
	ProjectName string `koanf:"project_name"`

	// RepoURL is the https base URL of the project repository, used to
	// synthesize release-tag links. When empty, relkit tries to detect it
	// from the git origin remote.
	RepoURL string `koanf:"repo_url"`

	// TagPrefix is prepended to the version when forming release tags
	// (e.g. "v" gives tag v1.5.0).
	TagPrefix string `koanf:"tag_prefix"`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"version_header": "version.h",
		"readme":         "README.txt",
		"changelog":      "CHANGELOG.md",
		"project_name":   "this project",
		"repo_url":       "",
		"tag_prefix":     "v",
	}
}

// Load loads configuration from project and environment sources.
// Priority: Environment variables > Project config > Defaults.
//
// projectConfigPath overrides the project config location; pass "" to use
// .relkit/config.yml (with .relkit/config.json as legacy fallback).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that a Configuration has all required paths set.
func Validate(cfg *Configuration) error {
	if cfg.VersionHeader == "" {
		return fmt.Errorf("config: version_header must not be empty")
	}
	if cfg.Changelog == "" {
		return fmt.Errorf("config: changelog must not be empty")
	}
	if cfg.Readme == "" {
		return fmt.Errorf("config: readme must not be empty")
	}
	return nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the project-level config file when present.
// A missing file is not an error; defaults apply.
func loadProjectConfig(k *koanf.Koanf, path string) error {
	if path != "" {
		if !fileExists(path) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return loadConfigFile(k, path)
	}

	if yamlPath := ProjectConfigPath(); fileExists(yamlPath) {
		return loadConfigFile(k, yamlPath)
	}
	if jsonPath := LegacyProjectConfigPath(); fileExists(jsonPath) {
		return loadConfigFile(k, jsonPath)
	}
	return nil
}

// loadConfigFile loads a single config file, picking the parser by extension.
func loadConfigFile(k *koanf.Koanf, path string) error {
	if strings.HasSuffix(path, ".json") {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("loading JSON config %s: %w", path, err)
		}
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading YAML config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads RELKIT_* environment variables.
// RELKIT_VERSION_HEADER maps to the version_header key, and so on.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("RELKIT_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RELKIT_"))
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
