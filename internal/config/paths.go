package config

import "path/filepath"

// ProjectConfigPath returns the path to the project-level config file.
// This is always .relkit/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".relkit", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".relkit"
}

// LegacyProjectConfigPath returns the path to the legacy project-level
// JSON config file, kept for backward compatibility.
func LegacyProjectConfigPath() string {
	return filepath.Join(".relkit", "config.json")
}
