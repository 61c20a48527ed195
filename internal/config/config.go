// Package config handles loading and managing mailsift configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the mailsift configuration.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Extract ExtractConfig `toml:"extract"`

	// Computed paths (not from config file)
	HomeDir string `toml:"-"`
}

// OutputConfig holds output file configuration.
type OutputConfig struct {
	Dir string `toml:"dir"` // Directory for generated contact files
}

// ExtractConfig holds extraction configuration.
type ExtractConfig struct {
	Preview bool `toml:"preview"` // Also scan message preview text
}

// DefaultHome returns the default mailsift home directory.
// Respects MAILSIFT_HOME environment variable.
func DefaultHome() string {
	if h := os.Getenv("MAILSIFT_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mailsift"
	}
	return filepath.Join(home, ".mailsift")
}

// Load reads the configuration from the specified file.
// If path is empty, uses the default location (~/.mailsift/config.toml).
func Load(path string) (*Config, error) {
	homeDir := DefaultHome()

	if path == "" {
		path = filepath.Join(homeDir, "config.toml")
	}

	cfg := &Config{
		HomeDir: homeDir,
		// Defaults
		Output: OutputConfig{
			Dir: "contacts",
		},
	}

	// Config file is optional - use defaults if not present
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Output.Dir = expandPath(cfg.Output.Dir)

	return cfg, nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
