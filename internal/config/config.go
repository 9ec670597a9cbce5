// Package config loads and validates csv2pdf configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-csv2pdf/internal/fileutil"
	"github.com/alnah/go-csv2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidWidth    = errors.New("layout width must be 3 or 4")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxDateLength = 30  // "auto:MMMM D, YYYY" or a literal stamp
	MaxPathLength = 512 // input/output/font paths
)

// Config holds all configuration for document generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Layout LayoutConfig `yaml:"layout"`
	Font   FontConfig   `yaml:"font"`
	Header HeaderConfig `yaml:"header"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Path string `yaml:"path"` // Default input file (empty = must pass as argument)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = current directory)
}

// LayoutConfig defines the field-group convention of the input.
type LayoutConfig struct {
	Width int `yaml:"width"` // Columns per credential group: 3 or 4 (0 = default 4)
}

// FontConfig defines font resolution options.
type FontConfig struct {
	Path string `yaml:"path"` // Explicit TrueType font file (empty = platform search)
}

// HeaderConfig defines the per-page issue-date stamp.
type HeaderConfig struct {
	Date string `yaml:"date"` // "auto", "auto:FORMAT", or a literal (empty = "auto")
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and the layout width.
func (c *Config) Validate() error {
	if c.Layout.Width != 0 && c.Layout.Width != 3 && c.Layout.Width != 4 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, c.Layout.Width)
	}
	if len(c.Header.Date) > MaxDateLength {
		return fmt.Errorf("%w: header.date (max %d)", ErrFieldTooLong, MaxDateLength)
	}
	for name, path := range map[string]string{
		"input.path": c.Input.Path,
		"output.dir": c.Output.Dir,
		"font.path":  c.Font.Path,
	} {
		if len(path) > MaxPathLength {
			return fmt.Errorf("%w: %s (max %d)", ErrFieldTooLong, name, MaxPathLength)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/csv2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "csv2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
