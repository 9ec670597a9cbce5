package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
input:
  path: accounts.csv
output:
  dir: out
layout:
  width: 3
font:
  path: /fonts/gothic.ttf
header:
  date: "auto:iso"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Input.Path != "accounts.csv" {
		t.Errorf("Input.Path = %q", cfg.Input.Path)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Layout.Width != 3 {
		t.Errorf("Layout.Width = %d", cfg.Layout.Width)
	}
	if cfg.Font.Path != "/fonts/gothic.ttf" {
		t.Errorf("Font.Path = %q", cfg.Font.Path)
	}
	if cfg.Header.Date != "auto:iso" {
		t.Errorf("Header.Date = %q", cfg.Header.Date)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "empty name",
			path:    func(t *testing.T) string { return "" },
			wantErr: ErrEmptyConfigName,
		},
		{
			name: "missing file path",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			wantErr: ErrConfigNotFound,
		},
		{
			name: "unparseable yaml",
			path: func(t *testing.T) string {
				return writeConfig(t, "layout: [unclosed\n")
			},
			wantErr: ErrConfigParse,
		},
		{
			name: "unknown field",
			path: func(t *testing.T) string {
				return writeConfig(t, "bogus: true\n")
			},
			wantErr: ErrConfigParse,
		},
		{
			name: "invalid width",
			path: func(t *testing.T) string {
				return writeConfig(t, "layout:\n  width: 5\n")
			},
			wantErr: ErrInvalidWidth,
		},
		{
			name: "overlong date",
			path: func(t *testing.T) string {
				return writeConfig(t, "header:\n  date: \""+strings.Repeat("x", MaxDateLength+1)+"\"\n")
			},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.path(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "zero config", cfg: Config{}},
		{name: "width 3", cfg: Config{Layout: LayoutConfig{Width: 3}}},
		{name: "width 4", cfg: Config{Layout: LayoutConfig{Width: 4}}},
		{name: "width 2", cfg: Config{Layout: LayoutConfig{Width: 2}}, wantErr: ErrInvalidWidth},
		{
			name:    "overlong font path",
			cfg:     Config{Font: FontConfig{Path: strings.Repeat("a", MaxPathLength+1)}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() is invalid: %v", err)
	}
}
