package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/d-kuro/readme-chapters/internal/errors"
)

var envVars = []string{
	EnvInput, EnvChaptersDir, EnvTOC, EnvTitle, EnvTagline, EnvLogo, EnvMkdir, EnvLogLevel,
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		setupEnv func(*testing.T)
		dotenv   string
		wantErr  bool
		check    func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *Config) {
				want := Default()
				if *cfg != *want {
					t.Errorf("Load() = %+v, want %+v", cfg, want)
				}
			},
		},
		{
			name: "environment overrides",
			setupEnv: func(t *testing.T) {
				t.Setenv(EnvInput, "docs/README.md")
				t.Setenv(EnvChaptersDir, "docs/chapters")
				t.Setenv(EnvTitle, "Engine")
				t.Setenv(EnvMkdir, "true")
				t.Setenv(EnvLogLevel, "debug")
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Input != "docs/README.md" || cfg.ChaptersDir != "docs/chapters" || cfg.Title != "Engine" {
					t.Errorf("overrides not applied: %+v", cfg)
				}
				if !cfg.MakeDirs {
					t.Error("MakeDirs = false, want true")
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
				}
				if cfg.TOC != DefaultTOC {
					t.Errorf("TOC = %q, want default", cfg.TOC)
				}
			},
		},
		{
			name:   "dotenv file",
			dotenv: "README_CHAPTERS_TOC=toc.md\nREADME_CHAPTERS_TITLE=FromFile\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.TOC != "toc.md" || cfg.Title != "FromFile" {
					t.Errorf(".env not applied: %+v", cfg)
				}
			},
		},
		{
			name: "environment wins over dotenv",
			setupEnv: func(t *testing.T) {
				t.Setenv(EnvTitle, "FromEnv")
			},
			dotenv: "README_CHAPTERS_TITLE=FromFile\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Title != "FromEnv" {
					t.Errorf("Title = %q, want FromEnv", cfg.Title)
				}
			},
		},
		{
			name: "invalid mkdir flag",
			setupEnv: func(t *testing.T) {
				t.Setenv(EnvMkdir, "sometimes")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.setupEnv != nil {
				tt.setupEnv(t)
			}

			dir := t.TempDir()
			if tt.dotenv != "" {
				if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(tt.dotenv), 0644); err != nil {
					t.Fatalf("Failed to write .env: %v", err)
				}
			}

			cfg, err := Load(dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrConfiguration) {
					t.Errorf("Load() error = %v, want ErrConfiguration", err)
				}
				return
			}
			tt.check(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input", func(c *Config) { c.Input = "" }},
		{"empty chapters dir", func(c *Config) { c.ChaptersDir = "" }},
		{"empty toc", func(c *Config) { c.TOC = "" }},
		{"empty title", func(c *Config) { c.Title = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, errors.ErrConfiguration) {
				t.Errorf("Validate() error = %v, want ErrConfiguration", err)
			}
		})
	}
}
