// Package config loads the build settings.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/d-kuro/readme-chapters/internal/errors"
)

// Defaults for the GeonBit readme layout.
const (
	DefaultInput       = "README.md"
	DefaultChaptersDir = "chapters"
	DefaultTOC         = "table_of_content.md"
	DefaultTitle       = "GeonBit"
	DefaultTagline     = "A 3D Entity-Component-System engine, powered by MonoGame for C# games."
	DefaultLogo        = "assets/GeonBit-sm.png"
	DefaultLogLevel    = "info"
)

// Environment variable names.
const (
	EnvInput       = "README_CHAPTERS_INPUT"
	EnvChaptersDir = "README_CHAPTERS_DIR"
	EnvTOC         = "README_CHAPTERS_TOC"
	EnvTitle       = "README_CHAPTERS_TITLE"
	EnvTagline     = "README_CHAPTERS_TAGLINE"
	EnvLogo        = "README_CHAPTERS_LOGO"
	EnvMkdir       = "README_CHAPTERS_MKDIR"
	EnvLogLevel    = "LOG_LEVEL"
)

// Config holds all settings of a build.
type Config struct {
	Input       string
	ChaptersDir string
	TOC         string
	Title       string
	Tagline     string
	Logo        string
	MakeDirs    bool
	DryRun      bool
	LogLevel    string
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Input:       DefaultInput,
		ChaptersDir: DefaultChaptersDir,
		TOC:         DefaultTOC,
		Title:       DefaultTitle,
		Tagline:     DefaultTagline,
		Logo:        DefaultLogo,
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads configuration from environment variables on top of the defaults.
// A .env file in dir is loaded first if present; variables already set in
// the environment take precedence over it.
func Load(dir string) (*Config, error) {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, errors.Wrap(err, "failed to load %s", envPath)
		}
	}

	cfg := &Config{
		Input:       getEnv(EnvInput, DefaultInput),
		ChaptersDir: getEnv(EnvChaptersDir, DefaultChaptersDir),
		TOC:         getEnv(EnvTOC, DefaultTOC),
		Title:       getEnv(EnvTitle, DefaultTitle),
		Tagline:     getEnv(EnvTagline, DefaultTagline),
		Logo:        getEnv(EnvLogo, DefaultLogo),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
	}

	if v := os.Getenv(EnvMkdir); v != "" {
		mkdir, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Configuration(EnvMkdir + " must be a boolean: " + err.Error())
		}
		cfg.MakeDirs = mkdir
	}

	return cfg, nil
}

// Validate checks that every required setting is present.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"input", c.Input},
		{"chapters directory", c.ChaptersDir},
		{"table of contents path", c.TOC},
		{"title", c.Title},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Configuration(r.name + " is required")
		}
	}
	return nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
