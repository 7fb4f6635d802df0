// Package cmd holds the subcommands and shared flag handling of readme-chapters.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/d-kuro/readme-chapters/internal/config"
)

// AddConfigFlags registers the flags overriding configuration values.
func AddConfigFlags(fs *pflag.FlagSet) {
	fs.String("dir", ".", "Directory holding the readme; all paths are relative to it")
	fs.String("input", config.DefaultInput, "Full readme document")
	fs.String("chapters-dir", config.DefaultChaptersDir, "Directory receiving chapter files")
	fs.String("toc", config.DefaultTOC, "Table of contents file")
	fs.String("title", config.DefaultTitle, "Product name; a chapter titled exactly this is skipped")
	fs.String("tagline", config.DefaultTagline, "Tagline shown under the title in the table of contents")
	fs.String("logo", config.DefaultLogo, "Logo image shown at the top of the table of contents")
	fs.Bool("mkdir", false, "Create the chapters directory if it is missing")
	fs.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
}

// RootDir returns the value of the --dir flag.
func RootDir(c *cobra.Command) string {
	dir, _ := c.Flags().GetString("dir")
	if dir == "" {
		return "."
	}
	return dir
}

// LoadConfig loads configuration from the environment and applies the flags
// that were set explicitly on top of it.
func LoadConfig(c *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(RootDir(c))
	if err != nil {
		return nil, err
	}

	fs := c.Flags()
	stringFlags := map[string]*string{
		"input":        &cfg.Input,
		"chapters-dir": &cfg.ChaptersDir,
		"toc":          &cfg.TOC,
		"title":        &cfg.Title,
		"tagline":      &cfg.Tagline,
		"logo":         &cfg.Logo,
		"log-level":    &cfg.LogLevel,
	}
	for name, field := range stringFlags {
		if fs.Changed(name) {
			*field, _ = fs.GetString(name)
		}
	}
	if fs.Changed("mkdir") {
		cfg.MakeDirs, _ = fs.GetBool("mkdir")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
