package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/d-kuro/readme-chapters/internal/errors"
	"github.com/d-kuro/readme-chapters/pkg/version"
)

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "readme-chapters"}
	AddConfigFlags(root.PersistentFlags())
	root.AddCommand(NewVersionCmd())
	root.AddCommand(NewCheckCmd())
	return root
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

func TestVersionCmd_JSON(t *testing.T) {
	root := newTestRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--json"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var info version.Info
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if want := version.GetVersion().Version; info.Version != want {
		t.Errorf("Version = %q, want %q", info.Version, want)
	}
}

func TestCheckCmd(t *testing.T) {
	index := "# GeonBit\n\n[Intro](chapters/intro.md)\n\n[Setup](chapters/setup.md)\n\n[here](README.md)\n"

	tests := []struct {
		name       string
		files      map[string]string
		wantErr    error
		wantOutput string
	}{
		{
			name: "all links resolve",
			files: map[string]string{
				"table_of_content.md": index,
				"chapters/intro.md":   "# Intro\n",
				"chapters/setup.md":   "# Setup\n",
			},
			wantOutput: "✓ All 2 chapter links resolve",
		},
		{
			name: "missing chapter",
			files: map[string]string{
				"table_of_content.md": index,
				"chapters/intro.md":   "# Intro\n",
			},
			wantErr:    errors.ErrBrokenLinks,
			wantOutput: "[Setup](chapters/setup.md)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files)

			root := newTestRoot()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetErr(&bytes.Buffer{})
			root.SetArgs([]string{"check", "--dir", dir, "--log-level", "error"})

			err := root.Execute()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantOutput)
			}
		})
	}
}

func TestCheckCmd_MissingIndex(t *testing.T) {
	root := newTestRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"check", "--dir", t.TempDir()})

	err := root.Execute()
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("Execute() error = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Execute() error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("README_CHAPTERS_TITLE", "FromEnv")
	t.Setenv("README_CHAPTERS_TOC", "env_toc.md")

	var got string
	var gotTOC string
	root := &cobra.Command{
		Use: "test",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c)
			if err != nil {
				return err
			}
			got, gotTOC = cfg.Title, cfg.TOC
			return nil
		},
	}
	AddConfigFlags(root.PersistentFlags())
	root.SetArgs([]string{"--dir", t.TempDir(), "--title", "FromFlag"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "FromFlag" {
		t.Errorf("Title = %q, want FromFlag", got)
	}
	if gotTOC != "env_toc.md" {
		t.Errorf("TOC = %q, want env_toc.md", gotTOC)
	}
}
