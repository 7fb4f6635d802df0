// Package main implements the readme-chapters executable.
// It splits the project readme into one file per chapter and writes a table
// of contents linking to them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/d-kuro/readme-chapters/internal/builder"
	"github.com/d-kuro/readme-chapters/internal/cmd"
	"github.com/d-kuro/readme-chapters/internal/logging"
	"github.com/d-kuro/readme-chapters/internal/storage"
	"github.com/d-kuro/readme-chapters/internal/toc"
	"github.com/d-kuro/readme-chapters/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "readme-chapters",
	Short: "Split README.md into chapter files",
	Long: `readme-chapters breaks the readme into one markdown file per level-1 heading
under the chapters directory and writes a table of contents linking to them.

Asset links are rewritten to stay valid from the chapter directory. Existing
files are overwritten.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBuild,
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")
	cmd.AddConfigFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().Bool("dry-run", false, "Print the chapters without writing any file")

	rootCmd.AddCommand(cmd.NewVersionCmd())
	rootCmd.AddCommand(cmd.NewCheckCmd())
}

// runBuild splits the readme and writes chapters and index
func runBuild(c *cobra.Command, args []string) error {
	if versionFlag, _ := c.Flags().GetBool("version"); versionFlag {
		fmt.Fprintln(c.OutOrStdout(), version.GetVersion().String())
		return nil
	}

	cfg, err := cmd.LoadConfig(c)
	if err != nil {
		return err
	}
	if dryRun, _ := c.Flags().GetBool("dry-run"); dryRun {
		cfg.DryRun = true
	}

	logger := logging.NewLogger(cfg.LogLevel)
	logger.Debug("Starting build",
		slog.String("version", version.GetVersion().Version),
		slog.String("input", cfg.Input),
		slog.String("chapters_dir", cfg.ChaptersDir),
		slog.Bool("dry_run", cfg.DryRun))

	var store storage.Store = storage.NewFileSystem(cmd.RootDir(c), cfg.MakeDirs)
	if cfg.DryRun {
		store = storage.NewDryRun(store)
	}

	b := builder.New(store, logger, c.OutOrStdout(), builder.Options{
		Input:       cfg.Input,
		ChaptersDir: cfg.ChaptersDir,
		TOC:         cfg.TOC,
		Page: toc.Page{
			Title:   cfg.Title,
			Tagline: cfg.Tagline,
			Logo:    cfg.Logo,
			Source:  cfg.Input,
		},
	})

	if _, err := b.Build(); err != nil {
		logger.Error("Build failed", slog.Any("error", err))
		return err
	}
	return nil
}
