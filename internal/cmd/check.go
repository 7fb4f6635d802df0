package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/d-kuro/readme-chapters/internal/errors"
	"github.com/d-kuro/readme-chapters/internal/logging"
	"github.com/d-kuro/readme-chapters/internal/storage"
	"github.com/d-kuro/readme-chapters/internal/verify"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the table of contents links to existing chapters",
		Long: `Parse the table of contents and verify that every link into the chapters
directory points to an existing file. Exits with a non-zero status when a
link is broken.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runCheck,
	}
}

// runCheck validates the links of the generated index
func runCheck(c *cobra.Command, args []string) error {
	cfg, err := LoadConfig(c)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel).WithFile(cfg.TOC)
	fs := storage.NewFileSystem(RootDir(c), false)

	data, err := fs.ReadFile(cfg.TOC)
	if err != nil {
		return errors.Wrap(err, "failed to read table of contents")
	}

	report := verify.Index([]byte(data), cfg.ChaptersDir, fs)
	out := c.OutOrStdout()

	if len(report.Broken) > 0 {
		fmt.Fprintf(out, "❌ %d of %d chapter links are broken\n", len(report.Broken), len(report.Links))
		for _, l := range report.Broken {
			fmt.Fprintf(out, "   [%s](%s)\n", l.Text, l.Destination)
		}
		logger.Warn("Broken chapter links", slog.Int("broken", len(report.Broken)))
		return report.Err()
	}

	if len(report.Links) == 0 {
		logger.Warn("Table of contents has no links into the chapters directory",
			slog.String("chapters_dir", cfg.ChaptersDir))
	}

	fmt.Fprintf(out, "✓ All %d chapter links resolve\n", len(report.Links))
	logger.Debug("Check completed", slog.Int("links", len(report.Links)))
	return nil
}
